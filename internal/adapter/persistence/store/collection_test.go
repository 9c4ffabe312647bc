package store_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelie_gestor/internal/adapter/persistence/store"
	"atelie_gestor/internal/adapter/persistence/store/storetest"
	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/internal/domain/schema"
)

func newLancamentos(t *testing.T) (*storetest.Client, *store.Collection[entities.Lancamento, entities.LancamentoCreate, entities.LancamentoUpdate]) {
	t.Helper()
	fake := storetest.NewClient()
	s := store.New(fake, zerolog.Nop(), "")
	return fake, store.NewCollection[entities.Lancamento, entities.LancamentoCreate, entities.LancamentoUpdate](s, "lancamentos")
}

func validLancamento(titulo string, valor float64) entities.LancamentoCreate {
	return entities.LancamentoCreate{
		Titulo: titulo,
		Valor:  valor,
		Tipo:   entities.LancamentoReceita,
		Data:   time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
		Status: entities.LancamentoRecebido,
	}
}

func TestCollectionCreateAndGet(t *testing.T) {
	_, col := newLancamentos(t)
	ctx := context.Background()

	created, err := col.Create(ctx, "user-1", validLancamento("Balcão #1", 150))
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "user-1", created.UserID)
	assert.Equal(t, "Balcão #1", created.Titulo)
	assert.Equal(t, 150.0, created.Valor)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := col.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Titulo, got.Titulo)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestCollectionGetMissingReturnsNil(t *testing.T) {
	_, col := newLancamentos(t)

	got, err := col.GetByID(context.Background(), "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCollectionCreateRejectsInvalidInput(t *testing.T) {
	_, col := newLancamentos(t)

	_, err := col.Create(context.Background(), "user-1", entities.LancamentoCreate{
		Valor:  150,
		Tipo:   entities.LancamentoReceita,
		Data:   time.Now().UTC(),
		Status: entities.LancamentoRecebido,
	})
	require.Error(t, err)

	ve := schema.AsValidationError(err)
	require.NotNil(t, ve)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "titulo", ve.Fields[0].Path)
}

func TestCollectionCreateRejectsEmptyOwner(t *testing.T) {
	_, col := newLancamentos(t)

	_, err := col.Create(context.Background(), "  ", validLancamento("x", 1))
	require.Error(t, err)
}

func TestCollectionUpdateMergesFields(t *testing.T) {
	_, col := newLancamentos(t)
	ctx := context.Background()

	created, err := col.Create(ctx, "user-1", validLancamento("Balcão #1", 150))
	require.NoError(t, err)

	status := entities.LancamentoPendente
	updated, err := col.Update(ctx, created.ID, entities.LancamentoUpdate{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, entities.LancamentoPendente, updated.Status)
	assert.Equal(t, "Balcão #1", updated.Titulo)
	assert.Equal(t, 150.0, updated.Valor)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
}

func TestCollectionUpdateEmptyInputIsNoOp(t *testing.T) {
	_, col := newLancamentos(t)
	ctx := context.Background()

	created, err := col.Create(ctx, "user-1", validLancamento("Balcão #1", 150))
	require.NoError(t, err)

	got, err := col.Update(ctx, created.ID, entities.LancamentoUpdate{})
	require.NoError(t, err)
	assert.Equal(t, created.Titulo, got.Titulo)
	assert.True(t, created.UpdatedAt.Equal(got.UpdatedAt), "no-op update must not bump updatedAt")
}

func TestCollectionUpdateMissingDocument(t *testing.T) {
	_, col := newLancamentos(t)

	status := entities.LancamentoPago
	_, err := col.Update(context.Background(), "ghost", entities.LancamentoUpdate{Status: &status})
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrNotFoundAfterUpdate))

	_, err = col.Update(context.Background(), "ghost", entities.LancamentoUpdate{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestCollectionUpdateRejectsInvalidInput(t *testing.T) {
	_, col := newLancamentos(t)
	ctx := context.Background()

	created, err := col.Create(ctx, "user-1", validLancamento("Balcão #1", 150))
	require.NoError(t, err)

	bad := entities.TipoLancamento("transferencia")
	_, err = col.Update(ctx, created.ID, entities.LancamentoUpdate{Tipo: &bad})
	require.Error(t, err)
	require.NotNil(t, schema.AsValidationError(err))

	got, err := col.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.LancamentoReceita, got.Tipo, "failed update must not write")
}

func TestCollectionDelete(t *testing.T) {
	_, col := newLancamentos(t)
	ctx := context.Background()

	created, err := col.Create(ctx, "user-1", validLancamento("Balcão #1", 150))
	require.NoError(t, err)

	require.NoError(t, col.Delete(ctx, created.ID))

	got, err := col.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting an absent id is not an error.
	require.NoError(t, col.Delete(ctx, created.ID))
}

func TestCollectionQueryScopesAndOrders(t *testing.T) {
	_, col := newLancamentos(t)
	ctx := context.Background()

	for _, c := range []struct {
		owner  string
		titulo string
		valor  float64
		tipo   entities.TipoLancamento
	}{
		{"user-1", "a", 30, entities.LancamentoReceita},
		{"user-1", "b", 10, entities.LancamentoDespesa},
		{"user-1", "c", 20, entities.LancamentoReceita},
		{"user-2", "alheio", 99, entities.LancamentoReceita},
	} {
		in := validLancamento(c.titulo, c.valor)
		in.Tipo = c.tipo
		if c.tipo == entities.LancamentoDespesa {
			in.Status = entities.LancamentoPago
		}
		_, err := col.Create(ctx, c.owner, in)
		require.NoError(t, err)
	}

	all, err := col.ListByOwner(ctx, "user-1", "valor", true)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []float64{30, 20, 10}, []float64{all[0].Valor, all[1].Valor, all[2].Valor})
	for _, l := range all {
		assert.Equal(t, "user-1", l.UserID)
	}

	receitas, err := col.QueryByOwner(ctx, "user-1", store.Query{
		Filters: []store.Filter{{Field: "tipo", Op: store.OpEq, Value: string(entities.LancamentoReceita)}},
		OrderBy: "valor",
		Limit:   1,
	})
	require.NoError(t, err)
	require.Len(t, receitas, 1)
	assert.Equal(t, 20.0, receitas[0].Valor)
}

func TestCollectionDateRangeFilter(t *testing.T) {
	_, col := newLancamentos(t)
	ctx := context.Background()

	for day, titulo := range map[int]string{5: "dentro", 25: "fora"} {
		in := validLancamento(titulo, 10)
		in.Data = time.Date(2026, 3, day, 12, 0, 0, 0, time.UTC)
		_, err := col.Create(ctx, "user-1", in)
		require.NoError(t, err)
	}

	out, err := col.QueryByOwner(ctx, "user-1", store.Query{
		Filters: []store.Filter{
			{Field: "data", Op: store.OpGte, Value: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
			{Field: "data", Op: store.OpLt, Value: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "dentro", out[0].Titulo)
}

func TestCollectionDateRangeIncludesFractionalSeconds(t *testing.T) {
	fake, col := newLancamentos(t)
	ctx := context.Background()

	meia := validLancamento("meia", 10)
	meia.Data = time.Date(2026, 3, 1, 0, 0, 0, 500_000_000, time.UTC)
	criadaMeia, err := col.Create(ctx, "user-1", meia)
	require.NoError(t, err)

	cheia := validLancamento("cheia", 10)
	cheia.Data = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err = col.Create(ctx, "user-1", cheia)
	require.NoError(t, err)

	antes := validLancamento("antes", 10)
	antes.Data = time.Date(2026, 2, 28, 23, 59, 59, 999_000_000, time.UTC)
	_, err = col.Create(ctx, "user-1", antes)
	require.NoError(t, err)

	// Stored timestamps are fixed-width: a trimmed "…00.5Z" would compare
	// before "…00Z" and fall outside the range.
	raw := fake.Raw("lancamentos", criadaMeia.ID)
	require.Equal(t, "2026-03-01T00:00:00.500000000Z", attrS(t, raw["data"]))

	out, err := col.QueryByOwner(ctx, "user-1", store.Query{
		Filters: []store.Filter{
			{Field: "data", Op: store.OpGte, Value: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
			{Field: "data", Op: store.OpLt, Value: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
		},
		OrderBy: "data",
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "cheia", out[0].Titulo)
	assert.Equal(t, "meia", out[1].Titulo)
}

func TestCollectionAddToField(t *testing.T) {
	_, col := newLancamentos(t)
	ctx := context.Background()

	created, err := col.Create(ctx, "user-1", validLancamento("Caixa", 10))
	require.NoError(t, err)

	updated, err := col.AddToField(ctx, created.ID, "valor", 5)
	require.NoError(t, err)
	assert.Equal(t, 15.0, updated.Valor)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	// A delta that would cross zero is rejected by the store, not by a
	// read-back comparison.
	_, err = col.AddToField(ctx, created.ID, "valor", -20)
	require.ErrorIs(t, err, store.ErrConditionFailed)

	got, err := col.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 15.0, got.Valor)

	_, err = col.AddToField(ctx, "does-not-exist", "valor", 1)
	require.ErrorIs(t, err, store.ErrConditionFailed)
}

func attrS(t *testing.T, av types.AttributeValue) string {
	t.Helper()
	s, ok := av.(*types.AttributeValueMemberS)
	require.True(t, ok, "expected a string attribute")
	return s.Value
}

func TestCollectionLegacyDocumentGetsEpochTimestamps(t *testing.T) {
	fake, col := newLancamentos(t)

	fake.Seed("lancamentos", "legacy-1", map[string]types.AttributeValue{
		"id":     &types.AttributeValueMemberS{Value: "legacy-1"},
		"userId": &types.AttributeValueMemberS{Value: "user-1"},
		"titulo": &types.AttributeValueMemberS{Value: "antigo"},
		"valor":  &types.AttributeValueMemberN{Value: "5"},
		"tipo":   &types.AttributeValueMemberS{Value: "receita"},
		"data":   &types.AttributeValueMemberS{Value: "2020-01-02T00:00:00Z"},
		"status": &types.AttributeValueMemberS{Value: "recebido"},
	})

	got, err := col.GetByID(context.Background(), "legacy-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Unix(0, 0).UTC(), got.CreatedAt.UTC())
	assert.Equal(t, time.Unix(0, 0).UTC(), got.UpdatedAt.UTC())
}

func TestCollectionCorruptDocumentFailsRead(t *testing.T) {
	fake, col := newLancamentos(t)

	fake.Seed("lancamentos", "bad-1", map[string]types.AttributeValue{
		"id":     &types.AttributeValueMemberS{Value: "bad-1"},
		"userId": &types.AttributeValueMemberS{Value: "user-1"},
		// titulo missing, status missing
		"valor": &types.AttributeValueMemberN{Value: "5"},
		"tipo":  &types.AttributeValueMemberS{Value: "receita"},
		"data":  &types.AttributeValueMemberS{Value: "2020-01-02T00:00:00Z"},
	})

	_, err := col.GetByID(context.Background(), "bad-1")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "corrupt document"))

	// The whole list fails rather than silently dropping the document.
	_, err = col.ListByOwner(context.Background(), "user-1", "", false)
	require.Error(t, err)
}

func TestCollectionRemoveFields(t *testing.T) {
	fake := storetest.NewClient()
	s := store.New(fake, zerolog.Nop(), "")
	col := store.NewCollection[entities.ProdutoServico, entities.ProdutoServicoCreate, entities.ProdutoServicoUpdate](s, "produtos_servicos")
	ctx := context.Background()

	custo, estoque, minimo := 2.5, 10.0, 1.0
	created, err := col.Create(ctx, "user-1", entities.ProdutoServicoCreate{
		Nome:          "Linha",
		Tipo:          entities.TipoProduto,
		PrecoVenda:    8,
		CustoUnitario: &custo,
		Estoque:       &estoque,
		EstoqueMinimo: &minimo,
		Ativo:         true,
	})
	require.NoError(t, err)

	tipo := entities.TipoServico
	_, err = col.Update(ctx, created.ID, entities.ProdutoServicoUpdate{Tipo: &tipo})
	require.NoError(t, err)

	got, err := col.RemoveFields(ctx, created.ID, "custoUnitario", "estoque", "estoqueMinimo")
	require.NoError(t, err)
	assert.Nil(t, got.CustoUnitario)
	assert.Nil(t, got.Estoque)
	assert.Nil(t, got.EstoqueMinimo)
	assert.Equal(t, entities.TipoServico, got.Tipo)

	raw := fake.Raw("produtos_servicos", created.ID)
	_, hasEstoque := raw["estoque"]
	assert.False(t, hasEstoque, "attribute must be physically removed")
}
