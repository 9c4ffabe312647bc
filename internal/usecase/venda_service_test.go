package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelie_gestor/internal/adapter/persistence/store"
	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/internal/usecase"
)

func newVendaFixture(t *testing.T, st *store.Store) (*usecase.VendaService, *usecase.ProdutoServicoService, *usecase.LancamentoService) {
	t.Helper()
	produtos := usecase.NewProdutoServicoService(st)
	lancamentos := usecase.NewLancamentoService(st)
	vendas := usecase.NewVendaService(st, produtos, lancamentos, zerolog.Nop())
	return vendas, produtos, lancamentos
}

func vendaCreate(produtoID string, quantidade float64) entities.VendaCreate {
	return entities.VendaCreate{
		Itens: []entities.ItemVenda{{
			ProdutoID:     produtoID,
			Nome:          "Linha",
			Quantidade:    quantidade,
			PrecoUnitario: 8,
		}},
		Total:          quantidade * 8,
		FormaPagamento: entities.PagamentoDinheiro,
		Status:         entities.VendaConcluida,
	}
}

func TestVendaCreateDecrementsStockAndRecordsLancamento(t *testing.T) {
	_, st := newStore(t)
	vendas, produtos, lancamentos := newVendaFixture(t, st)
	ctx := context.Background()

	produto, err := produtos.Create(ctx, "user-1", produtoCreate("Linha", 10))
	require.NoError(t, err)

	venda, err := vendas.Create(ctx, "user-1", vendaCreate(produto.ID, 3))
	require.NoError(t, err)

	after, err := produtos.GetByID(ctx, produto.ID)
	require.NoError(t, err)
	assert.Equal(t, 7.0, *after.Estoque)

	ls, err := lancamentos.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, ls, 1)
	assert.Equal(t, entities.LancamentoReceita, ls[0].Tipo)
	assert.Equal(t, 24.0, ls[0].Valor)
	assert.Equal(t, venda.ID, ls[0].VendaID)
}

func TestVendaCreateInsufficientStock(t *testing.T) {
	_, st := newStore(t)
	vendas, produtos, _ := newVendaFixture(t, st)
	ctx := context.Background()

	produto, err := produtos.Create(ctx, "user-1", produtoCreate("Linha", 2))
	require.NoError(t, err)

	_, err = vendas.Create(ctx, "user-1", vendaCreate(produto.ID, 5))
	assert.True(t, errors.Is(err, usecase.ErrEstoqueNegativo))
}

func TestVendaManualItemSkipsStock(t *testing.T) {
	_, st := newStore(t)
	vendas, _, lancamentos := newVendaFixture(t, st)
	ctx := context.Background()

	_, err := vendas.Create(ctx, "user-1", vendaCreate("", 3))
	require.NoError(t, err)

	ls, err := lancamentos.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, ls, 1)
}

func TestVendaCancelarRestoresStock(t *testing.T) {
	_, st := newStore(t)
	vendas, produtos, _ := newVendaFixture(t, st)
	ctx := context.Background()

	produto, err := produtos.Create(ctx, "user-1", produtoCreate("Linha", 10))
	require.NoError(t, err)

	venda, err := vendas.Create(ctx, "user-1", vendaCreate(produto.ID, 3))
	require.NoError(t, err)

	cancelled, err := vendas.Cancelar(ctx, venda.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.VendaCancelada, cancelled.Status)

	after, err := produtos.GetByID(ctx, produto.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, *after.Estoque)

	_, err = vendas.Cancelar(ctx, venda.ID)
	assert.ErrorIs(t, err, usecase.ErrVendaJaCancelada)
}
