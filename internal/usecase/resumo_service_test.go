package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelie_gestor/internal/adapter/persistence/store"
	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/internal/usecase"
)

type resumoFixture struct {
	lancamentos *usecase.LancamentoService
	vendas      *usecase.VendaService
	pedidos     *usecase.PedidoService
	agendas     *usecase.AgendamentoService
	custos      *usecase.CustoFixoService
	resumo      *usecase.ResumoService
}

func newResumoFixture(t *testing.T, st *store.Store) resumoFixture {
	t.Helper()
	lancamentos := usecase.NewLancamentoService(st)
	produtos := usecase.NewProdutoServicoService(st)
	ordens := usecase.NewOrdemProducaoService(st)
	pedidos := usecase.NewPedidoService(st, lancamentos, ordens, nil, zerolog.Nop())
	vendas := usecase.NewVendaService(st, produtos, nil, zerolog.Nop())
	agendas := usecase.NewAgendamentoService(st, pedidos)
	custos := usecase.NewCustoFixoService(st)
	return resumoFixture{
		lancamentos: lancamentos,
		vendas:      vendas,
		pedidos:     pedidos,
		agendas:     agendas,
		custos:      custos,
		resumo:      usecase.NewResumoService(lancamentos, vendas, pedidos, agendas, custos, zerolog.Nop()),
	}
}

func TestResumoMensal(t *testing.T) {
	_, st := newStore(t)
	f := newResumoFixture(t, st)
	ctx := context.Background()
	now := time.Now().UTC()

	receita := validResumoLancamento("Encomenda", 150, entities.LancamentoReceita, now)
	_, err := f.lancamentos.Create(ctx, "user-1", receita)
	require.NoError(t, err)

	despesa := validResumoLancamento("Tecido", 40, entities.LancamentoDespesa, now)
	despesa.Status = entities.LancamentoPago
	_, err = f.lancamentos.Create(ctx, "user-1", despesa)
	require.NoError(t, err)

	_, err = f.vendas.Create(ctx, "user-1", vendaCreate("", 2))
	require.NoError(t, err)

	pedido, err := f.pedidos.Create(ctx, "user-1", pedidoCreate(0))
	require.NoError(t, err)
	emProducao := entities.ProducaoEmAndamento
	_, err = f.pedidos.Update(ctx, pedido.ID, entities.PedidoUpdate{StatusProducao: &emProducao})
	require.NoError(t, err)

	entregue := entities.ProducaoEntregue
	fechado, err := f.pedidos.Create(ctx, "user-1", pedidoCreate(0))
	require.NoError(t, err)
	_, err = f.pedidos.Update(ctx, fechado.ID, entities.PedidoUpdate{StatusProducao: &entregue})
	require.NoError(t, err)

	ag := agendamentoCreate(false)
	ag.DataHora = now
	_, err = f.agendas.Create(ctx, "user-1", ag)
	require.NoError(t, err)

	_, err = f.custos.Create(ctx, "user-1", entities.CustoFixoCreate{Nome: "Aluguel", ValorMensal: 800, Ativo: true})
	require.NoError(t, err)
	_, err = f.custos.Create(ctx, "user-1", entities.CustoFixoCreate{Nome: "Assinatura antiga", ValorMensal: 50, Ativo: false})
	require.NoError(t, err)

	resumo, err := f.resumo.Mensal(ctx, "user-1", now.Year(), now.Month())
	require.NoError(t, err)

	assert.Equal(t, 150.0, resumo.Receitas)
	assert.Equal(t, 40.0, resumo.Despesas)
	assert.Equal(t, 110.0, resumo.Saldo)
	assert.Equal(t, 1, resumo.VendasQuantidade)
	assert.Equal(t, 16.0, resumo.VendasTotal)
	assert.Equal(t, 1, resumo.PedidosAbertos)
	assert.Equal(t, 1, resumo.AgendamentosMes)
	assert.Equal(t, 800.0, resumo.CustosFixos, "only active fixed costs count")
}

// A collection that cannot be read contributes its zero value instead of
// failing the whole summary.
func TestResumoMensalFailSoft(t *testing.T) {
	fake, st := newStore(t)
	f := newResumoFixture(t, st)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := f.custos.Create(ctx, "user-1", entities.CustoFixoCreate{Nome: "Aluguel", ValorMensal: 800, Ativo: true})
	require.NoError(t, err)

	// A corrupt financial entry sinks the lancamentos sub-read.
	fake.Seed("lancamentos", "bad-1", map[string]types.AttributeValue{
		"id":     &types.AttributeValueMemberS{Value: "bad-1"},
		"userId": &types.AttributeValueMemberS{Value: "user-1"},
		"valor":  &types.AttributeValueMemberN{Value: "999"},
		"tipo":   &types.AttributeValueMemberS{Value: "receita"},
		"data":   &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
	})

	resumo, err := f.resumo.Mensal(ctx, "user-1", now.Year(), now.Month())
	require.NoError(t, err)
	assert.Equal(t, 0.0, resumo.Receitas)
	assert.Equal(t, 800.0, resumo.CustosFixos)
}

func validResumoLancamento(titulo string, valor float64, tipo entities.TipoLancamento, data time.Time) entities.LancamentoCreate {
	status := entities.LancamentoRecebido
	if tipo == entities.LancamentoDespesa {
		status = entities.LancamentoPago
	}
	return entities.LancamentoCreate{
		Titulo: titulo,
		Valor:  valor,
		Tipo:   tipo,
		Data:   data,
		Status: status,
	}
}
