package usecase_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/internal/usecase"
)

func TestSessaoAbrirRejectsSecondOpen(t *testing.T) {
	_, st := newStore(t)
	vendas := usecase.NewVendaService(st, nil, nil, zerolog.Nop())
	sessoes := usecase.NewSessaoCaixaService(st, vendas)
	ctx := context.Background()

	aberta, err := sessoes.Abrir(ctx, "user-1", 20, "")
	require.NoError(t, err)
	assert.Equal(t, entities.SessaoAberta, aberta.Status)
	assert.Equal(t, 20.0, aberta.TrocoInicial)

	_, err = sessoes.Abrir(ctx, "user-1", 10, "")
	assert.ErrorIs(t, err, usecase.ErrSessaoJaAberta)

	// Another owner's register is independent.
	_, err = sessoes.Abrir(ctx, "user-2", 5, "")
	require.NoError(t, err)
}

func TestSessaoGetAberta(t *testing.T) {
	_, st := newStore(t)
	vendas := usecase.NewVendaService(st, nil, nil, zerolog.Nop())
	sessoes := usecase.NewSessaoCaixaService(st, vendas)
	ctx := context.Background()

	got, err := sessoes.GetAberta(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	aberta, err := sessoes.Abrir(ctx, "user-1", 0, "")
	require.NoError(t, err)

	got, err = sessoes.GetAberta(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, aberta.ID, got.ID)
}

func TestSessaoFecharComputesTotais(t *testing.T) {
	_, st := newStore(t)
	vendas := usecase.NewVendaService(st, nil, nil, zerolog.Nop())
	sessoes := usecase.NewSessaoCaixaService(st, vendas)
	ctx := context.Background()

	sessao, err := sessoes.Abrir(ctx, "user-1", 20, "")
	require.NoError(t, err)

	for _, v := range []struct {
		forma  entities.FormaPagamento
		total  float64
		status entities.StatusVenda
	}{
		{entities.PagamentoDinheiro, 50, entities.VendaConcluida},
		{entities.PagamentoPix, 30, entities.VendaConcluida},
		{entities.PagamentoDinheiro, 15, entities.VendaCancelada},
	} {
		in := vendaCreate("", 1)
		in.Total = v.total
		in.FormaPagamento = v.forma
		in.Status = v.status
		in.SessaoCaixaID = sessao.ID
		_, err := vendas.Create(ctx, "user-1", in)
		require.NoError(t, err)
	}

	fechada, err := sessoes.Fechar(ctx, sessao.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.SessaoFechada, fechada.Status)
	require.NotNil(t, fechada.FechadaEm)
	assert.Equal(t, 50.0, fechada.TotaisPorForma["dinheiro"])
	assert.Equal(t, 30.0, fechada.TotaisPorForma["pix"])
	assert.Equal(t, 70.0, fechada.SaldoFechamento, "opening float plus cash sales")

	_, err = sessoes.Fechar(ctx, sessao.ID)
	assert.ErrorIs(t, err, usecase.ErrSessaoFechada)
}
