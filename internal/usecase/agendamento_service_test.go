package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/internal/usecase"
)

func agendamentoCreate(gerarPedido bool) entities.AgendamentoCreate {
	return entities.AgendamentoCreate{
		ClienteNome: "Ana",
		ServicoNome: "Prova de vestido",
		DataHora:    time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC),
		Status:      entities.AgendamentoAgendado,
		GerarPedido: gerarPedido,
	}
}

func TestAgendamentoConfirmarSpawnsPedido(t *testing.T) {
	_, st := newStore(t)
	pedidos, _, _ := newPedidoFixture(t, st, nil)
	svc := usecase.NewAgendamentoService(st, pedidos)
	ctx := context.Background()

	ag, err := svc.Create(ctx, "user-1", agendamentoCreate(true))
	require.NoError(t, err)

	confirmado, err := svc.Confirmar(ctx, ag.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.AgendamentoConfirmado, confirmado.Status)

	ps, err := pedidos.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "Ana", ps[0].ClienteNome)
	require.Len(t, ps[0].Itens, 1)
	assert.Equal(t, "Prova de vestido", ps[0].Itens[0].Nome)
	assert.Equal(t, entities.OrigemManual, ps[0].Itens[0].Origem)
	require.NotNil(t, ps[0].DataEntrega)
	assert.True(t, ps[0].DataEntrega.Equal(ag.DataHora))
}

func TestAgendamentoConfirmarWithoutFlagDoesNotSpawn(t *testing.T) {
	_, st := newStore(t)
	pedidos, _, _ := newPedidoFixture(t, st, nil)
	svc := usecase.NewAgendamentoService(st, pedidos)
	ctx := context.Background()

	ag, err := svc.Create(ctx, "user-1", agendamentoCreate(false))
	require.NoError(t, err)

	_, err = svc.Confirmar(ctx, ag.ID)
	require.NoError(t, err)

	ps, err := pedidos.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func TestAgendamentoListByPeriodo(t *testing.T) {
	_, st := newStore(t)
	svc := usecase.NewAgendamentoService(st, nil)
	ctx := context.Background()

	dentro := agendamentoCreate(false)
	_, err := svc.Create(ctx, "user-1", dentro)
	require.NoError(t, err)

	fora := agendamentoCreate(false)
	fora.DataHora = time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)
	_, err = svc.Create(ctx, "user-1", fora)
	require.NoError(t, err)

	out, err := svc.ListByPeriodo(ctx, "user-1",
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].DataHora.Equal(dentro.DataHora))
}
