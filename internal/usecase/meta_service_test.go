package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/internal/usecase"
)

func TestMetaRegistrarProgresso(t *testing.T) {
	_, st := newStore(t)
	svc := usecase.NewMetaService(st)
	ctx := context.Background()

	meta, err := svc.Create(ctx, "user-1", entities.MetaCreate{
		Titulo:    "Faturar 5 mil",
		Tipo:      entities.MetaFaturamento,
		ValorAlvo: 5000,
	})
	require.NoError(t, err)
	assert.False(t, meta.Concluida)

	meta, err = svc.RegistrarProgresso(ctx, meta.ID, 3000)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, meta.ValorAtual)
	assert.False(t, meta.Concluida)

	meta, err = svc.RegistrarProgresso(ctx, meta.ID, 5200)
	require.NoError(t, err)
	assert.True(t, meta.Concluida)

	// The flag does not flip back when the value later drops.
	meta, err = svc.RegistrarProgresso(ctx, meta.ID, 4000)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, meta.ValorAtual)
	assert.True(t, meta.Concluida)

	_, err = svc.RegistrarProgresso(ctx, "ghost", 1)
	assert.ErrorIs(t, err, usecase.ErrMetaNotFound)
}
