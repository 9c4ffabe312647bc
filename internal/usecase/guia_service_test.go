package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/internal/domain/schema"
	"atelie_gestor/internal/usecase"
)

type stubGuiaGateway struct {
	out entities.GuiaSugestao
	err error
}

func (g *stubGuiaGateway) Sugerir(context.Context, entities.GuiaInput) (entities.GuiaSugestao, error) {
	return g.out, g.err
}

func TestGuiaSugerir(t *testing.T) {
	svc := usecase.NewGuiaService(&stubGuiaGateway{out: entities.GuiaSugestao{
		NomeSugerido:  "Necessaire bordada",
		Tipo:          entities.TipoProduto,
		PrecoSugerido: 45,
		CustoEstimado: 18,
	}})

	out, err := svc.Sugerir(context.Background(), entities.GuiaInput{
		RamoAtividade: "ateliê de costura",
		DescricaoItem: "necessaire com bordado personalizado",
	})
	require.NoError(t, err)
	assert.Equal(t, "Necessaire bordada", out.NomeSugerido)
}

func TestGuiaSugerirValidatesInput(t *testing.T) {
	svc := usecase.NewGuiaService(&stubGuiaGateway{})

	_, err := svc.Sugerir(context.Background(), entities.GuiaInput{})
	require.Error(t, err)
	require.NotNil(t, schema.AsValidationError(err))
}

// A malformed model response never reaches the caller as a half-filled
// suggestion.
func TestGuiaSugerirValidatesOutput(t *testing.T) {
	svc := usecase.NewGuiaService(&stubGuiaGateway{out: entities.GuiaSugestao{
		Tipo: "assinatura",
	}})

	_, err := svc.Sugerir(context.Background(), entities.GuiaInput{
		RamoAtividade: "ateliê de costura",
		DescricaoItem: "necessaire",
	})
	require.Error(t, err)
	assert.NotNil(t, schema.AsValidationError(err))
}
