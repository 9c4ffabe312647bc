package usecase

import (
	"context"
	"fmt"

	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/internal/domain/schema"
	"atelie_gestor/internal/usecase/interfaces"
)

type IGuiaService interface {
	Sugerir(ctx context.Context, in entities.GuiaInput) (entities.GuiaSugestao, error)
}

// GuiaService validates both sides of the AI guide exchange: the business
// context before it leaves, and the returned suggestion before any caller
// sees it. A malformed model response surfaces as an error, never as a
// half-filled suggestion.
type GuiaService struct {
	gateway interfaces.IGuiaGateway
}

var _ IGuiaService = (*GuiaService)(nil)

func NewGuiaService(gateway interfaces.IGuiaGateway) *GuiaService {
	return &GuiaService{gateway: gateway}
}

func (s *GuiaService) Sugerir(ctx context.Context, in entities.GuiaInput) (entities.GuiaSugestao, error) {
	if err := schema.Validate(in); err != nil {
		return entities.GuiaSugestao{}, err
	}

	out, err := s.gateway.Sugerir(ctx, in)
	if err != nil {
		return entities.GuiaSugestao{}, err
	}
	if err := schema.Validate(out); err != nil {
		return entities.GuiaSugestao{}, fmt.Errorf("guide suggestion failed validation: %w", err)
	}
	return out, nil
}
