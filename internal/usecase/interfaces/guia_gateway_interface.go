package interfaces

import (
	"context"

	"atelie_gestor/internal/domain/entities"
)

// IGuiaGateway abstracts the AI text-completion collaborator used by the
// guided form-filling flow: an opaque structured-input to structured-output
// function. The core adds no retry/backoff of its own.
type IGuiaGateway interface {
	Sugerir(ctx context.Context, input entities.GuiaInput) (entities.GuiaSugestao, error)
}
