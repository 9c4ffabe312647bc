package usecase

import (
	"context"
	"strings"

	"atelie_gestor/internal/adapter/persistence/store"
	"atelie_gestor/internal/domain/entities"
)

type IMetaService interface {
	Create(ctx context.Context, userID string, in entities.MetaCreate) (entities.Meta, error)
	GetByID(ctx context.Context, id string) (*entities.Meta, error)
	List(ctx context.Context, userID string) ([]entities.Meta, error)
	Update(ctx context.Context, id string, in entities.MetaUpdate) (entities.Meta, error)
	RegistrarProgresso(ctx context.Context, id string, valorAtual float64) (entities.Meta, error)
	Delete(ctx context.Context, id string) error
}

type MetaService struct {
	col *store.Collection[entities.Meta, entities.MetaCreate, entities.MetaUpdate]
}

var _ IMetaService = (*MetaService)(nil)

func NewMetaService(s *store.Store) *MetaService {
	return &MetaService{
		col: store.NewCollection[entities.Meta, entities.MetaCreate, entities.MetaUpdate](s, "metas"),
	}
}

func (s *MetaService) Create(ctx context.Context, userID string, in entities.MetaCreate) (entities.Meta, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Meta{}, ErrInvalidUserID
	}
	return s.col.Create(ctx, userID, in)
}

func (s *MetaService) GetByID(ctx context.Context, id string) (*entities.Meta, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidID
	}
	return s.col.GetByID(ctx, id)
}

func (s *MetaService) List(ctx context.Context, userID string) ([]entities.Meta, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return s.col.ListByOwner(ctx, userID, "createdAt", true)
}

func (s *MetaService) Update(ctx context.Context, id string, in entities.MetaUpdate) (entities.Meta, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Meta{}, ErrInvalidID
	}
	return s.col.Update(ctx, id, in)
}

// RegistrarProgresso updates the current value and marks the goal concluida
// once the target is reached. The flag never flips back automatically.
func (s *MetaService) RegistrarProgresso(ctx context.Context, id string, valorAtual float64) (entities.Meta, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Meta{}, ErrInvalidID
	}

	current, err := s.col.GetByID(ctx, id)
	if err != nil {
		return entities.Meta{}, err
	}
	if current == nil {
		return entities.Meta{}, ErrMetaNotFound
	}

	in := entities.MetaUpdate{ValorAtual: &valorAtual}
	if !current.Concluida && valorAtual >= current.ValorAlvo {
		concluida := true
		in.Concluida = &concluida
	}
	return s.col.Update(ctx, id, in)
}

func (s *MetaService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	return s.col.Delete(ctx, id)
}
