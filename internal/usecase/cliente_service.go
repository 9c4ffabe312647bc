package usecase

import (
	"context"
	"strings"

	"atelie_gestor/internal/adapter/persistence/store"
	"atelie_gestor/internal/domain/entities"
)

// IClienteService exposes customer CRUD.
type IClienteService interface {
	Create(ctx context.Context, userID string, in entities.ClienteCreate) (entities.Cliente, error)
	GetByID(ctx context.Context, id string) (*entities.Cliente, error)
	List(ctx context.Context, userID string) ([]entities.Cliente, error)
	Update(ctx context.Context, id string, in entities.ClienteUpdate) (entities.Cliente, error)
	Delete(ctx context.Context, id string) error
}

// ClienteService is a thin binding of the cliente schemas to the generic
// gateway; every other entity service follows the same shape.
type ClienteService struct {
	col *store.Collection[entities.Cliente, entities.ClienteCreate, entities.ClienteUpdate]
}

var _ IClienteService = (*ClienteService)(nil)

func NewClienteService(s *store.Store) *ClienteService {
	return &ClienteService{
		col: store.NewCollection[entities.Cliente, entities.ClienteCreate, entities.ClienteUpdate](s, "clientes"),
	}
}

func (s *ClienteService) Create(ctx context.Context, userID string, in entities.ClienteCreate) (entities.Cliente, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Cliente{}, ErrInvalidUserID
	}
	return s.col.Create(ctx, userID, in)
}

func (s *ClienteService) GetByID(ctx context.Context, id string) (*entities.Cliente, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidID
	}
	return s.col.GetByID(ctx, id)
}

func (s *ClienteService) List(ctx context.Context, userID string) ([]entities.Cliente, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return s.col.ListByOwner(ctx, userID, "nome", false)
}

func (s *ClienteService) Update(ctx context.Context, id string, in entities.ClienteUpdate) (entities.Cliente, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Cliente{}, ErrInvalidID
	}
	return s.col.Update(ctx, id, in)
}

func (s *ClienteService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	return s.col.Delete(ctx, id)
}
