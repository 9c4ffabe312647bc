package usecase

import (
	"context"
	"strings"

	"atelie_gestor/internal/adapter/persistence/store"
	"atelie_gestor/internal/domain/entities"
)

type ICustoFixoService interface {
	Create(ctx context.Context, userID string, in entities.CustoFixoCreate) (entities.CustoFixo, error)
	GetByID(ctx context.Context, id string) (*entities.CustoFixo, error)
	List(ctx context.Context, userID string) ([]entities.CustoFixo, error)
	ListAtivos(ctx context.Context, userID string) ([]entities.CustoFixo, error)
	Update(ctx context.Context, id string, in entities.CustoFixoUpdate) (entities.CustoFixo, error)
	Delete(ctx context.Context, id string) error
}

type CustoFixoService struct {
	col *store.Collection[entities.CustoFixo, entities.CustoFixoCreate, entities.CustoFixoUpdate]
}

var _ ICustoFixoService = (*CustoFixoService)(nil)

func NewCustoFixoService(s *store.Store) *CustoFixoService {
	return &CustoFixoService{
		col: store.NewCollection[entities.CustoFixo, entities.CustoFixoCreate, entities.CustoFixoUpdate](s, "custos_fixos"),
	}
}

func (s *CustoFixoService) Create(ctx context.Context, userID string, in entities.CustoFixoCreate) (entities.CustoFixo, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.CustoFixo{}, ErrInvalidUserID
	}
	return s.col.Create(ctx, userID, in)
}

func (s *CustoFixoService) GetByID(ctx context.Context, id string) (*entities.CustoFixo, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidID
	}
	return s.col.GetByID(ctx, id)
}

func (s *CustoFixoService) List(ctx context.Context, userID string) ([]entities.CustoFixo, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return s.col.ListByOwner(ctx, userID, "nome", false)
}

func (s *CustoFixoService) ListAtivos(ctx context.Context, userID string) ([]entities.CustoFixo, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return s.col.QueryByOwner(ctx, userID, store.Query{
		Filters: []store.Filter{{Field: "ativo", Op: store.OpEq, Value: true}},
		OrderBy: "nome",
	})
}

func (s *CustoFixoService) Update(ctx context.Context, id string, in entities.CustoFixoUpdate) (entities.CustoFixo, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CustoFixo{}, ErrInvalidID
	}
	return s.col.Update(ctx, id, in)
}

func (s *CustoFixoService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	return s.col.Delete(ctx, id)
}
