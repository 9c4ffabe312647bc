package usecase

import (
	"context"
	"strings"

	"atelie_gestor/internal/adapter/persistence/store"
	"atelie_gestor/internal/domain/entities"
)

type IOrdemProducaoService interface {
	Create(ctx context.Context, userID string, in entities.OrdemProducaoCreate) (entities.OrdemProducao, error)
	GetByID(ctx context.Context, id string) (*entities.OrdemProducao, error)
	List(ctx context.Context, userID string) ([]entities.OrdemProducao, error)
	ListByPedido(ctx context.Context, userID, pedidoID string) ([]entities.OrdemProducao, error)
	Update(ctx context.Context, id string, in entities.OrdemProducaoUpdate) (entities.OrdemProducao, error)
	AtualizarProgresso(ctx context.Context, id string, progresso int) (entities.OrdemProducao, error)
	Delete(ctx context.Context, id string) error
}

// OrdemProducaoService binds the production-order schemas to the gateway.
type OrdemProducaoService struct {
	col *store.Collection[entities.OrdemProducao, entities.OrdemProducaoCreate, entities.OrdemProducaoUpdate]
}

var _ IOrdemProducaoService = (*OrdemProducaoService)(nil)

func NewOrdemProducaoService(s *store.Store) *OrdemProducaoService {
	return &OrdemProducaoService{
		col: store.NewCollection[entities.OrdemProducao, entities.OrdemProducaoCreate, entities.OrdemProducaoUpdate](s, "ordens_producao"),
	}
}

func (s *OrdemProducaoService) Create(ctx context.Context, userID string, in entities.OrdemProducaoCreate) (entities.OrdemProducao, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.OrdemProducao{}, ErrInvalidUserID
	}
	return s.col.Create(ctx, userID, in)
}

func (s *OrdemProducaoService) GetByID(ctx context.Context, id string) (*entities.OrdemProducao, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidID
	}
	return s.col.GetByID(ctx, id)
}

func (s *OrdemProducaoService) List(ctx context.Context, userID string) ([]entities.OrdemProducao, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return s.col.ListByOwner(ctx, userID, "createdAt", true)
}

func (s *OrdemProducaoService) ListByPedido(ctx context.Context, userID, pedidoID string) ([]entities.OrdemProducao, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	pedidoID = strings.TrimSpace(pedidoID)
	if pedidoID == "" {
		return nil, ErrInvalidID
	}
	return s.col.QueryByOwner(ctx, userID, store.Query{
		Filters: []store.Filter{{Field: "pedidoId", Op: store.OpEq, Value: pedidoID}},
		OrderBy: "createdAt",
		Desc:    true,
	})
}

func (s *OrdemProducaoService) Update(ctx context.Context, id string, in entities.OrdemProducaoUpdate) (entities.OrdemProducao, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OrdemProducao{}, ErrInvalidID
	}
	// Keep progresso and status consistent when only one was supplied.
	if in.Progresso != nil && in.Status == nil {
		status := entities.StatusForProgresso(*in.Progresso)
		in.Status = &status
	}
	return s.col.Update(ctx, id, in)
}

// AtualizarProgresso sets the progress percentage and derives the status from
// it.
func (s *OrdemProducaoService) AtualizarProgresso(ctx context.Context, id string, progresso int) (entities.OrdemProducao, error) {
	return s.Update(ctx, id, entities.OrdemProducaoUpdate{Progresso: &progresso})
}

func (s *OrdemProducaoService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	return s.col.Delete(ctx, id)
}
