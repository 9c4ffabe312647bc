package usecase

import (
	"context"
	"strings"
	"time"

	"atelie_gestor/internal/adapter/persistence/store"
	"atelie_gestor/internal/domain/entities"
)

type ILancamentoService interface {
	Create(ctx context.Context, userID string, in entities.LancamentoCreate) (entities.Lancamento, error)
	GetByID(ctx context.Context, id string) (*entities.Lancamento, error)
	List(ctx context.Context, userID string) ([]entities.Lancamento, error)
	ListByPeriodo(ctx context.Context, userID string, inicio, fim time.Time) ([]entities.Lancamento, error)
	ListByTipo(ctx context.Context, userID string, tipo entities.TipoLancamento) ([]entities.Lancamento, error)
	Update(ctx context.Context, id string, in entities.LancamentoUpdate) (entities.Lancamento, error)
	Delete(ctx context.Context, id string) error
}

// LancamentoService binds the financial-entry schemas to the gateway.
type LancamentoService struct {
	col *store.Collection[entities.Lancamento, entities.LancamentoCreate, entities.LancamentoUpdate]
}

var _ ILancamentoService = (*LancamentoService)(nil)

func NewLancamentoService(s *store.Store) *LancamentoService {
	return &LancamentoService{
		col: store.NewCollection[entities.Lancamento, entities.LancamentoCreate, entities.LancamentoUpdate](s, "lancamentos"),
	}
}

func (s *LancamentoService) Create(ctx context.Context, userID string, in entities.LancamentoCreate) (entities.Lancamento, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Lancamento{}, ErrInvalidUserID
	}
	return s.col.Create(ctx, userID, in)
}

func (s *LancamentoService) GetByID(ctx context.Context, id string) (*entities.Lancamento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidID
	}
	return s.col.GetByID(ctx, id)
}

func (s *LancamentoService) List(ctx context.Context, userID string) ([]entities.Lancamento, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return s.col.ListByOwner(ctx, userID, "data", true)
}

// ListByPeriodo returns entries whose data falls in [inicio, fim).
func (s *LancamentoService) ListByPeriodo(ctx context.Context, userID string, inicio, fim time.Time) ([]entities.Lancamento, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return s.col.QueryByOwner(ctx, userID, store.Query{
		Filters: []store.Filter{
			{Field: "data", Op: store.OpGte, Value: inicio.UTC()},
			{Field: "data", Op: store.OpLt, Value: fim.UTC()},
		},
		OrderBy: "data",
		Desc:    true,
	})
}

func (s *LancamentoService) ListByTipo(ctx context.Context, userID string, tipo entities.TipoLancamento) ([]entities.Lancamento, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return s.col.QueryByOwner(ctx, userID, store.Query{
		Filters: []store.Filter{{Field: "tipo", Op: store.OpEq, Value: string(tipo)}},
		OrderBy: "data",
		Desc:    true,
	})
}

func (s *LancamentoService) Update(ctx context.Context, id string, in entities.LancamentoUpdate) (entities.Lancamento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lancamento{}, ErrInvalidID
	}
	return s.col.Update(ctx, id, in)
}

func (s *LancamentoService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	return s.col.Delete(ctx, id)
}
