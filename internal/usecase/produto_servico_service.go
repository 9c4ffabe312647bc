package usecase

import (
	"context"
	"errors"
	"strings"

	"atelie_gestor/internal/adapter/persistence/store"
	"atelie_gestor/internal/domain/entities"
)

type IProdutoServicoService interface {
	Create(ctx context.Context, userID string, in entities.ProdutoServicoCreate) (entities.ProdutoServico, error)
	GetByID(ctx context.Context, id string) (*entities.ProdutoServico, error)
	List(ctx context.Context, userID string) ([]entities.ProdutoServico, error)
	ListAtivos(ctx context.Context, userID string) ([]entities.ProdutoServico, error)
	ListByTipo(ctx context.Context, userID string, tipo entities.TipoItem) ([]entities.ProdutoServico, error)
	Update(ctx context.Context, id string, in entities.ProdutoServicoUpdate) (entities.ProdutoServico, error)
	AjustarEstoque(ctx context.Context, id string, delta float64) (entities.ProdutoServico, error)
	Delete(ctx context.Context, id string) error
}

// ProdutoServicoService binds the catalog schemas to the gateway and owns the
// tipo-dependent stock-field normalization.
type ProdutoServicoService struct {
	col *store.Collection[entities.ProdutoServico, entities.ProdutoServicoCreate, entities.ProdutoServicoUpdate]
}

var _ IProdutoServicoService = (*ProdutoServicoService)(nil)

func NewProdutoServicoService(s *store.Store) *ProdutoServicoService {
	return &ProdutoServicoService{
		col: store.NewCollection[entities.ProdutoServico, entities.ProdutoServicoCreate, entities.ProdutoServicoUpdate](s, "produtos_servicos").
			WithNormalizeCreate(normalizeProdutoCreate).
			WithNormalizeUpdate(normalizeProdutoUpdate),
	}
}

// normalizeProdutoCreate drops stock fields from services before validation;
// a servico is valid with or without them, a produto must supply all three.
func normalizeProdutoCreate(in *entities.ProdutoServicoCreate) {
	if in.Tipo == entities.TipoServico {
		in.CustoUnitario, in.Estoque, in.EstoqueMinimo = nil, nil, nil
	}
}

// normalizeProdutoUpdate defaults the stock fields to zero when an entity is
// being switched to produto without them; the switch to servico is finished
// by Update (the stale attributes are removed there).
func normalizeProdutoUpdate(in *entities.ProdutoServicoUpdate) {
	if in.Tipo == nil || *in.Tipo != entities.TipoProduto {
		return
	}
	zero := 0.0
	if in.CustoUnitario == nil {
		in.CustoUnitario = &zero
	}
	if in.Estoque == nil {
		in.Estoque = &zero
	}
	if in.EstoqueMinimo == nil {
		in.EstoqueMinimo = &zero
	}
}

func (s *ProdutoServicoService) Create(ctx context.Context, userID string, in entities.ProdutoServicoCreate) (entities.ProdutoServico, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.ProdutoServico{}, ErrInvalidUserID
	}
	return s.col.Create(ctx, userID, in)
}

func (s *ProdutoServicoService) GetByID(ctx context.Context, id string) (*entities.ProdutoServico, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidID
	}
	return s.col.GetByID(ctx, id)
}

func (s *ProdutoServicoService) List(ctx context.Context, userID string) ([]entities.ProdutoServico, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return s.col.ListByOwner(ctx, userID, "nome", false)
}

func (s *ProdutoServicoService) ListAtivos(ctx context.Context, userID string) ([]entities.ProdutoServico, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return s.col.QueryByOwner(ctx, userID, store.Query{
		Filters: []store.Filter{{Field: "ativo", Op: store.OpEq, Value: true}},
		OrderBy: "nome",
	})
}

func (s *ProdutoServicoService) ListByTipo(ctx context.Context, userID string, tipo entities.TipoItem) ([]entities.ProdutoServico, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return s.col.QueryByOwner(ctx, userID, store.Query{
		Filters: []store.Filter{{Field: "tipo", Op: store.OpEq, Value: string(tipo)}},
		OrderBy: "nome",
	})
}

// Update applies the partial write. Switching tipo to servico additionally
// removes the stock attributes: a merge write cannot delete a field, and a
// servico must not retain stale produto stock.
func (s *ProdutoServicoService) Update(ctx context.Context, id string, in entities.ProdutoServicoUpdate) (entities.ProdutoServico, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProdutoServico{}, ErrInvalidID
	}

	updated, err := s.col.Update(ctx, id, in)
	if err != nil {
		return entities.ProdutoServico{}, err
	}

	if in.Tipo != nil && *in.Tipo == entities.TipoServico {
		return s.col.RemoveFields(ctx, id, "custoUnitario", "estoque", "estoqueMinimo")
	}
	return updated, nil
}

// AjustarEstoque applies a stock delta. This is the separate, caller-visible
// operation used after a sale; nothing in the gateway cascades stock changes
// implicitly. The write is a single guarded arithmetic update: the store
// itself rejects any delta that would take estoque below zero, so concurrent
// adjustments cannot intersect into an oversell. The preceding read only
// dispatches on the entity kind; services carry no stock and are a no-op.
func (s *ProdutoServicoService) AjustarEstoque(ctx context.Context, id string, delta float64) (entities.ProdutoServico, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProdutoServico{}, ErrInvalidID
	}

	current, err := s.col.GetByID(ctx, id)
	if err != nil {
		return entities.ProdutoServico{}, err
	}
	if current == nil {
		return entities.ProdutoServico{}, ErrProdutoNotFound
	}
	if current.Tipo != entities.TipoProduto || current.Estoque == nil {
		return *current, nil
	}

	updated, err := s.col.AddToField(ctx, id, "estoque", delta)
	if err != nil {
		if errors.Is(err, store.ErrConditionFailed) {
			if again, readErr := s.col.GetByID(ctx, id); readErr == nil && again == nil {
				return entities.ProdutoServico{}, ErrProdutoNotFound
			}
			return entities.ProdutoServico{}, ErrEstoqueNegativo
		}
		return entities.ProdutoServico{}, err
	}
	return updated, nil
}

func (s *ProdutoServicoService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	return s.col.Delete(ctx, id)
}
