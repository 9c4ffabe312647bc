package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"atelie_gestor/internal/adapter/persistence/store"
	"atelie_gestor/internal/domain/entities"

	"github.com/rs/zerolog"
)

var ErrVendaJaCancelada = errors.New("venda already cancelled")

type IVendaService interface {
	Create(ctx context.Context, userID string, in entities.VendaCreate) (entities.Venda, error)
	GetByID(ctx context.Context, id string) (*entities.Venda, error)
	List(ctx context.Context, userID string) ([]entities.Venda, error)
	ListBySessao(ctx context.Context, userID, sessaoID string) ([]entities.Venda, error)
	Cancelar(ctx context.Context, id string) (entities.Venda, error)
	Delete(ctx context.Context, id string) error
}

// VendaService binds the counter-sale schemas to the gateway and drives the
// side effects of a sale: stock decrements for catalog items and the receita
// lancamento. The steps are independent writes, not a transaction; a stock
// failure after the sale was stored is logged and surfaced, leaving the sale
// in place.
type VendaService struct {
	col         *store.Collection[entities.Venda, entities.VendaCreate, entities.VendaUpdate]
	produtos    *ProdutoServicoService
	lancamentos *LancamentoService
	log         zerolog.Logger
}

var _ IVendaService = (*VendaService)(nil)

func NewVendaService(s *store.Store, produtos *ProdutoServicoService, lancamentos *LancamentoService, log zerolog.Logger) *VendaService {
	return &VendaService{
		col:         store.NewCollection[entities.Venda, entities.VendaCreate, entities.VendaUpdate](s, "vendas"),
		produtos:    produtos,
		lancamentos: lancamentos,
		log:         log,
	}
}

func (s *VendaService) Create(ctx context.Context, userID string, in entities.VendaCreate) (entities.Venda, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Venda{}, ErrInvalidUserID
	}

	venda, err := s.col.Create(ctx, userID, in)
	if err != nil {
		return entities.Venda{}, err
	}

	if venda.Status == entities.VendaConcluida {
		if err := s.ajustarEstoqueItens(ctx, venda, -1); err != nil {
			return entities.Venda{}, err
		}
		if s.lancamentos != nil {
			if _, err := s.lancamentos.Create(ctx, userID, entities.LancamentoCreate{
				Titulo:    "Venda balcão",
				Valor:     venda.Total,
				Tipo:      entities.LancamentoReceita,
				Data:      time.Now().UTC(),
				Categoria: "Vendas",
				Status:    entities.LancamentoRecebido,
				VendaID:   venda.ID,
			}); err != nil {
				return entities.Venda{}, fmt.Errorf("recording lancamento for venda %s: %w", venda.ID, err)
			}
		}
	}

	return venda, nil
}

// ajustarEstoqueItens applies sign*quantidade to the stock of every catalog
// item in the sale. Items typed in manually (no produtoId) are skipped, as are
// catalog entries that turn out to be servicos.
func (s *VendaService) ajustarEstoqueItens(ctx context.Context, venda entities.Venda, sign float64) error {
	if s.produtos == nil {
		return nil
	}
	for _, item := range venda.Itens {
		if item.ProdutoID == "" {
			continue
		}
		if _, err := s.produtos.AjustarEstoque(ctx, item.ProdutoID, sign*item.Quantidade); err != nil {
			if errors.Is(err, ErrProdutoNotFound) {
				s.log.Warn().
					Str("venda", venda.ID).
					Str("produto", item.ProdutoID).
					Msg("sale item references a missing produto, stock not adjusted")
				continue
			}
			return fmt.Errorf("adjusting stock for produto %s: %w", item.ProdutoID, err)
		}
	}
	return nil
}

func (s *VendaService) GetByID(ctx context.Context, id string) (*entities.Venda, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidID
	}
	return s.col.GetByID(ctx, id)
}

func (s *VendaService) List(ctx context.Context, userID string) ([]entities.Venda, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return s.col.ListByOwner(ctx, userID, "createdAt", true)
}

func (s *VendaService) ListBySessao(ctx context.Context, userID, sessaoID string) ([]entities.Venda, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	sessaoID = strings.TrimSpace(sessaoID)
	if sessaoID == "" {
		return nil, ErrInvalidID
	}
	return s.col.QueryByOwner(ctx, userID, store.Query{
		Filters: []store.Filter{{Field: "sessaoCaixaId", Op: store.OpEq, Value: sessaoID}},
		OrderBy: "createdAt",
	})
}

// Cancelar flips the sale to cancelada and puts the catalog stock back.
func (s *VendaService) Cancelar(ctx context.Context, id string) (entities.Venda, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Venda{}, ErrInvalidID
	}

	current, err := s.col.GetByID(ctx, id)
	if err != nil {
		return entities.Venda{}, err
	}
	if current == nil {
		return entities.Venda{}, ErrVendaNotFound
	}
	if current.Status == entities.VendaCancelada {
		return entities.Venda{}, ErrVendaJaCancelada
	}

	status := entities.VendaCancelada
	venda, err := s.col.Update(ctx, id, entities.VendaUpdate{Status: &status})
	if err != nil {
		return entities.Venda{}, err
	}
	if err := s.ajustarEstoqueItens(ctx, venda, 1); err != nil {
		return entities.Venda{}, err
	}
	return venda, nil
}

func (s *VendaService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	return s.col.Delete(ctx, id)
}
