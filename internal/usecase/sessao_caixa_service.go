package usecase

import (
	"context"
	"strings"
	"time"

	"atelie_gestor/internal/adapter/persistence/store"
	"atelie_gestor/internal/domain/entities"
)

type ISessaoCaixaService interface {
	Abrir(ctx context.Context, userID string, trocoInicial float64, observacoes string) (entities.SessaoCaixa, error)
	GetByID(ctx context.Context, id string) (*entities.SessaoCaixa, error)
	GetAberta(ctx context.Context, userID string) (*entities.SessaoCaixa, error)
	List(ctx context.Context, userID string) ([]entities.SessaoCaixa, error)
	Fechar(ctx context.Context, id string) (entities.SessaoCaixa, error)
	Delete(ctx context.Context, id string) error
}

// SessaoCaixaService binds the cash-session schemas to the gateway. One open
// session per owner; closing a session folds its vendas into totals per
// payment method.
type SessaoCaixaService struct {
	col    *store.Collection[entities.SessaoCaixa, entities.SessaoCaixaCreate, entities.SessaoCaixaUpdate]
	vendas *VendaService
}

var _ ISessaoCaixaService = (*SessaoCaixaService)(nil)

func NewSessaoCaixaService(s *store.Store, vendas *VendaService) *SessaoCaixaService {
	return &SessaoCaixaService{
		col:    store.NewCollection[entities.SessaoCaixa, entities.SessaoCaixaCreate, entities.SessaoCaixaUpdate](s, "sessoes_caixa"),
		vendas: vendas,
	}
}

// Abrir opens a session after checking none is open for the owner. The check
// and the write are separate calls, so two racing opens can both succeed;
// Fechar tolerates that by only ever closing the session it was given.
func (s *SessaoCaixaService) Abrir(ctx context.Context, userID string, trocoInicial float64, observacoes string) (entities.SessaoCaixa, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.SessaoCaixa{}, ErrInvalidUserID
	}

	aberta, err := s.GetAberta(ctx, userID)
	if err != nil {
		return entities.SessaoCaixa{}, err
	}
	if aberta != nil {
		return entities.SessaoCaixa{}, ErrSessaoJaAberta
	}

	return s.col.Create(ctx, userID, entities.SessaoCaixaCreate{
		Status:       entities.SessaoAberta,
		TrocoInicial: trocoInicial,
		AbertaEm:     time.Now().UTC(),
		Observacoes:  observacoes,
	})
}

func (s *SessaoCaixaService) GetByID(ctx context.Context, id string) (*entities.SessaoCaixa, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidID
	}
	return s.col.GetByID(ctx, id)
}

// GetAberta returns the owner's open session, or nil when the register is
// closed.
func (s *SessaoCaixaService) GetAberta(ctx context.Context, userID string) (*entities.SessaoCaixa, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	abertas, err := s.col.QueryByOwner(ctx, userID, store.Query{
		Filters: []store.Filter{{Field: "status", Op: store.OpEq, Value: string(entities.SessaoAberta)}},
		OrderBy: "abertaEm",
		Desc:    true,
		Limit:   1,
	})
	if err != nil {
		return nil, err
	}
	if len(abertas) == 0 {
		return nil, nil
	}
	return &abertas[0], nil
}

func (s *SessaoCaixaService) List(ctx context.Context, userID string) ([]entities.SessaoCaixa, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return s.col.ListByOwner(ctx, userID, "abertaEm", true)
}

// Fechar closes the session: totals per payment method are computed from the
// concluded vendas tied to it, and the closing balance is the opening float
// plus the cash total.
func (s *SessaoCaixaService) Fechar(ctx context.Context, id string) (entities.SessaoCaixa, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SessaoCaixa{}, ErrInvalidID
	}

	sessao, err := s.col.GetByID(ctx, id)
	if err != nil {
		return entities.SessaoCaixa{}, err
	}
	if sessao == nil {
		return entities.SessaoCaixa{}, ErrSessaoNotFound
	}
	if sessao.Status == entities.SessaoFechada {
		return entities.SessaoCaixa{}, ErrSessaoFechada
	}

	totais := map[string]float64{}
	if s.vendas != nil {
		vendas, err := s.vendas.ListBySessao(ctx, sessao.UserID, sessao.ID)
		if err != nil {
			return entities.SessaoCaixa{}, err
		}
		for _, v := range vendas {
			if v.Status != entities.VendaConcluida {
				continue
			}
			totais[string(v.FormaPagamento)] += v.Total
		}
	}

	status := entities.SessaoFechada
	fechadaEm := time.Now().UTC()
	saldo := sessao.TrocoInicial + totais[string(entities.PagamentoDinheiro)]
	return s.col.Update(ctx, id, entities.SessaoCaixaUpdate{
		Status:          &status,
		FechadaEm:       &fechadaEm,
		TotaisPorForma:  totais,
		SaldoFechamento: &saldo,
	})
}

func (s *SessaoCaixaService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	return s.col.Delete(ctx, id)
}
