package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"atelie_gestor/internal/adapter/persistence/store"
	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

var (
	ErrPagamentoGatewayIndisponivel = errors.New("payment gateway not configured")
	ErrPedidoSemEntrada             = errors.New("pedido has no advance payment to process")
)

type IPedidoService interface {
	Create(ctx context.Context, userID string, in entities.PedidoCreate) (entities.Pedido, error)
	GetByID(ctx context.Context, id string) (*entities.Pedido, error)
	List(ctx context.Context, userID string) ([]entities.Pedido, error)
	ListByStatusProducao(ctx context.Context, userID string, status entities.StatusProducao) ([]entities.Pedido, error)
	Update(ctx context.Context, id string, in entities.PedidoUpdate) (entities.Pedido, error)
	Delete(ctx context.Context, id string) error
	ProcessarEntrada(ctx context.Context, id string, payload json.RawMessage) (entities.Pedido, error)
}

// PedidoService binds the service-order schemas to the gateway and drives the
// cross-entity sequences around an order: the advance-payment lancamento and
// the matching ordem de producao. Each step is an independent call; there is
// no transaction wrapping the sequence.
type PedidoService struct {
	col         *store.Collection[entities.Pedido, entities.PedidoCreate, entities.PedidoUpdate]
	lancamentos *LancamentoService
	ordens      *OrdemProducaoService
	pagamentos  interfaces.IPaymentGateway
	log         zerolog.Logger
}

var _ IPedidoService = (*PedidoService)(nil)

func NewPedidoService(s *store.Store, lancamentos *LancamentoService, ordens *OrdemProducaoService, pagamentos interfaces.IPaymentGateway, log zerolog.Logger) *PedidoService {
	return &PedidoService{
		col:         store.NewCollection[entities.Pedido, entities.PedidoCreate, entities.PedidoUpdate](s, "pedidos"),
		lancamentos: lancamentos,
		ordens:      ordens,
		pagamentos:  pagamentos,
		log:         log,
	}
}

// Create persists the order, then runs the follow-up sequence:
//
//  1. If numero was not supplied, stamp it with the store-assigned id. The id
//     only exists after the first write, hence the deliberate second update
//     rather than a pre-assigned number.
//  2. Open the matching ordem de producao.
//  3. If there is an advance payment, record its lancamento.
func (s *PedidoService) Create(ctx context.Context, userID string, in entities.PedidoCreate) (entities.Pedido, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Pedido{}, ErrInvalidUserID
	}

	created, err := s.col.Create(ctx, userID, in)
	if err != nil {
		return entities.Pedido{}, err
	}

	if created.Numero == "" {
		numero := created.ID
		created, err = s.col.Update(ctx, created.ID, entities.PedidoUpdate{Numero: &numero})
		if err != nil {
			return entities.Pedido{}, fmt.Errorf("stamping pedido numero: %w", err)
		}
	}

	if s.ordens != nil {
		if _, err := s.ordens.Create(ctx, userID, entities.OrdemProducaoCreate{
			PedidoID:     created.ID,
			PedidoNumero: created.Numero,
			Progresso:    0,
			Status:       entities.OrdemPendente,
		}); err != nil {
			return entities.Pedido{}, fmt.Errorf("opening ordem de producao for pedido %s: %w", created.ID, err)
		}
	}

	if created.Entrada > 0 && s.lancamentos != nil {
		if _, err := s.registrarLancamentoEntrada(ctx, userID, created); err != nil {
			return entities.Pedido{}, fmt.Errorf("recording entrada lancamento for pedido %s: %w", created.ID, err)
		}
	}

	return created, nil
}

func (s *PedidoService) registrarLancamentoEntrada(ctx context.Context, userID string, p entities.Pedido) (entities.Lancamento, error) {
	return s.lancamentos.Create(ctx, userID, entities.LancamentoCreate{
		Titulo:    "Entrada pedido #" + p.Numero,
		Valor:     p.Entrada,
		Tipo:      entities.LancamentoReceita,
		Data:      time.Now().UTC(),
		Categoria: "Encomendas",
		Status:    entities.LancamentoRecebido,
		PedidoID:  p.ID,
	})
}

func (s *PedidoService) GetByID(ctx context.Context, id string) (*entities.Pedido, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidID
	}
	return s.col.GetByID(ctx, id)
}

func (s *PedidoService) List(ctx context.Context, userID string) ([]entities.Pedido, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return s.col.ListByOwner(ctx, userID, "createdAt", true)
}

func (s *PedidoService) ListByStatusProducao(ctx context.Context, userID string, status entities.StatusProducao) ([]entities.Pedido, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return s.col.QueryByOwner(ctx, userID, store.Query{
		Filters: []store.Filter{{Field: "statusProducao", Op: store.OpEq, Value: string(status)}},
		OrderBy: "createdAt",
		Desc:    true,
	})
}

func (s *PedidoService) Update(ctx context.Context, id string, in entities.PedidoUpdate) (entities.Pedido, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Pedido{}, ErrInvalidID
	}
	return s.col.Update(ctx, id, in)
}

func (s *PedidoService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	return s.col.Delete(ctx, id)
}

// ProcessarEntrada charges the order's advance payment through the external
// provider, then marks the order paid up to the entrada. The source of truth
// for the amount is the stored order, never the caller payload.
func (s *PedidoService) ProcessarEntrada(ctx context.Context, id string, payload json.RawMessage) (entities.Pedido, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Pedido{}, ErrInvalidID
	}
	if s.pagamentos == nil {
		return entities.Pedido{}, ErrPagamentoGatewayIndisponivel
	}

	pedido, err := s.col.GetByID(ctx, id)
	if err != nil {
		return entities.Pedido{}, err
	}
	if pedido == nil {
		return entities.Pedido{}, ErrPedidoNotFound
	}
	if pedido.Entrada <= 0 {
		return entities.Pedido{}, ErrPedidoSemEntrada
	}

	req := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		if err := json.Unmarshal(payload, &req); err != nil {
			req = map[string]any{}
		}
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = pedido.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Entrada pedido %s", pedido.Numero)
	}
	req["transaction_amount"] = pedido.Entrada

	body, err := json.Marshal(req)
	if err != nil {
		return entities.Pedido{}, err
	}

	providerID, providerStatus, _, err := s.pagamentos.CreatePayment(ctx, body)
	if err != nil {
		s.log.Warn().Err(err).Str("pedido", pedido.ID).Msg("payment gateway failed for entrada")
		return entities.Pedido{}, err
	}
	s.log.Info().
		Str("pedido", pedido.ID).
		Str("provider_payment_id", providerID).
		Str("provider_status", providerStatus).
		Msg("entrada processed")

	valorPago := pedido.ValorPago + pedido.Entrada
	status := entities.PagamentoParcial
	if valorPago >= pedido.Total {
		status = entities.PagamentoQuitado
	}
	return s.col.Update(ctx, pedido.ID, entities.PedidoUpdate{
		ValorPago:       &valorPago,
		StatusPagamento: &status,
	})
}
