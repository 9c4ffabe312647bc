package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"atelie_gestor/internal/adapter/persistence/store"
	"atelie_gestor/internal/domain/entities"
)

type IAgendamentoService interface {
	Create(ctx context.Context, userID string, in entities.AgendamentoCreate) (entities.Agendamento, error)
	GetByID(ctx context.Context, id string) (*entities.Agendamento, error)
	List(ctx context.Context, userID string) ([]entities.Agendamento, error)
	ListByPeriodo(ctx context.Context, userID string, inicio, fim time.Time) ([]entities.Agendamento, error)
	Update(ctx context.Context, id string, in entities.AgendamentoUpdate) (entities.Agendamento, error)
	Confirmar(ctx context.Context, id string) (entities.Agendamento, error)
	Delete(ctx context.Context, id string) error
}

// AgendamentoService binds the appointment schemas to the gateway. When an
// appointment flagged gerarPedido is confirmed, a matching Pedido is opened.
type AgendamentoService struct {
	col     *store.Collection[entities.Agendamento, entities.AgendamentoCreate, entities.AgendamentoUpdate]
	pedidos *PedidoService
}

var _ IAgendamentoService = (*AgendamentoService)(nil)

func NewAgendamentoService(s *store.Store, pedidos *PedidoService) *AgendamentoService {
	return &AgendamentoService{
		col:     store.NewCollection[entities.Agendamento, entities.AgendamentoCreate, entities.AgendamentoUpdate](s, "agendamentos"),
		pedidos: pedidos,
	}
}

func (s *AgendamentoService) Create(ctx context.Context, userID string, in entities.AgendamentoCreate) (entities.Agendamento, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Agendamento{}, ErrInvalidUserID
	}
	return s.col.Create(ctx, userID, in)
}

func (s *AgendamentoService) GetByID(ctx context.Context, id string) (*entities.Agendamento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidID
	}
	return s.col.GetByID(ctx, id)
}

func (s *AgendamentoService) List(ctx context.Context, userID string) ([]entities.Agendamento, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return s.col.ListByOwner(ctx, userID, "dataHora", false)
}

func (s *AgendamentoService) ListByPeriodo(ctx context.Context, userID string, inicio, fim time.Time) ([]entities.Agendamento, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return s.col.QueryByOwner(ctx, userID, store.Query{
		Filters: []store.Filter{
			{Field: "dataHora", Op: store.OpGte, Value: inicio.UTC()},
			{Field: "dataHora", Op: store.OpLt, Value: fim.UTC()},
		},
		OrderBy: "dataHora",
	})
}

func (s *AgendamentoService) Update(ctx context.Context, id string, in entities.AgendamentoUpdate) (entities.Agendamento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Agendamento{}, ErrInvalidID
	}
	return s.col.Update(ctx, id, in)
}

// Confirmar marks the appointment confirmed and, when it was created with
// gerarPedido, opens the corresponding service order. The order carries a
// single line item named after the appointment's servico; pricing is left for
// the owner to fill in afterwards.
func (s *AgendamentoService) Confirmar(ctx context.Context, id string) (entities.Agendamento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Agendamento{}, ErrInvalidID
	}

	status := entities.AgendamentoConfirmado
	ag, err := s.col.Update(ctx, id, entities.AgendamentoUpdate{Status: &status})
	if err != nil {
		return entities.Agendamento{}, err
	}

	if ag.GerarPedido && s.pedidos != nil {
		origem := entities.OrigemManual
		if ag.ServicoID != "" {
			origem = entities.OrigemCatalogo
		}
		if _, err := s.pedidos.Create(ctx, ag.UserID, entities.PedidoCreate{
			ClienteID:   ag.ClienteID,
			ClienteNome: ag.ClienteNome,
			Itens: []entities.ItemPedido{{
				ProdutoID:     ag.ServicoID,
				Nome:          ag.ServicoNome,
				Quantidade:    1,
				PrecoUnitario: 0,
				Origem:        origem,
			}},
			DataEntrega:     &ag.DataHora,
			StatusProducao:  entities.ProducaoPendente,
			StatusPagamento: entities.PagamentoPendente,
		}); err != nil {
			return entities.Agendamento{}, fmt.Errorf("opening pedido for agendamento %s: %w", ag.ID, err)
		}
	}

	return ag, nil
}

func (s *AgendamentoService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	return s.col.Delete(ctx, id)
}
