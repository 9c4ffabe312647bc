package entities

import "time"

// TipoLancamento gives the sign of a financial entry. Valor is always stored
// non-negative; the sign is implied by the tipo.
type TipoLancamento string

const (
	LancamentoReceita TipoLancamento = "receita"
	LancamentoDespesa TipoLancamento = "despesa"
)

type StatusLancamento string

const (
	LancamentoPago     StatusLancamento = "pago"
	LancamentoRecebido StatusLancamento = "recebido"
	LancamentoPendente StatusLancamento = "pendente"
)

// Lancamento is one financial entry (income or expense).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (userId-index): userId
type Lancamento struct {
	Base
	Titulo    string           `json:"titulo" dynamodbav:"titulo" validate:"required"`
	Valor     float64          `json:"valor" dynamodbav:"valor" validate:"gte=0"`
	Tipo      TipoLancamento   `json:"tipo" dynamodbav:"tipo" validate:"required,oneof=receita despesa"`
	Data      time.Time        `json:"data" dynamodbav:"data" validate:"required"`
	Categoria string           `json:"categoria,omitempty" dynamodbav:"categoria,omitempty"`
	Status    StatusLancamento `json:"status" dynamodbav:"status" validate:"required,oneof=pago recebido pendente"`
	VendaID   string           `json:"vendaId,omitempty" dynamodbav:"vendaId,omitempty"`
	PedidoID  string           `json:"pedidoId,omitempty" dynamodbav:"pedidoId,omitempty"`
}

type LancamentoCreate struct {
	Titulo    string           `json:"titulo" dynamodbav:"titulo" validate:"required"`
	Valor     float64          `json:"valor" dynamodbav:"valor" validate:"gte=0"`
	Tipo      TipoLancamento   `json:"tipo" dynamodbav:"tipo" validate:"required,oneof=receita despesa"`
	Data      time.Time        `json:"data" dynamodbav:"data" validate:"required"`
	Categoria string           `json:"categoria,omitempty" dynamodbav:"categoria,omitempty"`
	Status    StatusLancamento `json:"status" dynamodbav:"status" validate:"required,oneof=pago recebido pendente"`
	VendaID   string           `json:"vendaId,omitempty" dynamodbav:"vendaId,omitempty"`
	PedidoID  string           `json:"pedidoId,omitempty" dynamodbav:"pedidoId,omitempty"`
}

type LancamentoUpdate struct {
	Titulo    *string           `json:"titulo,omitempty" dynamodbav:"titulo,omitempty" validate:"omitempty,min=1"`
	Valor     *float64          `json:"valor,omitempty" dynamodbav:"valor,omitempty" validate:"omitempty,gte=0"`
	Tipo      *TipoLancamento   `json:"tipo,omitempty" dynamodbav:"tipo,omitempty" validate:"omitempty,oneof=receita despesa"`
	Data      *time.Time        `json:"data,omitempty" dynamodbav:"data,omitempty"`
	Categoria *string           `json:"categoria,omitempty" dynamodbav:"categoria,omitempty"`
	Status    *StatusLancamento `json:"status,omitempty" dynamodbav:"status,omitempty" validate:"omitempty,oneof=pago recebido pendente"`
	VendaID   *string           `json:"vendaId,omitempty" dynamodbav:"vendaId,omitempty"`
	PedidoID  *string           `json:"pedidoId,omitempty" dynamodbav:"pedidoId,omitempty"`
}
