package entities

import "time"

// StatusProducao is the production state machine of a service order.
type StatusProducao string

const (
	ProducaoPendente    StatusProducao = "pendente"
	ProducaoEmAndamento StatusProducao = "em_producao"
	ProducaoPronto      StatusProducao = "pronto"
	ProducaoEntregue    StatusProducao = "entregue"
	ProducaoCancelado   StatusProducao = "cancelado"
)

// StatusPagamento tracks how much of an order has been paid.
type StatusPagamento string

const (
	PagamentoPendente StatusPagamento = "pendente"
	PagamentoParcial  StatusPagamento = "parcial"
	PagamentoQuitado  StatusPagamento = "pago"
)

// OrigemItem says whether a line item came from the catalog or was typed in.
type OrigemItem string

const (
	OrigemCatalogo OrigemItem = "catalogo"
	OrigemManual   OrigemItem = "manual"
)

type ItemPedido struct {
	ProdutoID     string     `json:"produtoId,omitempty" dynamodbav:"produtoId,omitempty"`
	Nome          string     `json:"nome" dynamodbav:"nome" validate:"required"`
	Quantidade    float64    `json:"quantidade" dynamodbav:"quantidade" validate:"gt=0"`
	PrecoUnitario float64    `json:"precoUnitario" dynamodbav:"precoUnitario" validate:"gte=0"`
	Origem        OrigemItem `json:"origem" dynamodbav:"origem" validate:"required,oneof=catalogo manual"`
}

// Pedido is a service order (encomenda).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (userId-index): userId
//
// Numero is the human-facing order number. When the caller does not supply
// one, the service layer stamps it with the store-assigned document id in a
// follow-up update, since the id only exists after the first write.
type Pedido struct {
	Base
	Numero          string          `json:"numero,omitempty" dynamodbav:"numero,omitempty"`
	ClienteID       string          `json:"clienteId,omitempty" dynamodbav:"clienteId,omitempty"`
	ClienteNome     string          `json:"clienteNome" dynamodbav:"clienteNome" validate:"required"`
	Itens           []ItemPedido    `json:"itens" dynamodbav:"itens" validate:"required,min=1,dive"`
	Total           float64         `json:"total" dynamodbav:"total" validate:"gte=0"`
	Entrada         float64         `json:"entrada" dynamodbav:"entrada" validate:"gte=0"`
	FormaPagamento  string          `json:"formaPagamentoEntrada,omitempty" dynamodbav:"formaPagamentoEntrada,omitempty"`
	DataEntrega     *time.Time      `json:"dataEntrega,omitempty" dynamodbav:"dataEntrega,omitempty"`
	StatusProducao  StatusProducao  `json:"statusProducao" dynamodbav:"statusProducao" validate:"required,oneof=pendente em_producao pronto entregue cancelado"`
	StatusPagamento StatusPagamento `json:"statusPagamento" dynamodbav:"statusPagamento" validate:"required,oneof=pendente parcial pago"`
	ValorPago       float64         `json:"valorPago" dynamodbav:"valorPago" validate:"gte=0"`
	Observacoes     string          `json:"observacoes,omitempty" dynamodbav:"observacoes,omitempty"`
}

type PedidoCreate struct {
	Numero          string          `json:"numero,omitempty" dynamodbav:"numero,omitempty"`
	ClienteID       string          `json:"clienteId,omitempty" dynamodbav:"clienteId,omitempty"`
	ClienteNome     string          `json:"clienteNome" dynamodbav:"clienteNome" validate:"required"`
	Itens           []ItemPedido    `json:"itens" dynamodbav:"itens" validate:"required,min=1,dive"`
	Total           float64         `json:"total" dynamodbav:"total" validate:"gte=0"`
	Entrada         float64         `json:"entrada" dynamodbav:"entrada" validate:"gte=0"`
	FormaPagamento  string          `json:"formaPagamentoEntrada,omitempty" dynamodbav:"formaPagamentoEntrada,omitempty"`
	DataEntrega     *time.Time      `json:"dataEntrega,omitempty" dynamodbav:"dataEntrega,omitempty"`
	StatusProducao  StatusProducao  `json:"statusProducao" dynamodbav:"statusProducao" validate:"required,oneof=pendente em_producao pronto entregue cancelado"`
	StatusPagamento StatusPagamento `json:"statusPagamento" dynamodbav:"statusPagamento" validate:"required,oneof=pendente parcial pago"`
	ValorPago       float64         `json:"valorPago" dynamodbav:"valorPago" validate:"gte=0"`
	Observacoes     string          `json:"observacoes,omitempty" dynamodbav:"observacoes,omitempty"`
}

type PedidoUpdate struct {
	Numero          *string          `json:"numero,omitempty" dynamodbav:"numero,omitempty"`
	ClienteID       *string          `json:"clienteId,omitempty" dynamodbav:"clienteId,omitempty"`
	ClienteNome     *string          `json:"clienteNome,omitempty" dynamodbav:"clienteNome,omitempty" validate:"omitempty,min=1"`
	Itens           []ItemPedido     `json:"itens,omitempty" dynamodbav:"itens,omitempty" validate:"omitempty,min=1,dive"`
	Total           *float64         `json:"total,omitempty" dynamodbav:"total,omitempty" validate:"omitempty,gte=0"`
	Entrada         *float64         `json:"entrada,omitempty" dynamodbav:"entrada,omitempty" validate:"omitempty,gte=0"`
	FormaPagamento  *string          `json:"formaPagamentoEntrada,omitempty" dynamodbav:"formaPagamentoEntrada,omitempty"`
	DataEntrega     *time.Time       `json:"dataEntrega,omitempty" dynamodbav:"dataEntrega,omitempty"`
	StatusProducao  *StatusProducao  `json:"statusProducao,omitempty" dynamodbav:"statusProducao,omitempty" validate:"omitempty,oneof=pendente em_producao pronto entregue cancelado"`
	StatusPagamento *StatusPagamento `json:"statusPagamento,omitempty" dynamodbav:"statusPagamento,omitempty" validate:"omitempty,oneof=pendente parcial pago"`
	ValorPago       *float64         `json:"valorPago,omitempty" dynamodbav:"valorPago,omitempty" validate:"omitempty,gte=0"`
	Observacoes     *string          `json:"observacoes,omitempty" dynamodbav:"observacoes,omitempty"`
}
