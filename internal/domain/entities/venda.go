package entities

// FormaPagamento enumerates point-of-sale payment methods.
type FormaPagamento string

const (
	PagamentoDinheiro      FormaPagamento = "dinheiro"
	PagamentoPix           FormaPagamento = "pix"
	PagamentoCartaoCredito FormaPagamento = "cartao_credito"
	PagamentoCartaoDebito  FormaPagamento = "cartao_debito"
)

type StatusVenda string

const (
	VendaConcluida StatusVenda = "concluida"
	VendaCancelada StatusVenda = "cancelada"
)

type ItemVenda struct {
	ProdutoID     string  `json:"produtoId,omitempty" dynamodbav:"produtoId,omitempty"`
	Nome          string  `json:"nome" dynamodbav:"nome" validate:"required"`
	Quantidade    float64 `json:"quantidade" dynamodbav:"quantidade" validate:"gt=0"`
	PrecoUnitario float64 `json:"precoUnitario" dynamodbav:"precoUnitario" validate:"gte=0"`
}

// Venda is a counter (balcao) sale.
type Venda struct {
	Base
	ClienteID      string         `json:"clienteId,omitempty" dynamodbav:"clienteId,omitempty"`
	ClienteNome    string         `json:"clienteNome,omitempty" dynamodbav:"clienteNome,omitempty"`
	Itens          []ItemVenda    `json:"itens" dynamodbav:"itens" validate:"required,min=1,dive"`
	Total          float64        `json:"total" dynamodbav:"total" validate:"gte=0"`
	FormaPagamento FormaPagamento `json:"formaPagamento" dynamodbav:"formaPagamento" validate:"required,oneof=dinheiro pix cartao_credito cartao_debito"`
	Status         StatusVenda    `json:"status" dynamodbav:"status" validate:"required,oneof=concluida cancelada"`
	SessaoCaixaID  string         `json:"sessaoCaixaId,omitempty" dynamodbav:"sessaoCaixaId,omitempty"`
}

type VendaCreate struct {
	ClienteID      string         `json:"clienteId,omitempty" dynamodbav:"clienteId,omitempty"`
	ClienteNome    string         `json:"clienteNome,omitempty" dynamodbav:"clienteNome,omitempty"`
	Itens          []ItemVenda    `json:"itens" dynamodbav:"itens" validate:"required,min=1,dive"`
	Total          float64        `json:"total" dynamodbav:"total" validate:"gte=0"`
	FormaPagamento FormaPagamento `json:"formaPagamento" dynamodbav:"formaPagamento" validate:"required,oneof=dinheiro pix cartao_credito cartao_debito"`
	Status         StatusVenda    `json:"status" dynamodbav:"status" validate:"required,oneof=concluida cancelada"`
	SessaoCaixaID  string         `json:"sessaoCaixaId,omitempty" dynamodbav:"sessaoCaixaId,omitempty"`
}

type VendaUpdate struct {
	ClienteID      *string         `json:"clienteId,omitempty" dynamodbav:"clienteId,omitempty"`
	ClienteNome    *string         `json:"clienteNome,omitempty" dynamodbav:"clienteNome,omitempty"`
	Itens          []ItemVenda     `json:"itens,omitempty" dynamodbav:"itens,omitempty" validate:"omitempty,min=1,dive"`
	Total          *float64        `json:"total,omitempty" dynamodbav:"total,omitempty" validate:"omitempty,gte=0"`
	FormaPagamento *FormaPagamento `json:"formaPagamento,omitempty" dynamodbav:"formaPagamento,omitempty" validate:"omitempty,oneof=dinheiro pix cartao_credito cartao_debito"`
	Status         *StatusVenda    `json:"status,omitempty" dynamodbav:"status,omitempty" validate:"omitempty,oneof=concluida cancelada"`
	SessaoCaixaID  *string         `json:"sessaoCaixaId,omitempty" dynamodbav:"sessaoCaixaId,omitempty"`
}
