package entities

// StatusOrdem mirrors the production progress percentage.
type StatusOrdem string

const (
	OrdemPendente    StatusOrdem = "pendente"
	OrdemEmAndamento StatusOrdem = "em_andamento"
	OrdemConcluida   StatusOrdem = "concluida"
)

// StatusForProgresso derives the order status from a 0-100 progress value.
func StatusForProgresso(progresso int) StatusOrdem {
	switch {
	case progresso <= 0:
		return OrdemPendente
	case progresso >= 100:
		return OrdemConcluida
	default:
		return OrdemEmAndamento
	}
}

// OrdemProducao tracks the shop-floor progress of one Pedido.
type OrdemProducao struct {
	Base
	PedidoID     string      `json:"pedidoId" dynamodbav:"pedidoId" validate:"required"`
	PedidoNumero string      `json:"pedidoNumero,omitempty" dynamodbav:"pedidoNumero,omitempty"`
	Progresso    int         `json:"progresso" dynamodbav:"progresso" validate:"gte=0,lte=100"`
	Status       StatusOrdem `json:"status" dynamodbav:"status" validate:"required,oneof=pendente em_andamento concluida"`
	Observacoes  string      `json:"observacoes,omitempty" dynamodbav:"observacoes,omitempty"`
}

type OrdemProducaoCreate struct {
	PedidoID     string      `json:"pedidoId" dynamodbav:"pedidoId" validate:"required"`
	PedidoNumero string      `json:"pedidoNumero,omitempty" dynamodbav:"pedidoNumero,omitempty"`
	Progresso    int         `json:"progresso" dynamodbav:"progresso" validate:"gte=0,lte=100"`
	Status       StatusOrdem `json:"status" dynamodbav:"status" validate:"required,oneof=pendente em_andamento concluida"`
	Observacoes  string      `json:"observacoes,omitempty" dynamodbav:"observacoes,omitempty"`
}

type OrdemProducaoUpdate struct {
	PedidoNumero *string      `json:"pedidoNumero,omitempty" dynamodbav:"pedidoNumero,omitempty"`
	Progresso    *int         `json:"progresso,omitempty" dynamodbav:"progresso,omitempty" validate:"omitempty,gte=0,lte=100"`
	Status       *StatusOrdem `json:"status,omitempty" dynamodbav:"status,omitempty" validate:"omitempty,oneof=pendente em_andamento concluida"`
	Observacoes  *string      `json:"observacoes,omitempty" dynamodbav:"observacoes,omitempty"`
}
