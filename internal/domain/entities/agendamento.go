package entities

import "time"

type StatusAgendamento string

const (
	AgendamentoAgendado   StatusAgendamento = "agendado"
	AgendamentoConfirmado StatusAgendamento = "confirmado"
	AgendamentoConcluido  StatusAgendamento = "concluido"
	AgendamentoCancelado  StatusAgendamento = "cancelado"
)

// Agendamento is a scheduled appointment. Cliente and servico references may
// point at catalog documents (the *ID fields) or be typed in as free text; the
// *Nome fields always carry the display name.
type Agendamento struct {
	Base
	ClienteID   string            `json:"clienteId,omitempty" dynamodbav:"clienteId,omitempty"`
	ClienteNome string            `json:"clienteNome" dynamodbav:"clienteNome" validate:"required"`
	ServicoID   string            `json:"servicoId,omitempty" dynamodbav:"servicoId,omitempty"`
	ServicoNome string            `json:"servicoNome" dynamodbav:"servicoNome" validate:"required"`
	DataHora    time.Time         `json:"dataHora" dynamodbav:"dataHora" validate:"required"`
	Status      StatusAgendamento `json:"status" dynamodbav:"status" validate:"required,oneof=agendado confirmado concluido cancelado"`
	GerarPedido bool              `json:"gerarPedido" dynamodbav:"gerarPedido"`
	Observacoes string            `json:"observacoes,omitempty" dynamodbav:"observacoes,omitempty"`
}

type AgendamentoCreate struct {
	ClienteID   string            `json:"clienteId,omitempty" dynamodbav:"clienteId,omitempty"`
	ClienteNome string            `json:"clienteNome" dynamodbav:"clienteNome" validate:"required"`
	ServicoID   string            `json:"servicoId,omitempty" dynamodbav:"servicoId,omitempty"`
	ServicoNome string            `json:"servicoNome" dynamodbav:"servicoNome" validate:"required"`
	DataHora    time.Time         `json:"dataHora" dynamodbav:"dataHora" validate:"required"`
	Status      StatusAgendamento `json:"status" dynamodbav:"status" validate:"required,oneof=agendado confirmado concluido cancelado"`
	GerarPedido bool              `json:"gerarPedido" dynamodbav:"gerarPedido"`
	Observacoes string            `json:"observacoes,omitempty" dynamodbav:"observacoes,omitempty"`
}

type AgendamentoUpdate struct {
	ClienteID   *string            `json:"clienteId,omitempty" dynamodbav:"clienteId,omitempty"`
	ClienteNome *string            `json:"clienteNome,omitempty" dynamodbav:"clienteNome,omitempty" validate:"omitempty,min=1"`
	ServicoID   *string            `json:"servicoId,omitempty" dynamodbav:"servicoId,omitempty"`
	ServicoNome *string            `json:"servicoNome,omitempty" dynamodbav:"servicoNome,omitempty" validate:"omitempty,min=1"`
	DataHora    *time.Time         `json:"dataHora,omitempty" dynamodbav:"dataHora,omitempty"`
	Status      *StatusAgendamento `json:"status,omitempty" dynamodbav:"status,omitempty" validate:"omitempty,oneof=agendado confirmado concluido cancelado"`
	GerarPedido *bool              `json:"gerarPedido,omitempty" dynamodbav:"gerarPedido,omitempty"`
	Observacoes *string            `json:"observacoes,omitempty" dynamodbav:"observacoes,omitempty"`
}
