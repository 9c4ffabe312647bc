package entities

import "time"

type StatusSessao string

const (
	SessaoAberta  StatusSessao = "aberta"
	SessaoFechada StatusSessao = "fechada"
)

// SessaoCaixa is one point-of-sale cash session, from float-in to close-out.
//
// TotaisPorForma and SaldoFechamento are only written at close time, computed
// from the vendas tied to the session plus the opening float.
type SessaoCaixa struct {
	Base
	Status          StatusSessao       `json:"status" dynamodbav:"status" validate:"required,oneof=aberta fechada"`
	TrocoInicial    float64            `json:"trocoInicial" dynamodbav:"trocoInicial" validate:"gte=0"`
	AbertaEm        time.Time          `json:"abertaEm" dynamodbav:"abertaEm" validate:"required"`
	FechadaEm       *time.Time         `json:"fechadaEm,omitempty" dynamodbav:"fechadaEm,omitempty"`
	TotaisPorForma  map[string]float64 `json:"totaisPorForma,omitempty" dynamodbav:"totaisPorForma,omitempty"`
	SaldoFechamento float64            `json:"saldoFechamento" dynamodbav:"saldoFechamento"`
	Observacoes     string             `json:"observacoes,omitempty" dynamodbav:"observacoes,omitempty"`
}

type SessaoCaixaCreate struct {
	Status       StatusSessao `json:"status" dynamodbav:"status" validate:"required,oneof=aberta fechada"`
	TrocoInicial float64      `json:"trocoInicial" dynamodbav:"trocoInicial" validate:"gte=0"`
	AbertaEm     time.Time    `json:"abertaEm" dynamodbav:"abertaEm" validate:"required"`
	Observacoes  string       `json:"observacoes,omitempty" dynamodbav:"observacoes,omitempty"`
}

type SessaoCaixaUpdate struct {
	Status          *StatusSessao      `json:"status,omitempty" dynamodbav:"status,omitempty" validate:"omitempty,oneof=aberta fechada"`
	FechadaEm       *time.Time         `json:"fechadaEm,omitempty" dynamodbav:"fechadaEm,omitempty"`
	TotaisPorForma  map[string]float64 `json:"totaisPorForma,omitempty" dynamodbav:"totaisPorForma,omitempty"`
	SaldoFechamento *float64           `json:"saldoFechamento,omitempty" dynamodbav:"saldoFechamento,omitempty"`
	Observacoes     *string            `json:"observacoes,omitempty" dynamodbav:"observacoes,omitempty"`
}
