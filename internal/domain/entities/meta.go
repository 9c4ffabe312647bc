package entities

import "time"

type TipoMeta string

const (
	MetaFaturamento TipoMeta = "faturamento"
	MetaVendas      TipoMeta = "vendas"
	MetaClientes    TipoMeta = "clientes"
)

// Meta is a business goal tracked on the dashboard.
type Meta struct {
	Base
	Titulo     string     `json:"titulo" dynamodbav:"titulo" validate:"required"`
	Tipo       TipoMeta   `json:"tipo" dynamodbav:"tipo" validate:"required,oneof=faturamento vendas clientes"`
	ValorAlvo  float64    `json:"valorAlvo" dynamodbav:"valorAlvo" validate:"gt=0"`
	ValorAtual float64    `json:"valorAtual" dynamodbav:"valorAtual" validate:"gte=0"`
	Prazo      *time.Time `json:"prazo,omitempty" dynamodbav:"prazo,omitempty"`
	Concluida  bool       `json:"concluida" dynamodbav:"concluida"`
}

type MetaCreate struct {
	Titulo     string     `json:"titulo" dynamodbav:"titulo" validate:"required"`
	Tipo       TipoMeta   `json:"tipo" dynamodbav:"tipo" validate:"required,oneof=faturamento vendas clientes"`
	ValorAlvo  float64    `json:"valorAlvo" dynamodbav:"valorAlvo" validate:"gt=0"`
	ValorAtual float64    `json:"valorAtual" dynamodbav:"valorAtual" validate:"gte=0"`
	Prazo      *time.Time `json:"prazo,omitempty" dynamodbav:"prazo,omitempty"`
	Concluida  bool       `json:"concluida" dynamodbav:"concluida"`
}

type MetaUpdate struct {
	Titulo     *string    `json:"titulo,omitempty" dynamodbav:"titulo,omitempty" validate:"omitempty,min=1"`
	Tipo       *TipoMeta  `json:"tipo,omitempty" dynamodbav:"tipo,omitempty" validate:"omitempty,oneof=faturamento vendas clientes"`
	ValorAlvo  *float64   `json:"valorAlvo,omitempty" dynamodbav:"valorAlvo,omitempty" validate:"omitempty,gt=0"`
	ValorAtual *float64   `json:"valorAtual,omitempty" dynamodbav:"valorAtual,omitempty" validate:"omitempty,gte=0"`
	Prazo      *time.Time `json:"prazo,omitempty" dynamodbav:"prazo,omitempty"`
	Concluida  *bool      `json:"concluida,omitempty" dynamodbav:"concluida,omitempty"`
}
