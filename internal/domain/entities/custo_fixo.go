package entities

// CustoFixo is a configured recurring monthly cost. Deactivation is the ativo
// flag on the document itself; there is no system-level soft delete.
type CustoFixo struct {
	Base
	Nome        string  `json:"nome" dynamodbav:"nome" validate:"required"`
	ValorMensal float64 `json:"valorMensal" dynamodbav:"valorMensal" validate:"gte=0"`
	Categoria   string  `json:"categoria,omitempty" dynamodbav:"categoria,omitempty"`
	Ativo       bool    `json:"ativo" dynamodbav:"ativo"`
}

type CustoFixoCreate struct {
	Nome        string  `json:"nome" dynamodbav:"nome" validate:"required"`
	ValorMensal float64 `json:"valorMensal" dynamodbav:"valorMensal" validate:"gte=0"`
	Categoria   string  `json:"categoria,omitempty" dynamodbav:"categoria,omitempty"`
	Ativo       bool    `json:"ativo" dynamodbav:"ativo"`
}

type CustoFixoUpdate struct {
	Nome        *string  `json:"nome,omitempty" dynamodbav:"nome,omitempty" validate:"omitempty,min=1"`
	ValorMensal *float64 `json:"valorMensal,omitempty" dynamodbav:"valorMensal,omitempty" validate:"omitempty,gte=0"`
	Categoria   *string  `json:"categoria,omitempty" dynamodbav:"categoria,omitempty"`
	Ativo       *bool    `json:"ativo,omitempty" dynamodbav:"ativo,omitempty"`
}
