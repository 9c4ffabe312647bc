package entities

import "time"

// Cliente is a customer record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (userId-index): userId
type Cliente struct {
	Base
	Nome        string     `json:"nome" dynamodbav:"nome" validate:"required"`
	Telefone    string     `json:"telefone,omitempty" dynamodbav:"telefone,omitempty"`
	Email       string     `json:"email,omitempty" dynamodbav:"email,omitempty" validate:"omitempty,email"`
	Endereco    string     `json:"endereco,omitempty" dynamodbav:"endereco,omitempty"`
	CpfCnpj     string     `json:"cpfCnpj,omitempty" dynamodbav:"cpfCnpj,omitempty"`
	Nascimento  *time.Time `json:"nascimento,omitempty" dynamodbav:"nascimento,omitempty"`
	Observacoes string     `json:"observacoes,omitempty" dynamodbav:"observacoes,omitempty"`
	Devedor     bool       `json:"devedor" dynamodbav:"devedor"`
}

type ClienteCreate struct {
	Nome        string     `json:"nome" dynamodbav:"nome" validate:"required"`
	Telefone    string     `json:"telefone,omitempty" dynamodbav:"telefone,omitempty"`
	Email       string     `json:"email,omitempty" dynamodbav:"email,omitempty" validate:"omitempty,email"`
	Endereco    string     `json:"endereco,omitempty" dynamodbav:"endereco,omitempty"`
	CpfCnpj     string     `json:"cpfCnpj,omitempty" dynamodbav:"cpfCnpj,omitempty"`
	Nascimento  *time.Time `json:"nascimento,omitempty" dynamodbav:"nascimento,omitempty"`
	Observacoes string     `json:"observacoes,omitempty" dynamodbav:"observacoes,omitempty"`
	Devedor     bool       `json:"devedor" dynamodbav:"devedor"`
}

type ClienteUpdate struct {
	Nome        *string    `json:"nome,omitempty" dynamodbav:"nome,omitempty" validate:"omitempty,min=1"`
	Telefone    *string    `json:"telefone,omitempty" dynamodbav:"telefone,omitempty"`
	Email       *string    `json:"email,omitempty" dynamodbav:"email,omitempty" validate:"omitempty,email"`
	Endereco    *string    `json:"endereco,omitempty" dynamodbav:"endereco,omitempty"`
	CpfCnpj     *string    `json:"cpfCnpj,omitempty" dynamodbav:"cpfCnpj,omitempty"`
	Nascimento  *time.Time `json:"nascimento,omitempty" dynamodbav:"nascimento,omitempty"`
	Observacoes *string    `json:"observacoes,omitempty" dynamodbav:"observacoes,omitempty"`
	Devedor     *bool      `json:"devedor,omitempty" dynamodbav:"devedor,omitempty"`
}
