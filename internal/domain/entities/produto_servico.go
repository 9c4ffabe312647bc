package entities

// TipoItem distinguishes catalog products from services.
type TipoItem string

const (
	TipoProduto TipoItem = "produto"
	TipoServico TipoItem = "servico"
)

// ProdutoServico is a catalog entry, either a stocked product or a service.
//
// Stock fields (custoUnitario, estoque, estoqueMinimo) only exist for
// tipo=produto: they are required at creation, forced to null when the tipo is
// switched to servico, and defaulted to zero when an update switches an item
// back to produto without supplying them. The tipo-switch normalization lives
// in the service layer, not here.
type ProdutoServico struct {
	Base
	Nome          string   `json:"nome" dynamodbav:"nome" validate:"required"`
	Tipo          TipoItem `json:"tipo" dynamodbav:"tipo" validate:"required,oneof=produto servico"`
	PrecoVenda    float64  `json:"precoVenda" dynamodbav:"precoVenda" validate:"gte=0"`
	Unidade       string   `json:"unidade,omitempty" dynamodbav:"unidade,omitempty"`
	CustoUnitario *float64 `json:"custoUnitario,omitempty" dynamodbav:"custoUnitario,omitempty" validate:"omitempty,gte=0"`
	Estoque       *float64 `json:"estoque,omitempty" dynamodbav:"estoque,omitempty" validate:"omitempty,gte=0"`
	EstoqueMinimo *float64 `json:"estoqueMinimo,omitempty" dynamodbav:"estoqueMinimo,omitempty" validate:"omitempty,gte=0"`
	Ativo         bool     `json:"ativo" dynamodbav:"ativo"`
}

type ProdutoServicoCreate struct {
	Nome          string   `json:"nome" dynamodbav:"nome" validate:"required"`
	Tipo          TipoItem `json:"tipo" dynamodbav:"tipo" validate:"required,oneof=produto servico"`
	PrecoVenda    float64  `json:"precoVenda" dynamodbav:"precoVenda" validate:"gte=0"`
	Unidade       string   `json:"unidade,omitempty" dynamodbav:"unidade,omitempty"`
	CustoUnitario *float64 `json:"custoUnitario,omitempty" dynamodbav:"custoUnitario,omitempty" validate:"omitempty,gte=0"`
	Estoque       *float64 `json:"estoque,omitempty" dynamodbav:"estoque,omitempty" validate:"omitempty,gte=0"`
	EstoqueMinimo *float64 `json:"estoqueMinimo,omitempty" dynamodbav:"estoqueMinimo,omitempty" validate:"omitempty,gte=0"`
	Ativo         bool     `json:"ativo" dynamodbav:"ativo"`
}

type ProdutoServicoUpdate struct {
	Nome          *string   `json:"nome,omitempty" dynamodbav:"nome,omitempty" validate:"omitempty,min=1"`
	Tipo          *TipoItem `json:"tipo,omitempty" dynamodbav:"tipo,omitempty" validate:"omitempty,oneof=produto servico"`
	PrecoVenda    *float64  `json:"precoVenda,omitempty" dynamodbav:"precoVenda,omitempty" validate:"omitempty,gte=0"`
	Unidade       *string   `json:"unidade,omitempty" dynamodbav:"unidade,omitempty"`
	CustoUnitario *float64  `json:"custoUnitario,omitempty" dynamodbav:"custoUnitario,omitempty" validate:"omitempty,gte=0"`
	Estoque       *float64  `json:"estoque,omitempty" dynamodbav:"estoque,omitempty" validate:"omitempty,gte=0"`
	EstoqueMinimo *float64  `json:"estoqueMinimo,omitempty" dynamodbav:"estoqueMinimo,omitempty" validate:"omitempty,gte=0"`
	Ativo         *bool     `json:"ativo,omitempty" dynamodbav:"ativo,omitempty"`
}
