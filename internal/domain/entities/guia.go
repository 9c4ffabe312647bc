package entities

// GuiaInput is the structured business context handed to the AI guide
// collaborator. It is not persisted.
type GuiaInput struct {
	RamoAtividade   string   `json:"ramoAtividade" validate:"required"`
	DescricaoItem   string   `json:"descricaoItem" validate:"required"`
	CustosRelatados []string `json:"custosRelatados,omitempty"`
	FaturamentoAlvo float64  `json:"faturamentoAlvo,omitempty" validate:"omitempty,gte=0"`
	Observacoes     string   `json:"observacoes,omitempty"`
}

// GuiaSugestao is the structured form suggestion returned by the collaborator
// and validated before reaching any caller.
type GuiaSugestao struct {
	NomeSugerido      string   `json:"nomeSugerido" validate:"required"`
	Tipo              TipoItem `json:"tipo" validate:"required,oneof=produto servico"`
	PrecoSugerido     float64  `json:"precoSugerido" validate:"gte=0"`
	CustoEstimado     float64  `json:"custoEstimado" validate:"gte=0"`
	CategoriaSugerida string   `json:"categoriaSugerida,omitempty"`
	Justificativa     string   `json:"justificativa,omitempty"`
}
