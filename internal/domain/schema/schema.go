// Package schema validates the three shapes of every entity (full, create
// input, update input) and reports every violated field path at once.
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// ValidationError lists every violated field path with a readable reason.
type ValidationError struct {
	Fields []apperror.FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", f.Path, f.Reason))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError unwraps err into a *ValidationError, or nil.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report field paths by their json names, which are the stable document
	// field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterStructValidation(produtoServicoRules,
		entities.ProdutoServico{}, entities.ProdutoServicoCreate{})
	v.RegisterStructValidation(pedidoRules,
		entities.Pedido{}, entities.PedidoCreate{})

	return v
}

// produtoServicoRules enforces the cross-field invariant: a produto must carry
// its three stock fields. A servico is valid with or without them.
func produtoServicoRules(sl validator.StructLevel) {
	var (
		tipo          entities.TipoItem
		custoUnitario *float64
		estoque       *float64
		estoqueMinimo *float64
	)
	switch p := sl.Current().Interface().(type) {
	case entities.ProdutoServico:
		tipo, custoUnitario, estoque, estoqueMinimo = p.Tipo, p.CustoUnitario, p.Estoque, p.EstoqueMinimo
	case entities.ProdutoServicoCreate:
		tipo, custoUnitario, estoque, estoqueMinimo = p.Tipo, p.CustoUnitario, p.Estoque, p.EstoqueMinimo
	default:
		return
	}

	if tipo != entities.TipoProduto {
		return
	}
	if custoUnitario == nil {
		sl.ReportError(custoUnitario, "custoUnitario", "CustoUnitario", "required_for_produto", "")
	}
	if estoque == nil {
		sl.ReportError(estoque, "estoque", "Estoque", "required_for_produto", "")
	}
	if estoqueMinimo == nil {
		sl.ReportError(estoqueMinimo, "estoqueMinimo", "EstoqueMinimo", "required_for_produto", "")
	}
}

// pedidoRules: an advance payment needs its payment method.
func pedidoRules(sl validator.StructLevel) {
	var (
		entrada        float64
		formaPagamento string
	)
	switch p := sl.Current().Interface().(type) {
	case entities.Pedido:
		entrada, formaPagamento = p.Entrada, p.FormaPagamento
	case entities.PedidoCreate:
		entrada, formaPagamento = p.Entrada, p.FormaPagamento
	default:
		return
	}

	if entrada > 0 && strings.TrimSpace(formaPagamento) == "" {
		sl.ReportError(formaPagamento, "formaPagamentoEntrada", "FormaPagamento", "required_with_entrada", "")
	}
}

// Validate checks v against its declared rules. On failure it returns a
// *ValidationError enumerating every offending field path; validators are pure
// and never mutate v.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError: the caller handed in something that is not
		// a struct. Treat as corrupt input rather than panicking.
		return &ValidationError{Fields: []apperror.FieldError{{Path: "", Reason: err.Error()}}}
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperror.FieldError{
			Path:   fieldPath(fe),
			Reason: reasonFor(fe),
		})
	}
	return &ValidationError{Fields: fields}
}

// fieldPath strips the root struct name from the namespace so paths read as
// document field paths ("itens[0].nome", not "PedidoCreate.itens[0].nome").
// The embedded Base segment is flattened away too: its fields live at the
// document root.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.TrimPrefix(ns, "Base.")
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_for_produto":
		return "is required when tipo is produto"
	case "required_with_entrada":
		return "is required when entrada is greater than zero"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "min":
		return fmt.Sprintf("must have at least %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or greater", fe.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
