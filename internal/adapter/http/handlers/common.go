package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"atelie_gestor/internal/adapter/persistence/store"
	"atelie_gestor/internal/domain/schema"
	"atelie_gestor/internal/usecase"
	"atelie_gestor/pkg/apperror"
)

const ownerHeader = "X-User-ID"

var errMissingOwner = apperror.NewDomainErrorSimple("MISSING_USER", "X-User-ID header is required", http.StatusUnauthorized)

// RequireOwner rejects requests without an X-User-ID header. It stands in for
// the upstream auth proxy, which injects the header after token validation.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.TrimSpace(c.GetHeader(ownerHeader)) == "" {
			c.AbortWithStatusJSON(errMissingOwner.HTTPStatus, errMissingOwner.ToHTTPError())
			return
		}
		c.Next()
	}
}

func ownerID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(ownerHeader))
}

func bindJSON(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		appErr := apperror.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return false
	}
	return true
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapError translates domain failures into the stable wire errors. Anything
// unrecognized is an opaque 500; the cause stays in the server logs via the
// gin logger.
func mapError(err error) *apperror.AppError {
	if ve := schema.AsValidationError(err); ve != nil {
		return apperror.NewValidationError(ve.Fields)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidID), errors.Is(err, usecase.ErrInvalidUserID):
		return apperror.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClienteNotFound),
		errors.Is(err, usecase.ErrProdutoNotFound),
		errors.Is(err, usecase.ErrPedidoNotFound),
		errors.Is(err, usecase.ErrOrdemNotFound),
		errors.Is(err, usecase.ErrAgendamentoNotFound),
		errors.Is(err, usecase.ErrLancamentoNotFound),
		errors.Is(err, usecase.ErrVendaNotFound),
		errors.Is(err, usecase.ErrCustoFixoNotFound),
		errors.Is(err, usecase.ErrSessaoNotFound),
		errors.Is(err, usecase.ErrMetaNotFound),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrNotFoundAfterUpdate):
		return apperror.NewDomainErrorSimple("NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessaoJaAberta):
		return apperror.NewDomainErrorSimple("SESSAO_JA_ABERTA", "There is already an open cash session", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessaoFechada):
		return apperror.NewDomainErrorSimple("SESSAO_FECHADA", "Cash session is already closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrVendaJaCancelada):
		return apperror.NewDomainErrorSimple("VENDA_CANCELADA", "Sale is already cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstoqueNegativo):
		return apperror.NewDomainErrorSimple("ESTOQUE_INSUFICIENTE", "Stock would become negative", http.StatusConflict)
	case errors.Is(err, usecase.ErrPedidoSemEntrada):
		return apperror.NewDomainErrorSimple("PEDIDO_SEM_ENTRADA", "Order has no advance payment", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPagamentoGatewayIndisponivel):
		return apperror.NewDomainErrorSimple("PAGAMENTO_INDISPONIVEL", "Payment gateway is not configured", http.StatusServiceUnavailable)
	default:
		return apperror.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// respondMaybe writes 404 for a nil document pointer, 200 otherwise.
func respondMaybe[T any](c *gin.Context, doc *T, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	if doc == nil {
		appErr := apperror.NewDomainErrorSimple("NOT_FOUND", "Document not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, doc)
}
