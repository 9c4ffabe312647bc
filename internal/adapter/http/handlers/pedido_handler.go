package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/internal/usecase"
	"atelie_gestor/pkg/apperror"
)

type PedidoHandler struct {
	service usecase.IPedidoService
}

func NewPedidoHandler(s usecase.IPedidoService) *PedidoHandler {
	return &PedidoHandler{service: s}
}

func (h *PedidoHandler) Create(c *gin.Context) {
	var payload entities.PedidoCreate
	if !bindJSON(c, &payload) {
		return
	}
	pedido, err := h.service.Create(c.Request.Context(), ownerID(c), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pedido)
}

func (h *PedidoHandler) GetByID(c *gin.Context) {
	pedido, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	respondMaybe(c, pedido, err)
}

// List supports ?statusProducao=pendente|em_producao|pronto|entregue|cancelado.
func (h *PedidoHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	owner := ownerID(c)

	if raw := c.Query("statusProducao"); raw != "" {
		status := entities.StatusProducao(raw)
		switch status {
		case entities.ProducaoPendente, entities.ProducaoEmAndamento, entities.ProducaoPronto,
			entities.ProducaoEntregue, entities.ProducaoCancelado:
		default:
			appErr := apperror.NewDomainErrorSimple("INVALID_REQUEST", "invalid statusProducao filter", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		pedidos, err := h.service.ListByStatusProducao(ctx, owner, status)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, pedidos)
		return
	}

	pedidos, err := h.service.List(ctx, owner)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pedidos)
}

func (h *PedidoHandler) Update(c *gin.Context) {
	var payload entities.PedidoUpdate
	if !bindJSON(c, &payload) {
		return
	}
	pedido, err := h.service.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pedido)
}

// ProcessarEntrada forwards the raw body to the payment provider; the amount
// is always taken from the stored order.
func (h *PedidoHandler) ProcessarEntrada(c *gin.Context) {
	var payload json.RawMessage
	if c.Request.Body != nil {
		// An empty body is fine here.
		_ = c.ShouldBindJSON(&payload)
	}
	pedido, err := h.service.ProcessarEntrada(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pedido)
}

func (h *PedidoHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
