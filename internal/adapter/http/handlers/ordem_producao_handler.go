package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/internal/usecase"
)

type OrdemProducaoHandler struct {
	service usecase.IOrdemProducaoService
}

func NewOrdemProducaoHandler(s usecase.IOrdemProducaoService) *OrdemProducaoHandler {
	return &OrdemProducaoHandler{service: s}
}

func (h *OrdemProducaoHandler) Create(c *gin.Context) {
	var payload entities.OrdemProducaoCreate
	if !bindJSON(c, &payload) {
		return
	}
	ordem, err := h.service.Create(c.Request.Context(), ownerID(c), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ordem)
}

func (h *OrdemProducaoHandler) GetByID(c *gin.Context) {
	ordem, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	respondMaybe(c, ordem, err)
}

// List supports ?pedidoId=<id>.
func (h *OrdemProducaoHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	owner := ownerID(c)

	var (
		ordens []entities.OrdemProducao
		err    error
	)
	if pedidoID := c.Query("pedidoId"); pedidoID != "" {
		ordens, err = h.service.ListByPedido(ctx, owner, pedidoID)
	} else {
		ordens, err = h.service.List(ctx, owner)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordens)
}

func (h *OrdemProducaoHandler) Update(c *gin.Context) {
	var payload entities.OrdemProducaoUpdate
	if !bindJSON(c, &payload) {
		return
	}
	ordem, err := h.service.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordem)
}

type progressoRequest struct {
	Progresso int `json:"progresso"`
}

func (h *OrdemProducaoHandler) AtualizarProgresso(c *gin.Context) {
	var payload progressoRequest
	if !bindJSON(c, &payload) {
		return
	}
	ordem, err := h.service.AtualizarProgresso(c.Request.Context(), c.Param("id"), payload.Progresso)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordem)
}

func (h *OrdemProducaoHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
