package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/internal/usecase"
)

type ClienteHandler struct {
	service usecase.IClienteService
}

func NewClienteHandler(s usecase.IClienteService) *ClienteHandler {
	return &ClienteHandler{service: s}
}

func (h *ClienteHandler) Create(c *gin.Context) {
	var payload entities.ClienteCreate
	if !bindJSON(c, &payload) {
		return
	}
	cliente, err := h.service.Create(c.Request.Context(), ownerID(c), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cliente)
}

func (h *ClienteHandler) GetByID(c *gin.Context) {
	cliente, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	respondMaybe(c, cliente, err)
}

func (h *ClienteHandler) List(c *gin.Context) {
	clientes, err := h.service.List(c.Request.Context(), ownerID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, clientes)
}

func (h *ClienteHandler) Update(c *gin.Context) {
	var payload entities.ClienteUpdate
	if !bindJSON(c, &payload) {
		return
	}
	cliente, err := h.service.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
