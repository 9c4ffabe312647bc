package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/internal/usecase"
)

type VendaHandler struct {
	service usecase.IVendaService
}

func NewVendaHandler(s usecase.IVendaService) *VendaHandler {
	return &VendaHandler{service: s}
}

func (h *VendaHandler) Create(c *gin.Context) {
	var payload entities.VendaCreate
	if !bindJSON(c, &payload) {
		return
	}
	venda, err := h.service.Create(c.Request.Context(), ownerID(c), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, venda)
}

func (h *VendaHandler) GetByID(c *gin.Context) {
	venda, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	respondMaybe(c, venda, err)
}

// List supports ?sessaoCaixaId=<id>.
func (h *VendaHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	owner := ownerID(c)

	var (
		vendas []entities.Venda
		err    error
	)
	if sessaoID := c.Query("sessaoCaixaId"); sessaoID != "" {
		vendas, err = h.service.ListBySessao(ctx, owner, sessaoID)
	} else {
		vendas, err = h.service.List(ctx, owner)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendas)
}

func (h *VendaHandler) Cancelar(c *gin.Context) {
	venda, err := h.service.Cancelar(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, venda)
}

func (h *VendaHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
