package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/internal/usecase"
)

type CustoFixoHandler struct {
	service usecase.ICustoFixoService
}

func NewCustoFixoHandler(s usecase.ICustoFixoService) *CustoFixoHandler {
	return &CustoFixoHandler{service: s}
}

func (h *CustoFixoHandler) Create(c *gin.Context) {
	var payload entities.CustoFixoCreate
	if !bindJSON(c, &payload) {
		return
	}
	custo, err := h.service.Create(c.Request.Context(), ownerID(c), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, custo)
}

func (h *CustoFixoHandler) GetByID(c *gin.Context) {
	custo, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	respondMaybe(c, custo, err)
}

// List supports ?ativos=true.
func (h *CustoFixoHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	owner := ownerID(c)

	var (
		custos []entities.CustoFixo
		err    error
	)
	if c.Query("ativos") == "true" {
		custos, err = h.service.ListAtivos(ctx, owner)
	} else {
		custos, err = h.service.List(ctx, owner)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, custos)
}

func (h *CustoFixoHandler) Update(c *gin.Context) {
	var payload entities.CustoFixoUpdate
	if !bindJSON(c, &payload) {
		return
	}
	custo, err := h.service.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, custo)
}

func (h *CustoFixoHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
