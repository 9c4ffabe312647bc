package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/internal/usecase"
)

type MetaHandler struct {
	service usecase.IMetaService
}

func NewMetaHandler(s usecase.IMetaService) *MetaHandler {
	return &MetaHandler{service: s}
}

func (h *MetaHandler) Create(c *gin.Context) {
	var payload entities.MetaCreate
	if !bindJSON(c, &payload) {
		return
	}
	meta, err := h.service.Create(c.Request.Context(), ownerID(c), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meta)
}

func (h *MetaHandler) GetByID(c *gin.Context) {
	meta, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	respondMaybe(c, meta, err)
}

func (h *MetaHandler) List(c *gin.Context) {
	metas, err := h.service.List(c.Request.Context(), ownerID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, metas)
}

func (h *MetaHandler) Update(c *gin.Context) {
	var payload entities.MetaUpdate
	if !bindJSON(c, &payload) {
		return
	}
	meta, err := h.service.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, meta)
}

type progressoMetaRequest struct {
	ValorAtual float64 `json:"valorAtual"`
}

func (h *MetaHandler) RegistrarProgresso(c *gin.Context) {
	var payload progressoMetaRequest
	if !bindJSON(c, &payload) {
		return
	}
	meta, err := h.service.RegistrarProgresso(c.Request.Context(), c.Param("id"), payload.ValorAtual)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, meta)
}

func (h *MetaHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
