package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/internal/usecase"
	"atelie_gestor/pkg/apperror"
)

type AgendamentoHandler struct {
	service usecase.IAgendamentoService
}

func NewAgendamentoHandler(s usecase.IAgendamentoService) *AgendamentoHandler {
	return &AgendamentoHandler{service: s}
}

func (h *AgendamentoHandler) Create(c *gin.Context) {
	var payload entities.AgendamentoCreate
	if !bindJSON(c, &payload) {
		return
	}
	ag, err := h.service.Create(c.Request.Context(), ownerID(c), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ag)
}

func (h *AgendamentoHandler) GetByID(c *gin.Context) {
	ag, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	respondMaybe(c, ag, err)
}

// List supports ?inicio=<RFC3339>&fim=<RFC3339>; both must be given together.
func (h *AgendamentoHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	owner := ownerID(c)

	inicioRaw, fimRaw := c.Query("inicio"), c.Query("fim")
	if inicioRaw == "" && fimRaw == "" {
		ags, err := h.service.List(ctx, owner)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, ags)
		return
	}

	inicio, errInicio := time.Parse(time.RFC3339, inicioRaw)
	fim, errFim := time.Parse(time.RFC3339, fimRaw)
	if errInicio != nil || errFim != nil {
		appErr := apperror.NewDomainErrorSimple("INVALID_REQUEST", "inicio and fim must both be RFC 3339 timestamps", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ags, err := h.service.ListByPeriodo(ctx, owner, inicio, fim)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ags)
}

func (h *AgendamentoHandler) Update(c *gin.Context) {
	var payload entities.AgendamentoUpdate
	if !bindJSON(c, &payload) {
		return
	}
	ag, err := h.service.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ag)
}

func (h *AgendamentoHandler) Confirmar(c *gin.Context) {
	ag, err := h.service.Confirmar(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ag)
}

func (h *AgendamentoHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
