package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/internal/usecase"
	"atelie_gestor/pkg/apperror"
)

type LancamentoHandler struct {
	service usecase.ILancamentoService
}

func NewLancamentoHandler(s usecase.ILancamentoService) *LancamentoHandler {
	return &LancamentoHandler{service: s}
}

func (h *LancamentoHandler) Create(c *gin.Context) {
	var payload entities.LancamentoCreate
	if !bindJSON(c, &payload) {
		return
	}
	l, err := h.service.Create(c.Request.Context(), ownerID(c), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (h *LancamentoHandler) GetByID(c *gin.Context) {
	l, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	respondMaybe(c, l, err)
}

// List supports ?tipo=receita|despesa and ?inicio=<RFC3339>&fim=<RFC3339>.
func (h *LancamentoHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	owner := ownerID(c)

	inicioRaw, fimRaw := c.Query("inicio"), c.Query("fim")
	if inicioRaw != "" || fimRaw != "" {
		inicio, errInicio := time.Parse(time.RFC3339, inicioRaw)
		fim, errFim := time.Parse(time.RFC3339, fimRaw)
		if errInicio != nil || errFim != nil {
			appErr := apperror.NewDomainErrorSimple("INVALID_REQUEST", "inicio and fim must both be RFC 3339 timestamps", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		ls, err := h.service.ListByPeriodo(ctx, owner, inicio, fim)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, ls)
		return
	}

	if raw := c.Query("tipo"); raw != "" {
		tipo := entities.TipoLancamento(raw)
		if tipo != entities.LancamentoReceita && tipo != entities.LancamentoDespesa {
			appErr := apperror.NewDomainErrorSimple("INVALID_REQUEST", "tipo must be receita or despesa", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		ls, err := h.service.ListByTipo(ctx, owner, tipo)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, ls)
		return
	}

	ls, err := h.service.List(ctx, owner)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ls)
}

func (h *LancamentoHandler) Update(c *gin.Context) {
	var payload entities.LancamentoUpdate
	if !bindJSON(c, &payload) {
		return
	}
	l, err := h.service.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LancamentoHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
