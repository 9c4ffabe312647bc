package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelie_gestor/internal/usecase"
)

type SessaoCaixaHandler struct {
	service usecase.ISessaoCaixaService
}

func NewSessaoCaixaHandler(s usecase.ISessaoCaixaService) *SessaoCaixaHandler {
	return &SessaoCaixaHandler{service: s}
}

type abrirSessaoRequest struct {
	TrocoInicial float64 `json:"trocoInicial"`
	Observacoes  string  `json:"observacoes"`
}

func (h *SessaoCaixaHandler) Abrir(c *gin.Context) {
	var payload abrirSessaoRequest
	if !bindJSON(c, &payload) {
		return
	}
	sessao, err := h.service.Abrir(c.Request.Context(), ownerID(c), payload.TrocoInicial, payload.Observacoes)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessao)
}

func (h *SessaoCaixaHandler) GetByID(c *gin.Context) {
	sessao, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	respondMaybe(c, sessao, err)
}

// GetAberta returns the owner's open session, or 204 when the register is
// closed.
func (h *SessaoCaixaHandler) GetAberta(c *gin.Context) {
	sessao, err := h.service.GetAberta(c.Request.Context(), ownerID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if sessao == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, sessao)
}

func (h *SessaoCaixaHandler) List(c *gin.Context) {
	sessoes, err := h.service.List(c.Request.Context(), ownerID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessoes)
}

func (h *SessaoCaixaHandler) Fechar(c *gin.Context) {
	sessao, err := h.service.Fechar(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessao)
}

func (h *SessaoCaixaHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
