package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/internal/usecase"
	"atelie_gestor/pkg/apperror"
)

type GuiaHandler struct {
	service usecase.IGuiaService
}

func NewGuiaHandler(s usecase.IGuiaService) *GuiaHandler {
	return &GuiaHandler{service: s}
}

func (h *GuiaHandler) Sugerir(c *gin.Context) {
	if h.service == nil {
		appErr := apperror.NewDomainErrorSimple("GUIA_INDISPONIVEL", "Guide is not configured", http.StatusServiceUnavailable)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload entities.GuiaInput
	if !bindJSON(c, &payload) {
		return
	}
	sugestao, err := h.service.Sugerir(c.Request.Context(), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sugestao)
}
