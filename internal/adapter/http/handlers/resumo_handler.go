package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"atelie_gestor/internal/usecase"
	"atelie_gestor/pkg/apperror"
)

type ResumoHandler struct {
	service usecase.IResumoService
}

func NewResumoHandler(s usecase.IResumoService) *ResumoHandler {
	return &ResumoHandler{service: s}
}

// Mensal returns the month dashboard; ?ano and ?mes default to the current
// month.
func (h *ResumoHandler) Mensal(c *gin.Context) {
	now := time.Now().UTC()
	ano, mes := now.Year(), now.Month()

	if raw := c.Query("ano"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			h.badPeriod(c)
			return
		}
		ano = v
	}
	if raw := c.Query("mes"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 12 {
			h.badPeriod(c)
			return
		}
		mes = time.Month(v)
	}

	resumo, err := h.service.Mensal(c.Request.Context(), ownerID(c), ano, mes)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resumo)
}

func (h *ResumoHandler) badPeriod(c *gin.Context) {
	appErr := apperror.NewDomainErrorSimple("INVALID_REQUEST", "ano must be a year and mes a month from 1 to 12", http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
