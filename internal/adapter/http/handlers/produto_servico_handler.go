package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/internal/usecase"
	"atelie_gestor/pkg/apperror"
)

type ProdutoServicoHandler struct {
	service usecase.IProdutoServicoService
}

func NewProdutoServicoHandler(s usecase.IProdutoServicoService) *ProdutoServicoHandler {
	return &ProdutoServicoHandler{service: s}
}

func (h *ProdutoServicoHandler) Create(c *gin.Context) {
	var payload entities.ProdutoServicoCreate
	if !bindJSON(c, &payload) {
		return
	}
	item, err := h.service.Create(c.Request.Context(), ownerID(c), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ProdutoServicoHandler) GetByID(c *gin.Context) {
	item, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	respondMaybe(c, item, err)
}

// List supports ?ativos=true and ?tipo=produto|servico filters.
func (h *ProdutoServicoHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	owner := ownerID(c)

	var (
		itens []entities.ProdutoServico
		err   error
	)
	switch {
	case c.Query("ativos") == "true":
		itens, err = h.service.ListAtivos(ctx, owner)
	case c.Query("tipo") != "":
		tipo := entities.TipoItem(c.Query("tipo"))
		if tipo != entities.TipoProduto && tipo != entities.TipoServico {
			appErr := apperror.NewDomainErrorSimple("INVALID_REQUEST", "tipo must be produto or servico", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		itens, err = h.service.ListByTipo(ctx, owner, tipo)
	default:
		itens, err = h.service.List(ctx, owner)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, itens)
}

func (h *ProdutoServicoHandler) Update(c *gin.Context) {
	var payload entities.ProdutoServicoUpdate
	if !bindJSON(c, &payload) {
		return
	}
	item, err := h.service.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

type ajusteEstoqueRequest struct {
	Delta float64 `json:"delta"`
}

func (h *ProdutoServicoHandler) AjustarEstoque(c *gin.Context) {
	var payload ajusteEstoqueRequest
	if !bindJSON(c, &payload) {
		return
	}
	item, err := h.service.AjustarEstoque(c.Request.Context(), c.Param("id"), payload.Delta)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ProdutoServicoHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
