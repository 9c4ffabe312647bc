package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"atelie_gestor/internal/adapter/persistence/store"
	"atelie_gestor/internal/adapter/persistence/store/storetest"
	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/internal/usecase"
)

func newSessaoRouter(t *testing.T) (*gin.Engine, *usecase.VendaService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(storetest.NewClient(), zerolog.Nop(), "")
	produtos := usecase.NewProdutoServicoService(st)
	lancamentos := usecase.NewLancamentoService(st)
	vendas := usecase.NewVendaService(st, produtos, lancamentos, zerolog.Nop())
	h := NewSessaoCaixaHandler(usecase.NewSessaoCaixaService(st, vendas))

	r := gin.New()
	v1 := r.Group("/v1")
	v1.Use(RequireOwner())
	v1.POST("/sessoes-caixa", h.Abrir)
	v1.GET("/sessoes-caixa/aberta", h.GetAberta)
	v1.GET("/sessoes-caixa/:id", h.GetByID)
	v1.PATCH("/sessoes-caixa/:id/fechar", h.Fechar)
	return r, vendas
}

func TestSessaoCaixaHandler_AbrirFecharFlow(t *testing.T) {
	r, vendas := newSessaoRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/sessoes-caixa", "user-1", `{"trocoInicial":20}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var sessao entities.SessaoCaixa
	if err := json.Unmarshal(w.Body.Bytes(), &sessao); err != nil {
		t.Fatalf("decoding session: %v", err)
	}
	if sessao.Status != entities.SessaoAberta || sessao.TrocoInicial != 20 {
		t.Fatalf("unexpected session: %+v", sessao)
	}

	// A second open for the same owner conflicts.
	w = doJSON(t, r, http.MethodPost, "/v1/sessoes-caixa", "user-1", `{"trocoInicial":5}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for second open, got %d", w.Code)
	}
	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if body.Code != "SESSAO_JA_ABERTA" {
		t.Fatalf("expected SESSAO_JA_ABERTA, got %q", body.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/v1/sessoes-caixa/aberta", "user-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for open session, got %d", w.Code)
	}

	_, err := vendas.Create(context.Background(), "user-1", entities.VendaCreate{
		Itens:          []entities.ItemVenda{{Nome: "Fita", Quantidade: 2, PrecoUnitario: 25}},
		Total:          50,
		FormaPagamento: entities.PagamentoDinheiro,
		Status:         entities.VendaConcluida,
		SessaoCaixaID:  sessao.ID,
	})
	if err != nil {
		t.Fatalf("creating venda: %v", err)
	}

	w = doJSON(t, r, http.MethodPatch, "/v1/sessoes-caixa/"+sessao.ID+"/fechar", "user-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on close, got %d: %s", w.Code, w.Body.String())
	}
	var fechada entities.SessaoCaixa
	if err := json.Unmarshal(w.Body.Bytes(), &fechada); err != nil {
		t.Fatalf("decoding closed session: %v", err)
	}
	if fechada.Status != entities.SessaoFechada || fechada.SaldoFechamento != 70 {
		t.Fatalf("unexpected closed session: %+v", fechada)
	}
	if fechada.TotaisPorForma["dinheiro"] != 50 {
		t.Fatalf("unexpected totals: %+v", fechada.TotaisPorForma)
	}

	// Closing twice conflicts, and the register reads as closed.
	w = doJSON(t, r, http.MethodPatch, "/v1/sessoes-caixa/"+sessao.ID+"/fechar", "user-1", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on second close, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/v1/sessoes-caixa/aberta", "user-1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for closed register, got %d", w.Code)
	}
}

func TestSessaoCaixaHandler_FecharMissingIs404(t *testing.T) {
	r, _ := newSessaoRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/v1/sessoes-caixa/ghost/fechar", "user-1", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
