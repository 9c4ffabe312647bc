package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"atelie_gestor/internal/adapter/persistence/store"
	"atelie_gestor/internal/adapter/persistence/store/storetest"
	"atelie_gestor/internal/domain/entities"
	"atelie_gestor/internal/usecase"
	"atelie_gestor/pkg/apperror"
)

func newClienteRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(storetest.NewClient(), zerolog.Nop(), "")
	h := NewClienteHandler(usecase.NewClienteService(st))

	r := gin.New()
	v1 := r.Group("/v1")
	v1.Use(RequireOwner())
	v1.POST("/clientes", h.Create)
	v1.GET("/clientes", h.List)
	v1.GET("/clientes/:id", h.GetByID)
	v1.PATCH("/clientes/:id", h.Update)
	v1.DELETE("/clientes/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, owner, body string) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body == "" {
		buf = bytes.NewBuffer(nil)
	} else {
		buf = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if owner != "" {
		req.Header.Set("X-User-ID", owner)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestClienteHandler_RequiresOwnerHeader(t *testing.T) {
	r := newClienteRouter(t)

	w := doJSON(t, r, http.MethodGet, "/v1/clientes", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestClienteHandler_CreateAndGet(t *testing.T) {
	r := newClienteRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/clientes", "user-1", `{"nome":"Ana","telefone":"11 99999-0000"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created entities.Cliente
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if created.ID == "" || created.UserID != "user-1" || created.Nome != "Ana" {
		t.Fatalf("unexpected created cliente: %+v", created)
	}

	w = doJSON(t, r, http.MethodGet, "/v1/clientes/"+created.ID, "user-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestClienteHandler_InvalidJSON(t *testing.T) {
	r := newClienteRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/clientes", "user-1", "{")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestClienteHandler_ValidationErrorListsFields(t *testing.T) {
	r := newClienteRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/clientes", "user-1", `{"email":"nope"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var body apperror.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if body.Code != "VALIDATION_ERROR" || len(body.Fields) != 2 {
		t.Fatalf("unexpected error body: %+v", body)
	}
}

func TestClienteHandler_GetMissingIs404(t *testing.T) {
	r := newClienteRouter(t)

	w := doJSON(t, r, http.MethodGet, "/v1/clientes/ghost", "user-1", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestClienteHandler_Delete(t *testing.T) {
	r := newClienteRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/clientes", "user-1", `{"nome":"Ana"}`)
	var created entities.Cliente
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	w = doJSON(t, r, http.MethodDelete, "/v1/clientes/"+created.ID, "user-1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/v1/clientes/"+created.ID, "user-1", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}
