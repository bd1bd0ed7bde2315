package demo

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(m *Middleware) *gin.Engine {
	router := gin.New()
	router.Use(m.Handler(func(c *gin.Context) {
		c.String(http.StatusForbidden, BlockedMessage)
	}))
	handler := func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	}
	router.GET("/books", handler)
	router.HEAD("/books", handler)
	router.OPTIONS("/books", handler)
	router.POST("/books", handler)
	router.PUT("/books/:id", handler)
	router.DELETE("/books/:id", handler)
	return router
}

func TestNewMiddleware(t *testing.T) {
	m := NewMiddleware(true)
	if !m.IsEnabled() {
		t.Error("Expected middleware to be enabled")
	}

	m = NewMiddleware(false)
	if m.IsEnabled() {
		t.Error("Expected middleware to be disabled")
	}
}

func TestMiddleware_AllowsReadRequests(t *testing.T) {
	router := newTestRouter(NewMiddleware(true))

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		req := httptest.NewRequest(method, "/books", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", method, w.Code)
		}
	}
}

func TestMiddleware_BlocksWriteRequests(t *testing.T) {
	router := newTestRouter(NewMiddleware(true))

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/books"},
		{http.MethodPut, "/books/abc"},
		{http.MethodDelete, "/books/abc"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("%s: expected status 403, got %d", tt.method, w.Code)
		}
		if w.Body.String() != BlockedMessage {
			t.Errorf("%s: expected body %q, got %q", tt.method, BlockedMessage, w.Body.String())
		}
	}
}

func TestMiddleware_Blocks(t *testing.T) {
	m := NewMiddleware(true)
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		if !m.Blocks(method) {
			t.Errorf("%s: expected to be blocked", method)
		}
	}
	if m.Blocks(http.MethodGet) {
		t.Error("GET should not be blocked")
	}
	if NewMiddleware(false).Blocks(http.MethodPost) {
		t.Error("disabled middleware should not block")
	}
}

func TestMiddleware_DisabledAllowsAllRequests(t *testing.T) {
	router := newTestRouter(NewMiddleware(false))

	req := httptest.NewRequest(http.MethodPost, "/books", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}
