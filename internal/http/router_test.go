package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mrlokans/bookshelf/internal/bookstore"
	"github.com/mrlokans/bookshelf/internal/demo"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRouter_CORS(t *testing.T) {
	router, _ := setupBooksRouter(t)

	t.Run("preflight is answered with 204", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/books", nil)
		req.Header.Set("Origin", "http://example.com")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
	})

	t.Run("unknown route still carries the header", func(t *testing.T) {
		w, resp := doRequest(t, router, http.MethodGet, "/nope", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "fail", resp.Status)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRouter_SecurityHeaders(t *testing.T) {
	router, _ := setupBooksRouter(t)

	w, _ := doRequest(t, router, http.MethodGet, "/books", nil)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
}

func TestRouter_Ping(t *testing.T) {
	router, _ := setupBooksRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","message":"pong"}`, w.Body.String())
}

func TestRouter_DemoMode(t *testing.T) {
	svc := bookstore.NewService(bookstore.NewMemoryRepository())
	router := NewRouter(RouterConfig{Books: svc, Store: svc, DemoMiddleware: demo.NewMiddleware(true)})

	w, resp := doRequest(t, router, http.MethodPost, "/books", dicodingPayload())
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "fail", resp.Status)
	assert.Equal(t, demo.BlockedMessage, resp.Message)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t, `{"status":"fail","message":"`+demo.BlockedMessage+`"}`, w.Body.String())

	w, _ = doRequest(t, router, http.MethodDelete, "/books/any", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = doRequest(t, router, http.MethodGet, "/books", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
