package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/demo"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Every response, including 404s and preflight, carries the CORS header
	router.Use(CORSMiddleware())
	router.Use(SecurityHeadersMiddleware())

	// Apply demo mode middleware if enabled
	if cfg.DemoMiddleware != nil && cfg.DemoMiddleware.IsEnabled() {
		router.Use(cfg.DemoMiddleware.Handler(func(c *gin.Context) {
			respondFail(c, http.StatusForbidden, demo.BlockedMessage)
		}))
	}

	health := NewHealthController(cfg.Store, cfg.Version)
	booksController := NewBooksController(cfg.Books)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		respondSuccess(c, http.StatusOK, "pong", nil)
	})

	// Books API endpoints
	router.POST("/books", booksController.CreateBook)
	router.GET("/books", booksController.GetAllBooks)
	router.GET("/books/:id", booksController.GetBookByID)
	router.PUT("/books/:id", booksController.UpdateBookByID)
	router.DELETE("/books/:id", booksController.DeleteBookByID)

	router.NoRoute(func(c *gin.Context) {
		respondFail(c, http.StatusNotFound, "Not Found")
	})

	return router
}
