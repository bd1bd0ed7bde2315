package demo

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BlockedMessage is returned for write requests while demo mode is on.
const BlockedMessage = "Aksi ini dinonaktifkan dalam mode demo"

// Middleware blocks write operations in demo mode.
// Read-only operations (GET, HEAD, OPTIONS) are always allowed.
type Middleware struct {
	enabled bool
}

// NewMiddleware creates a demo mode middleware.
func NewMiddleware(enabled bool) *Middleware {
	return &Middleware{enabled: enabled}
}

// IsEnabled returns whether demo mode is active.
func (m *Middleware) IsEnabled() bool {
	return m.enabled
}

// Blocks reports whether a request with the given method is refused.
func (m *Middleware) Blocks(method string) bool {
	if !m.enabled {
		return false
	}
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	default:
		return true
	}
}

// Handler returns a Gin middleware that hands blocked requests to reject and
// aborts the chain. reject writes the response.
func (m *Middleware) Handler(reject gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.Blocks(c.Request.Method) {
			c.Next()
			return
		}
		reject(c)
		c.Abort()
	}
}
