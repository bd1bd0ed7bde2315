package http

import "github.com/mrlokans/bookshelf/internal/demo"

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Books BookStore

	// Health checks (optional)
	Store Pinger

	// Application info
	Version string

	// Demo mode (optional)
	DemoMiddleware *demo.Middleware
}
