package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookshelf/internal/bookstore"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/http"
)

// =============================================================================
// Repositories
// =============================================================================

var _ bookstore.Repository = (*bookstore.MemoryRepository)(nil)
var _ bookstore.Repository = (*database.Database)(nil)

// =============================================================================
// HTTP dependencies
// =============================================================================

var _ http.BookStore = (*bookstore.Service)(nil)
var _ http.Pinger = (*bookstore.Service)(nil)
var _ http.Pinger = (*database.Database)(nil)
