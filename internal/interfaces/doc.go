// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Storage
//
//   - bookstore.Repository: raw book storage (internal/bookstore/repository.go).
//     Implemented by bookstore.MemoryRepository and database.Database.
//
// ## HTTP
//
//   - http.BookStore: the operations the books controller calls (internal/http/stores.go).
//     Implemented by bookstore.Service, which adds validation, ids and timestamps.
//   - http.Pinger: health check target.
//
// # Adding a New Storage Backend
//
//  1. Implement bookstore.Repository. Return bookstore.ErrNotFound for unknown
//     ids and bookstore.ErrDuplicateID on id collisions, and keep insertion order.
//
//  2. Add a driver constant in internal/config and a case in
//     entrypoint.NewRepository.
//
//  3. Add a compile-time check to checks.go:
//
//     var _ bookstore.Repository = (*MyRepository)(nil)
package interfaces
