// Package bookstore holds the book collection and its operations.
//
// Service owns the rules: validation, id generation, timestamps and the
// finished flag. A Repository owns the records. Two repositories exist:
// MemoryRepository in this package and database.Database (gorm over an
// in-memory SQLite database).
//
// # Usage
//
//	svc := bookstore.NewService(bookstore.NewMemoryRepository())
//	id, err := svc.Create(entities.BookInput{Name: "Dicoding", PageCount: 100, ReadPage: 100})
package bookstore
