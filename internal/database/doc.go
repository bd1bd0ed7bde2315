// Package database provides the gorm-backed book repository.
//
// Database implements bookstore.Repository on SQLite through gorm.io/gorm and
// gorm.io/driver/sqlite. It is meant to run against an in-memory DSN such as
// "file:bookshelf?mode=memory&cache=shared"; records live only as long as the
// process.
//
// # Interface Implementation
//
//	var _ bookstore.Repository = (*Database)(nil)
//
// # Usage
//
//	db, err := database.NewDatabase("file:bookshelf?mode=memory&cache=shared")
//	svc := bookstore.NewService(db)
package database
