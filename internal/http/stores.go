package http

import (
	"github.com/mrlokans/bookshelf/internal/bookstore"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// BookStore is the set of book operations the books controller needs.
type BookStore interface {
	Create(input entities.BookInput) (string, error)
	List(filter bookstore.Filter) ([]entities.BookSummary, error)
	GetByID(id string) (*entities.Book, error)
	UpdateByID(id string, input entities.BookInput) error
	DeleteByID(id string) error
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping() error
}
