package bookstore

import "github.com/mrlokans/bookshelf/internal/entities"

// Repository stores book records. Implementations return ErrNotFound for an
// unknown id and keep books in insertion order.
type Repository interface {
	Insert(book entities.Book) error
	Find(filter Filter) ([]entities.Book, error)
	Get(id string) (*entities.Book, error)
	Replace(book entities.Book) error
	Delete(id string) error
	Ping() error
}
