package bookstore

import (
	"slices"
	"sync"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// MemoryRepository keeps books in a slice guarded by a RWMutex.
type MemoryRepository struct {
	mu    sync.RWMutex
	books []entities.Book
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Insert(book entities.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(book.ID) != -1 {
		return ErrDuplicateID
	}
	r.books = append(r.books, book)
	return nil
}

// Find returns copies of the matching books in insertion order.
func (r *MemoryRepository) Find(filter Filter) ([]entities.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entities.Book, 0, len(r.books))
	for _, book := range r.books {
		if filter.Matches(book) {
			result = append(result, book)
		}
	}
	return result, nil
}

func (r *MemoryRepository) Get(id string) (*entities.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i == -1 {
		return nil, ErrNotFound
	}
	book := r.books[i]
	return &book, nil
}

// Replace overwrites the stored book that has book.ID, keeping its position.
func (r *MemoryRepository) Replace(book entities.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(book.ID)
	if i == -1 {
		return ErrNotFound
	}
	r.books[i] = book
	return nil
}

func (r *MemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return ErrNotFound
	}
	r.books = slices.Delete(r.books, i, i+1)
	return nil
}

func (r *MemoryRepository) Ping() error {
	return nil
}

// Len returns the number of stored books.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books)
}

// indexOf must be called with r.mu held.
func (r *MemoryRepository) indexOf(id string) int {
	return slices.IndexFunc(r.books, func(b entities.Book) bool {
		return b.ID == id
	})
}
