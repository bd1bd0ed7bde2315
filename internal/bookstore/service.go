package bookstore

import (
	"errors"
	"fmt"
	"time"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Service implements the book operations on top of a Repository.
type Service struct {
	repo  Repository
	newID IDGenerator
	now   Clock
}

// NewService creates a service that generates ids with NewID and reads
// time from time.Now.
func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		newID: NewID,
		now:   time.Now,
	}
}

// SetIDGenerator replaces the id generator.
func (s *Service) SetIDGenerator(gen IDGenerator) {
	s.newID = gen
}

// SetClock replaces the time source.
func (s *Service) SetClock(clock Clock) {
	s.now = clock
}

// Validate checks the two book rules in order: a name is required, and
// readPage may not exceed pageCount.
func Validate(input entities.BookInput) error {
	if input.Name == "" {
		return ErrMissingName
	}
	if input.ReadPage > input.PageCount {
		return ErrReadPageExceedsPageCount
	}
	return nil
}

// Create validates input, stores a new book and returns its id.
func (s *Service) Create(input entities.BookInput) (string, error) {
	if err := Validate(input); err != nil {
		return "", err
	}

	now := s.timestamp()
	book := entities.Book{ID: s.newID(), InsertedAt: now}
	apply(&book, input, now)

	if err := s.repo.Insert(book); err != nil {
		return "", &InternalError{Op: "create", Err: err}
	}

	// Confirm the record is readable before reporting success.
	if _, err := s.repo.Get(book.ID); err != nil {
		return "", &InternalError{Op: "create", Err: fmt.Errorf("book %s not readable after insert: %v", book.ID, err)}
	}

	return book.ID, nil
}

// List returns the id/name/publisher projection of every book that passes filter.
func (s *Service) List(filter Filter) ([]entities.BookSummary, error) {
	books, err := s.repo.Find(filter)
	if err != nil {
		return nil, &InternalError{Op: "list", Err: err}
	}

	summaries := make([]entities.BookSummary, 0, len(books))
	for _, book := range books {
		summaries = append(summaries, book.ToSummary())
	}
	return summaries, nil
}

func (s *Service) GetByID(id string) (*entities.Book, error) {
	book, err := s.repo.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, &InternalError{Op: "get", Err: err}
	}
	return book, nil
}

// UpdateByID validates input before looking the book up, then replaces
// every field except id and insertedAt. finished is recomputed from the new
// page counts.
func (s *Service) UpdateByID(id string, input entities.BookInput) error {
	if err := Validate(input); err != nil {
		return err
	}

	book, err := s.GetByID(id)
	if err != nil {
		return err
	}

	apply(book, input, s.timestamp())

	if err := s.repo.Replace(*book); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return &InternalError{Op: "update", Err: err}
	}
	return nil
}

func (s *Service) DeleteByID(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return &InternalError{Op: "delete", Err: err}
	}
	return nil
}

// Ping reports whether the underlying repository is reachable.
func (s *Service) Ping() error {
	return s.repo.Ping()
}

// Seed creates one book per input, stopping at the first failure.
func (s *Service) Seed(inputs []entities.BookInput) error {
	for _, input := range inputs {
		if _, err := s.Create(input); err != nil {
			return fmt.Errorf("seed %q: %w", input.Name, err)
		}
	}
	return nil
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func apply(book *entities.Book, input entities.BookInput, updatedAt time.Time) {
	book.Name = input.Name
	book.Year = input.Year
	book.Author = input.Author
	book.Summary = input.Summary
	book.Publisher = input.Publisher
	book.PageCount = input.PageCount
	book.ReadPage = input.ReadPage
	book.Reading = input.Reading
	book.Finished = input.IsFinished()
	book.UpdatedAt = updatedAt
}
