package bookstore

import (
	"errors"
	"fmt"
)

// ValidationError reports a payload that breaks one of the book rules.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid book: " + e.Reason
}

var (
	ErrMissingName              = &ValidationError{Reason: "missing name"}
	ErrReadPageExceedsPageCount = &ValidationError{Reason: "readPage exceeds pageCount"}

	// ErrNotFound is returned when no book has the requested id.
	ErrNotFound = errors.New("book not found")

	// ErrDuplicateID is returned by a repository asked to insert an id it already holds.
	ErrDuplicateID = errors.New("book id already exists")
)

// InternalError wraps a failure the caller cannot fix by changing its request.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s book: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is (or wraps) a *ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
