package bookstore

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// IDLength is the number of characters in a generated book id.
const IDLength = 16

// IDGenerator returns a fresh opaque book id.
type IDGenerator func() string

// Clock returns the current time.
type Clock func() time.Time

// NewID returns IDLength hex characters taken from a random UUID.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:IDLength]
}
