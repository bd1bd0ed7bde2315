package bookstore

import (
	"strconv"
	"strings"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// FilterField names the single attribute a list request filters on.
type FilterField int

const (
	FilterNone FilterField = iota
	FilterName
	FilterReading
	FilterFinished
)

// Filter selects books for List. Only one field is ever applied.
type Filter struct {
	Field FilterField
	Name  string
	Value bool

	// Invalid is set when a boolean filter carried a value ParseBoolFilter
	// does not accept. Such a filter matches nothing.
	Invalid bool
}

// ParseFilter builds a Filter from raw query values. Empty values count as
// absent. Precedence is name, then reading, then finished.
func ParseFilter(name, reading, finished string) Filter {
	switch {
	case name != "":
		return Filter{Field: FilterName, Name: name}
	case reading != "":
		return boolFilter(FilterReading, reading)
	case finished != "":
		return boolFilter(FilterFinished, finished)
	default:
		return Filter{}
	}
}

func boolFilter(field FilterField, raw string) Filter {
	value, ok := ParseBoolFilter(raw)
	return Filter{Field: field, Value: value, Invalid: !ok}
}

// ParseBoolFilter converts a query value into a boolean. It accepts what
// strconv.ParseBool accepts ("1", "0", "true", "false", "t", "f", ...),
// ignoring surrounding whitespace. ok is false for anything else.
func ParseBoolFilter(raw string) (value bool, ok bool) {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, false
	}
	return v, true
}

// Matches reports whether book passes the filter.
func (f Filter) Matches(book entities.Book) bool {
	if f.Invalid {
		return false
	}
	switch f.Field {
	case FilterName:
		return strings.Contains(strings.ToLower(book.Name), strings.ToLower(f.Name))
	case FilterReading:
		return book.Reading == f.Value
	case FilterFinished:
		return book.Finished == f.Value
	default:
		return true
	}
}
