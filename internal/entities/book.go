package entities

import (
	"encoding/json"
	"time"
)

// TimestampLayout is ISO 8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type Book struct {
	ID         string    `gorm:"primaryKey;size:32" json:"id"`
	Name       string    `gorm:"index;size:512" json:"name"`
	Year       int       `json:"year"`
	Author     string    `gorm:"size:256" json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `gorm:"size:256" json:"publisher"`
	PageCount  int       `json:"pageCount"`
	ReadPage   int       `json:"readPage"`
	Finished   bool      `gorm:"index" json:"finished"`
	Reading    bool      `gorm:"index" json:"reading"`
	InsertedAt time.Time `gorm:"autoCreateTime:false" json:"insertedAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

// MarshalJSON renders timestamps with TimestampLayout instead of RFC3339Nano.
func (b Book) MarshalJSON() ([]byte, error) {
	type plain Book
	return json.Marshal(struct {
		plain
		InsertedAt string `json:"insertedAt"`
		UpdatedAt  string `json:"updatedAt"`
	}{
		plain:      plain(b),
		InsertedAt: FormatTimestamp(b.InsertedAt),
		UpdatedAt:  FormatTimestamp(b.UpdatedAt),
	})
}

// ToSummary returns the list projection of the book.
func (b Book) ToSummary() BookSummary {
	return BookSummary{
		ID:        b.ID,
		Name:      b.Name,
		Publisher: b.Publisher,
	}
}

// BookSummary is what GET /books returns for every matching book.
type BookSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// BookInput is the payload accepted by create and update.
// Absent fields decode to their zero values.
type BookInput struct {
	Name      string `json:"name"`
	Year      int    `json:"year"`
	Author    string `json:"author"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"pageCount"`
	ReadPage  int    `json:"readPage"`
	Reading   bool   `json:"reading"`
}

// IsFinished reports whether every page has been read.
func (in BookInput) IsFinished() bool {
	return in.PageCount == in.ReadPage
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
