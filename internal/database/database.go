package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"slices"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshelf/internal/bookstore"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// Database is a bookstore.Repository backed by gorm and SQLite.
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens dsn and migrates the books table. The pool is capped at a
// single connection so a shared in-memory database lives as long as the
// Database does.
func NewDatabase(dsn string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql database: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&entities.Book{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dsn)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d *Database) Insert(book entities.Book) error {
	var count int64
	if err := d.DB.Model(&entities.Book{}).Where("id = ?", book.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check book id: %w", err)
	}
	if count > 0 {
		return bookstore.ErrDuplicateID
	}

	if err := d.DB.Create(&book).Error; err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}
	return nil
}

// Find returns matching books ordered by rowid, which SQLite assigns in
// insertion order. Name filters are applied with Filter.Matches after loading,
// since SQLite's LOWER only folds ASCII.
func (d *Database) Find(filter bookstore.Filter) ([]entities.Book, error) {
	books := []entities.Book{}
	if filter.Invalid {
		return books, nil
	}

	query := d.DB.Order("rowid ASC")
	switch filter.Field {
	case bookstore.FilterReading:
		query = query.Where("reading = ?", filter.Value)
	case bookstore.FilterFinished:
		query = query.Where("finished = ?", filter.Value)
	}

	if err := query.Find(&books).Error; err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	if filter.Field == bookstore.FilterName {
		books = slices.DeleteFunc(books, func(book entities.Book) bool {
			return !filter.Matches(book)
		})
	}
	return books, nil
}

func (d *Database) Get(id string) (*entities.Book, error) {
	var book entities.Book
	err := d.DB.Where("id = ?", id).First(&book).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookstore.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return &book, nil
}

// Replace overwrites every column except id and inserted_at.
func (d *Database) Replace(book entities.Book) error {
	result := d.DB.Model(&entities.Book{}).Where("id = ?", book.ID).Updates(map[string]any{
		"name":       book.Name,
		"year":       book.Year,
		"author":     book.Author,
		"summary":    book.Summary,
		"publisher":  book.Publisher,
		"page_count": book.PageCount,
		"read_page":  book.ReadPage,
		"finished":   book.Finished,
		"reading":    book.Reading,
		"updated_at": book.UpdatedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return bookstore.ErrNotFound
	}
	return nil
}

func (d *Database) Delete(id string) error {
	result := d.DB.Where("id = ?", id).Delete(&entities.Book{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return bookstore.ErrNotFound
	}
	return nil
}
