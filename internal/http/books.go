package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/bookstore"
	"github.com/mrlokans/bookshelf/internal/entities"
)

const (
	msgInvalidPayload = "Invalid request payload JSON format"

	msgCreated           = "Buku berhasil ditambahkan"
	msgCreateMissingName = "Gagal menambahkan buku. Mohon isi nama buku"
	msgCreateReadPage    = "Gagal menambahkan buku. readPage tidak boleh lebih besar dari pageCount"
	msgCreateFailed      = "Buku gagal ditambahkan"

	msgListFailed = "Buku gagal ditampilkan"

	msgBookNotFound = "Buku tidak ditemukan"
	msgGetFailed    = "Buku gagal ditampilkan"

	msgUpdated           = "Buku berhasil diperbarui"
	msgUpdateMissingName = "Gagal memperbarui buku. Mohon isi nama buku"
	msgUpdateReadPage    = "Gagal memperbarui buku. readPage tidak boleh lebih besar dari pageCount"
	msgUpdateNotFound    = "Gagal memperbarui buku. Id tidak ditemukan"
	msgUpdateFailed      = "Buku gagal diperbarui"

	msgDeleted        = "Buku berhasil dihapus"
	msgDeleteNotFound = "Buku gagal dihapus. Id tidak ditemukan"
	msgDeleteFailed   = "Buku gagal dihapus"
)

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{
		store: store,
	}
}

// CreateBook adds a book.
// POST /books
func (controller *BooksController) CreateBook(c *gin.Context) {
	input, ok := bindBookInput(c)
	if !ok {
		return
	}

	id, err := controller.store.Create(input)
	switch {
	case errors.Is(err, bookstore.ErrMissingName):
		respondBadRequest(c, msgCreateMissingName)
	case errors.Is(err, bookstore.ErrReadPageExceedsPageCount):
		respondBadRequest(c, msgCreateReadPage)
	case err != nil:
		respondInternalError(c, err, msgCreateFailed)
	default:
		respondSuccess(c, http.StatusCreated, msgCreated, gin.H{"bookId": id})
	}
}

// GetAllBooks lists books, optionally filtered by name, reading or finished.
// GET /books
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	filter := bookstore.ParseFilter(c.Query("name"), c.Query("reading"), c.Query("finished"))

	books, err := controller.store.List(filter)
	if err != nil {
		respondInternalError(c, err, msgListFailed)
		return
	}
	respondSuccess(c, http.StatusOK, "", gin.H{"books": books})
}

// GetBookByID returns the full record of one book.
// GET /books/:id
func (controller *BooksController) GetBookByID(c *gin.Context) {
	book, err := controller.store.GetByID(c.Param("id"))
	switch {
	case errors.Is(err, bookstore.ErrNotFound):
		respondNotFound(c, msgBookNotFound)
	case err != nil:
		respondInternalError(c, err, msgGetFailed)
	default:
		respondSuccess(c, http.StatusOK, "", gin.H{"book": book})
	}
}

// UpdateBookByID replaces a book's fields.
// PUT /books/:id
func (controller *BooksController) UpdateBookByID(c *gin.Context) {
	input, ok := bindBookInput(c)
	if !ok {
		return
	}

	err := controller.store.UpdateByID(c.Param("id"), input)
	switch {
	case errors.Is(err, bookstore.ErrMissingName):
		respondBadRequest(c, msgUpdateMissingName)
	case errors.Is(err, bookstore.ErrReadPageExceedsPageCount):
		respondBadRequest(c, msgUpdateReadPage)
	case errors.Is(err, bookstore.ErrNotFound):
		respondNotFound(c, msgUpdateNotFound)
	case err != nil:
		respondInternalError(c, err, msgUpdateFailed)
	default:
		respondSuccess(c, http.StatusOK, msgUpdated, nil)
	}
}

// DeleteBookByID removes a book.
// DELETE /books/:id
func (controller *BooksController) DeleteBookByID(c *gin.Context) {
	err := controller.store.DeleteByID(c.Param("id"))
	switch {
	case errors.Is(err, bookstore.ErrNotFound):
		respondNotFound(c, msgDeleteNotFound)
	case err != nil:
		respondInternalError(c, err, msgDeleteFailed)
	default:
		respondSuccess(c, http.StatusOK, msgDeleted, nil)
	}
}

// bindBookInput decodes the JSON body. An empty body yields a zero input so
// the name check reports it. Malformed JSON gets a 400 and ok=false.
func bindBookInput(c *gin.Context) (entities.BookInput, bool) {
	var input entities.BookInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		respondBadRequest(c, msgInvalidPayload)
		return entities.BookInput{}, false
	}
	return input, true
}
