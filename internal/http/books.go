package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/libris-project/libris/internal/catalog"
	"github.com/libris-project/libris/internal/entities"
)

type BooksController struct {
	store   LifecycleStore
	queries QueryStore
}

func NewBooksController(store LifecycleStore, queries QueryStore) *BooksController {
	return &BooksController{store: store, queries: queries}
}

// GetAllBooks returns the book listing as JSON, sorted per sort_by and
// optionally filtered by the q title keyword.
// GET /api/books?sort_by=title_asc&q=keyword
func (bc *BooksController) GetAllBooks(c *gin.Context) {
	books, err := listBooks(bc.queries, c.Query("sort_by"), c.Query("q"))
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"books": books,
		"count": len(books),
	})
}

// CreateBook adds a new book from form fields. Cover enrichment runs
// within the request but its failures never fail the request.
// POST /api/books
func (bc *BooksController) CreateBook(c *gin.Context) {
	book, err := bc.store.AddBook(c.Request.Context(), bookInputFromRequest(c))
	if err != nil {
		respondCatalogError(c, err, "create book")
		return
	}

	respondCreated(c, book)
}

// DeleteBook removes a book, cascading to its author when the book was
// the author's last.
// DELETE /api/books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.store.DeleteBook(id)
	if err != nil {
		respondCatalogError(c, err, "delete book")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Book " + book.Title + " deleted successfully!",
	})
}

// listBooks runs either the title search or the sorted listing depending
// on whether a keyword was submitted.
func listBooks(queries QueryStore, sortBy, keyword string) ([]entities.Book, error) {
	if keyword != "" {
		return queries.SearchByTitle(keyword)
	}
	return queries.ListSorted(sortBy)
}

// bookInputFromRequest maps the submitted fields onto the catalog input.
// Field names match the original HTML form.
func bookInputFromRequest(c *gin.Context) catalog.BookInput {
	return catalog.BookInput{
		ISBN:            c.PostForm("isbn"),
		Title:           c.PostForm("title"),
		PublicationYear: c.PostForm("publication_year"),
		AuthorID:        c.PostForm("author_id"),
	}
}
