package http

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

type UIController struct {
	store   LifecycleStore
	queries QueryStore
}

func NewUIController(store LifecycleStore, queries QueryStore) *UIController {
	return &UIController{store: store, queries: queries}
}

// HomePage renders the book listing with the sort selector and the title
// search box. A message query parameter carries status text from redirects.
// GET /?sort_by=title_asc&q=keyword&message=...
func (controller *UIController) HomePage(c *gin.Context) {
	sortBy := c.Query("sort_by")
	keyword := c.Query("q")

	books, err := listBooks(controller.queries, sortBy, keyword)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading books: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "home", gin.H{
		"Books":      books,
		"TotalBooks": len(books),
		"SortBy":     sortBy,
		"Keyword":    keyword,
		"NoMatches":  keyword != "" && len(books) == 0,
		"Message":    c.Query("message"),
	})
}

// AddBookPage renders the add-book form with the author selector.
// GET /add_book
func (controller *UIController) AddBookPage(c *gin.Context) {
	controller.renderAddBook(c, http.StatusOK, gin.H{})
}

// AddBookForm handles the add-book form submission and re-renders the
// form with a status message.
// POST /add_book
func (controller *UIController) AddBookForm(c *gin.Context) {
	book, err := controller.store.AddBook(c.Request.Context(), bookInputFromRequest(c))
	if err != nil {
		controller.renderAddBook(c, statusForCatalogError(err), gin.H{
			"Error": messageForCatalogError(err, "Could not add the book"),
		})
		return
	}

	controller.renderAddBook(c, http.StatusCreated, gin.H{
		"Message": "Book " + book.Title + " added successfully!",
	})
}

// DeleteBookForm handles the per-book delete button and redirects back to
// the home page with a status message.
// POST /book/:id/delete
func (controller *UIController) DeleteBookForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.store.DeleteBook(id)
	if err != nil {
		message := messageForCatalogError(err, "Could not delete the book")
		c.Redirect(http.StatusFound, "/?message="+url.QueryEscape(message))
		return
	}

	c.Redirect(http.StatusFound, "/?message="+url.QueryEscape("Book "+book.Title+" deleted successfully!"))
}

// renderAddBook renders the add-book template with the author selector
// filled in on top of the given template data.
func (controller *UIController) renderAddBook(c *gin.Context, status int, data gin.H) {
	authors, err := controller.queries.ListAuthors()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading authors: %s", err.Error())
		return
	}
	data["Authors"] = authors
	c.HTML(status, "add_book", data)
}
