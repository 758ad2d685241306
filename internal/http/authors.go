package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/libris-project/libris/internal/catalog"
)

type AuthorsController struct {
	store   LifecycleStore
	queries QueryStore
}

func NewAuthorsController(store LifecycleStore, queries QueryStore) *AuthorsController {
	return &AuthorsController{store: store, queries: queries}
}

// GetAllAuthors returns all authors as JSON.
// GET /api/authors
func (ac *AuthorsController) GetAllAuthors(c *gin.Context) {
	authors, err := ac.queries.ListAuthors()
	if err != nil {
		respondInternalError(c, err, "list authors")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authors": authors,
		"count":   len(authors),
	})
}

// CreateAuthor adds a new author from form fields.
// POST /api/authors
func (ac *AuthorsController) CreateAuthor(c *gin.Context) {
	author, err := ac.store.AddAuthor(authorInputFromRequest(c))
	if err != nil {
		respondCatalogError(c, err, "create author")
		return
	}

	respondCreated(c, author)
}

// AddAuthorPage renders the add-author form.
// GET /add_author
func (ac *AuthorsController) AddAuthorPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add_author", gin.H{})
}

// AddAuthorForm handles the add-author form submission and re-renders the
// form with a status message.
// POST /add_author
func (ac *AuthorsController) AddAuthorForm(c *gin.Context) {
	author, err := ac.store.AddAuthor(authorInputFromRequest(c))
	if err != nil {
		c.HTML(statusForCatalogError(err), "add_author", gin.H{
			"Error": messageForCatalogError(err, "Could not add the author"),
		})
		return
	}

	c.HTML(http.StatusCreated, "add_author", gin.H{
		"Message": "Author " + author.Name + " added successfully!",
	})
}

// authorInputFromRequest maps the submitted fields onto the catalog input.
// Field names match the original HTML form.
func authorInputFromRequest(c *gin.Context) catalog.AuthorInput {
	return catalog.AuthorInput{
		Name:        c.PostForm("name"),
		BirthDate:   c.PostForm("birthdate"),
		DateOfDeath: c.PostForm("date_of_death"),
	}
}
