package http

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libris-project/libris/internal/catalog"
	"github.com/libris-project/libris/internal/entities"
)

func sampleBooks() []entities.Book {
	return []entities.Book{
		{ID: 1, Title: "Anna Karenina", ISBN: "978-0-14-303500-8", PublicationYear: 1878, AuthorID: 1, Author: &entities.Author{ID: 1, Name: "Leo Tolstoy"}},
		{ID: 2, Title: "War and Peace", ISBN: "978-1-85326-062-9", PublicationYear: 1869, AuthorID: 1, Author: &entities.Author{ID: 1, Name: "Leo Tolstoy"}},
	}
}

func TestGetAllBooks(t *testing.T) {
	queries := &fakeQueries{books: sampleBooks()}
	router := setupRouter(t, &fakeLifecycle{}, queries)

	w := performRequest(router, http.MethodGet, "/api/books?sort_by=title_desc", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "title_desc", queries.lastSortKey)
	assert.Contains(t, w.Body.String(), "War and Peace")
	assert.Contains(t, w.Body.String(), `"count":2`)
}

func TestGetAllBooks_KeywordRunsSearch(t *testing.T) {
	queries := &fakeQueries{matches: sampleBooks()[1:]}
	router := setupRouter(t, &fakeLifecycle{}, queries)

	w := performRequest(router, http.MethodGet, "/api/books?q=War", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "War", queries.lastKeyword)
	assert.Empty(t, queries.lastSortKey)
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestCreateBook(t *testing.T) {
	var received catalog.BookInput
	lifecycle := &fakeLifecycle{
		addBook: func(ctx context.Context, in catalog.BookInput) (*entities.Book, error) {
			received = in
			return &entities.Book{ID: 3, Title: in.Title, CoverImageURL: "http://covers.example/wp.jpg"}, nil
		},
	}
	router := setupRouter(t, lifecycle, &fakeQueries{})

	w := performRequest(router, http.MethodPost, "/api/books", url.Values{
		"isbn":             {"978-1-85326-062-9"},
		"title":            {"War and Peace"},
		"publication_year": {"1869"},
		"author_id":        {"1"},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "War and Peace", received.Title)
	assert.Equal(t, "1869", received.PublicationYear)
	assert.Equal(t, "1", received.AuthorID)
	assert.Contains(t, w.Body.String(), "http://covers.example/wp.jpg")
}

func TestCreateBook_UnknownAuthor(t *testing.T) {
	lifecycle := &fakeLifecycle{
		addBook: func(ctx context.Context, in catalog.BookInput) (*entities.Book, error) {
			return nil, &catalog.ValidationError{Message: "author_id: author does not exist"}
		},
	}
	router := setupRouter(t, lifecycle, &fakeQueries{})

	w := performRequest(router, http.MethodPost, "/api/books", url.Values{
		"isbn":             {"978-1-85326-062-9"},
		"title":            {"War and Peace"},
		"publication_year": {"1869"},
		"author_id":        {"99"},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "author does not exist")
}

func TestCreateBook_StorageFailure(t *testing.T) {
	lifecycle := &fakeLifecycle{
		addBook: func(ctx context.Context, in catalog.BookInput) (*entities.Book, error) {
			return nil, &catalog.PersistenceError{Op: "create book", Err: context.DeadlineExceeded}
		},
	}
	router := setupRouter(t, lifecycle, &fakeQueries{})

	w := performRequest(router, http.MethodPost, "/api/books", url.Values{
		"isbn":             {"978-1-85326-062-9"},
		"title":            {"War and Peace"},
		"publication_year": {"1869"},
		"author_id":        {"1"},
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "deadline")
}

func TestDeleteBook(t *testing.T) {
	var deletedID uint
	lifecycle := &fakeLifecycle{
		delete: func(id uint) (*entities.Book, error) {
			deletedID = id
			return &entities.Book{ID: id, Title: "War and Peace"}, nil
		},
	}
	router := setupRouter(t, lifecycle, &fakeQueries{})

	w := performRequest(router, http.MethodDelete, "/api/books/2", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(2), deletedID)
	assert.Contains(t, w.Body.String(), "Book War and Peace deleted successfully!")
}

func TestDeleteBook_NotFound(t *testing.T) {
	lifecycle := &fakeLifecycle{
		delete: func(id uint) (*entities.Book, error) {
			return nil, &catalog.NotFoundError{Resource: "book", ID: id}
		},
	}
	router := setupRouter(t, lifecycle, &fakeQueries{})

	w := performRequest(router, http.MethodDelete, "/api/books/42", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBook_InvalidID(t *testing.T) {
	router := setupRouter(t, &fakeLifecycle{}, &fakeQueries{})

	w := performRequest(router, http.MethodDelete, "/api/books/not-a-number", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid id")
}
