package http

import (
	"context"

	"github.com/libris-project/libris/internal/catalog"
	"github.com/libris-project/libris/internal/entities"
)

// This file consolidates the catalog interfaces consumed by the HTTP
// controllers. Controllers depend on these rather than on the concrete
// service types so they can be exercised with fakes in tests.

// LifecycleStore covers the create/delete operations of the catalog.
type LifecycleStore interface {
	AddAuthor(in catalog.AuthorInput) (*entities.Author, error)
	AddBook(ctx context.Context, in catalog.BookInput) (*entities.Book, error)
	DeleteBook(id uint) (*entities.Book, error)
}

// QueryStore covers the read-only catalog views.
type QueryStore interface {
	ListSorted(sortKey string) ([]entities.Book, error)
	SearchByTitle(keyword string) ([]entities.Book, error)
	ListAuthors() ([]entities.Author, error)
}
