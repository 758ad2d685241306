package catalog

import (
	"gorm.io/gorm"

	"github.com/libris-project/libris/internal/database/authors"
	"github.com/libris-project/libris/internal/database/books"
	"github.com/libris-project/libris/internal/entities"
)

// Queries provides the read-only views over the catalog. Every call
// reflects the store's state at call time; nothing is cached.
type Queries struct {
	db *gorm.DB
}

func NewQueries(db *gorm.DB) *Queries {
	return &Queries{db: db}
}

// ListSorted returns all books with their authors ordered per the sort
// key. Unknown keys fall back to ascending title order.
func (q *Queries) ListSorted(sortKey string) ([]entities.Book, error) {
	return books.NewRepository(q.db).ListSorted(books.ParseSortKey(sortKey))
}

// SearchByTitle returns all books whose title contains the keyword. An
// empty keyword returns the full default-sorted listing.
func (q *Queries) SearchByTitle(keyword string) ([]entities.Book, error) {
	if keyword == "" {
		return q.ListSorted("")
	}
	return books.NewRepository(q.db).SearchByTitle(keyword)
}

// ListAuthors returns all authors ordered by name.
func (q *Queries) ListAuthors() ([]entities.Author, error) {
	return authors.NewRepository(q.db).GetAll()
}
