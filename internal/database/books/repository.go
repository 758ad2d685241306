// Package books provides database operations for book records, including
// the sorted and filtered listings backing the catalog pages.
package books

import (
	"gorm.io/gorm"

	"github.com/libris-project/libris/internal/entities"
)

// SortKey selects the ordering of a book listing.
type SortKey string

const (
	SortTitleAsc   SortKey = "title_asc"
	SortTitleDesc  SortKey = "title_desc"
	SortAuthorAsc  SortKey = "author_asc"
	SortAuthorDesc SortKey = "author_desc"
)

// ParseSortKey maps a raw query value to a SortKey, falling back to the
// default title ordering for anything unrecognized.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortTitleDesc, SortAuthorAsc, SortAuthorDesc:
		return SortKey(s)
	default:
		return SortTitleAsc
	}
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository. Passing a transaction
// handle scopes every operation to that transaction.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new book and assigns its ID. The Author association is
// omitted so an attached struct is never upserted alongside the row.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Omit("Author").Create(book).Error
}

// GetByID retrieves a book with its author.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// ListSorted retrieves all books with their authors, ordered per the sort
// key. Author orderings join against the authors table explicitly; ties
// keep natural storage order.
func (r *Repository) ListSorted(sort SortKey) ([]entities.Book, error) {
	query := r.db.Preload("Author")

	switch sort {
	case SortTitleDesc:
		query = query.Order("books.title DESC")
	case SortAuthorAsc:
		query = query.Joins("JOIN authors ON authors.id = books.author_id").Order("authors.name ASC")
	case SortAuthorDesc:
		query = query.Joins("JOIN authors ON authors.id = books.author_id").Order("authors.name DESC")
	default:
		query = query.Order("books.title ASC")
	}

	var books []entities.Book
	err := query.Find(&books).Error
	return books, err
}

// SearchByTitle retrieves books whose title contains the keyword as a
// substring. An empty result set is a valid outcome, not an error.
func (r *Repository) SearchByTitle(keyword string) ([]entities.Book, error) {
	var books []entities.Book
	searchPattern := "%" + keyword + "%"
	err := r.db.Preload("Author").
		Where("title LIKE ?", searchPattern).
		Order("books.title ASC").
		Find(&books).Error
	return books, err
}

// GetByAuthor retrieves all books referencing an author.
func (r *Repository) GetByAuthor(authorID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Where("author_id = ?", authorID).Find(&books).Error
	return books, err
}

// CountByAuthor counts the books referencing an author.
func (r *Repository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// Delete removes a book row.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Book{}, id).Error
}
