// Package catalog implements the data lifecycle around author and book
// records: validated creation, the orphan-author delete cascade, and the
// sorted/filtered read views. All writes run inside a single transaction
// per operation; validation failures never reach the storage layer.
package catalog

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gorm.io/gorm"

	"github.com/libris-project/libris/internal/database/authors"
	"github.com/libris-project/libris/internal/database/books"
	"github.com/libris-project/libris/internal/entities"
)

// dateLayout is the calendar date format accepted by the author form.
const dateLayout = "2006-01-02"

// CoverFetcher looks up a cover image URL for a book title. It degrades to
// an empty string on every failure mode and never returns an error.
type CoverFetcher interface {
	FetchCoverImage(ctx context.Context, title string) string
}

// AuthorInput carries the raw form fields of the add-author form.
type AuthorInput struct {
	Name        string
	BirthDate   string
	DateOfDeath string
}

func (in AuthorInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.BirthDate, validation.Required, validation.Date(dateLayout)),
		validation.Field(&in.DateOfDeath, validation.Date(dateLayout)),
	)
}

// BookInput carries the raw form fields of the add-book form.
type BookInput struct {
	ISBN            string
	Title           string
	PublicationYear string
	AuthorID        string
}

func (in BookInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.ISBN, validation.Required),
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.PublicationYear, validation.Required, is.Int),
		validation.Field(&in.AuthorID, validation.Required, is.Int),
	)
}

// Service orchestrates author and book create/delete operations.
type Service struct {
	db     *gorm.DB
	covers CoverFetcher
}

func NewService(db *gorm.DB, covers CoverFetcher) *Service {
	return &Service{db: db, covers: covers}
}

// AddAuthor validates the form input and inserts a new author inside a
// transaction. An empty death date is stored as null.
func (s *Service) AddAuthor(in AuthorInput) (*entities.Author, error) {
	if err := in.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	birthDate, err := time.Parse(dateLayout, in.BirthDate)
	if err != nil {
		return nil, &ValidationError{Message: "birth_date: must be a valid date"}
	}

	var dateOfDeath *time.Time
	if in.DateOfDeath != "" {
		parsed, err := time.Parse(dateLayout, in.DateOfDeath)
		if err != nil {
			return nil, &ValidationError{Message: "date_of_death: must be a valid date"}
		}
		dateOfDeath = &parsed
	}

	author := &entities.Author{
		Name:        in.Name,
		BirthDate:   birthDate,
		DateOfDeath: dateOfDeath,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return authors.NewRepository(tx).Create(author)
	})
	if err != nil {
		return nil, &PersistenceError{Op: "create author", Err: err}
	}

	return author, nil
}

// AddBook validates the form input, verifies that the referenced author
// exists, asks the cover fetcher for an image URL, and inserts the book
// inside a transaction. Cover lookup failures never abort creation.
func (s *Service) AddBook(ctx context.Context, in BookInput) (*entities.Book, error) {
	if err := in.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	year, err := strconv.Atoi(in.PublicationYear)
	if err != nil {
		return nil, &ValidationError{Message: "publication_year: must be an integer"}
	}

	authorID, err := strconv.ParseUint(in.AuthorID, 10, 32)
	if err != nil {
		return nil, &ValidationError{Message: "author_id: must be a positive integer"}
	}

	exists, err := authors.NewRepository(s.db).Exists(uint(authorID))
	if err != nil {
		return nil, &PersistenceError{Op: "look up author", Err: err}
	}
	if !exists {
		return nil, &ValidationError{Message: "author_id: author does not exist"}
	}

	book := &entities.Book{
		ISBN:            in.ISBN,
		Title:           in.Title,
		PublicationYear: year,
		CoverImageURL:   s.covers.FetchCoverImage(ctx, in.Title),
		AuthorID:        uint(authorID),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return books.NewRepository(tx).Create(book)
	})
	if err != nil {
		return nil, &PersistenceError{Op: "create book", Err: err}
	}

	return book, nil
}

// DeleteBook removes a book by ID. When the book is the last one
// referencing its author, the author is removed in the same transaction:
// either both rows go or neither does. Returns the deleted book so callers
// can report what was removed.
func (s *Service) DeleteBook(id uint) (*entities.Book, error) {
	book, err := books.NewRepository(s.db).GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "book", ID: id}
	}
	if err != nil {
		return nil, &PersistenceError{Op: "look up book", Err: err}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		bookRepo := books.NewRepository(tx)

		remaining, err := bookRepo.CountByAuthor(book.AuthorID)
		if err != nil {
			return err
		}

		if err := bookRepo.Delete(book.ID); err != nil {
			return err
		}

		if remaining == 1 {
			if err := authors.NewRepository(tx).Delete(book.AuthorID); err != nil {
				return err
			}
			log.Printf("Removed author %d along with their last book %d", book.AuthorID, book.ID)
		}

		return nil
	})
	if err != nil {
		return nil, &PersistenceError{Op: "delete book", Err: err}
	}

	return book, nil
}
