// Package authors provides database operations for author records.
package authors

import (
	"gorm.io/gorm"

	"github.com/libris-project/libris/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository. Passing a transaction
// handle scopes every operation to that transaction.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new author and assigns its ID.
func (r *Repository) Create(author *entities.Author) error {
	return r.db.Create(author).Error
}

// GetByID retrieves an author by its ID.
func (r *Repository) GetByID(id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.First(&author, id).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetAll retrieves all authors ordered by name, for the add-book selector.
func (r *Repository) GetAll() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Order("name ASC").Find(&authors).Error
	return authors, err
}

// Exists reports whether an author with the given ID is present.
func (r *Repository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Author{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Delete removes an author row.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Author{}, id).Error
}
