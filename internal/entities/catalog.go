package entities

import (
	"fmt"
	"time"
)

// Author is a catalog author. Authors are created through the add-author
// form and removed automatically when their last book is deleted; they are
// never updated in place.
type Author struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"size:256" json:"name"`
	BirthDate   time.Time  `gorm:"not null" json:"birth_date"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
	Books       []Book     `gorm:"foreignKey:AuthorID" json:"books,omitempty"`
}

// Book is a catalog book. Every book belongs to exactly one author.
type Book struct {
	ID              uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ISBN            string  `gorm:"size:20" json:"isbn"`
	Title           string  `gorm:"index;size:512" json:"title"`
	PublicationYear int     `json:"publication_year"`
	CoverImageURL   string  `gorm:"size:2048" json:"cover_image_url,omitempty"`
	AuthorID        uint    `gorm:"index;not null" json:"author_id"`
	Author          *Author `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Author) TableName() string {
	return "authors"
}

func (Book) TableName() string {
	return "books"
}

func (a Author) String() string {
	return fmt.Sprintf("Author(id=%d, name=%s)", a.ID, a.Name)
}

func (b Book) String() string {
	return fmt.Sprintf("Book(id=%d, title=%s, author_id=%d)", b.ID, b.Title, b.AuthorID)
}
