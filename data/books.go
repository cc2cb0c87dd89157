package data

import (
	"time"

	"github.com/eokafor/athenaeum/internal/validator"
)

const ScopeCover = "cover"

// Book defines a book model. AvailableCopies is managed by the borrow
// service once the record exists; clients set it only indirectly through
// TotalCopies at creation time.
type Book struct {
	ID              int64     `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Isbn            string    `json:"isbn"`
	Category        string    `json:"category,omitempty"`
	Publisher       string    `json:"publisher,omitempty"`
	PublicationDate Date      `json:"publication_date"`
	TotalCopies     int       `json:"total_copies"`
	AvailableCopies int       `json:"available_copies"`
	CoverPath       string    `json:"cover_path,omitempty"`
	Version         int32     `json:"-"`
}

func ValidateBook(v *validator.Validator, book *Book) {
	v.Check(book.Title != "", "title", "must be provided")
	v.Check(len(book.Title) <= 500, "title", "must not be more than 500 bytes long")
	v.Check(book.Author != "", "author", "must be provided")
	v.Check(len(book.Author) <= 500, "author", "must not be more than 500 bytes long")
	v.Check(book.Isbn != "", "isbn", "must be provided")
	v.Check(len(book.Isbn) <= 17, "isbn", "must not be more than 17 characters")
	v.Check(!book.PublicationDate.IsZero(), "publication_date", "must be provided")
	v.Check(book.TotalCopies >= 0, "total_copies", "must not be negative")
	v.Check(book.AvailableCopies >= 0, "available_copies", "must not be negative")
	v.Check(book.AvailableCopies <= book.TotalCopies, "available_copies", "must not exceed total copies")
}
