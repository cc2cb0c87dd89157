package dto

import "github.com/eokafor/athenaeum/data"

// CreateBookRequestBody defines the request body for the CreateBook service.
// AvailableCopies is intentionally absent: a new book starts with every copy
// available and the field is owned by the borrow service afterwards.
type CreateBookRequestBody struct {
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Isbn            string    `json:"isbn"`
	Category        string    `json:"category"`
	Publisher       string    `json:"publisher"`
	PublicationDate data.Date `json:"publication_date"`
	TotalCopies     int       `json:"total_copies"`
}

// UpdateBookRequestBody defines the request body for the UpdateBook service.
// The fields are set to a pointer type to allow partial updates based on
// whether the value is set to nil.
type UpdateBookRequestBody struct {
	Title           *string    `json:"title"`
	Author          *string    `json:"author"`
	Isbn            *string    `json:"isbn"`
	Category        *string    `json:"category"`
	Publisher       *string    `json:"publisher"`
	PublicationDate *data.Date `json:"publication_date"`
	TotalCopies     *int       `json:"total_copies"`
}

// QsListBooks defines the query strings used for listing books.
type QsListBooks struct {
	Search    string
	Category  string
	Publisher string
	Filters   data.Filters
}
