package dto

import "github.com/eokafor/athenaeum/data"

// CreateReaderRequestBody defines the request body for the CreateReader
// service. RegistrationDate defaults to the current date when omitted and
// IsActive defaults to true.
type CreateReaderRequestBody struct {
	Name             string     `json:"name"`
	ReaderID         string     `json:"reader_id"`
	Email            string     `json:"email"`
	IsActive         *bool      `json:"is_active"`
	RegistrationDate *data.Date `json:"registration_date"`
}

// UpdateReaderRequestBody defines the request body for the UpdateReader
// service. The fields are set to a pointer type to allow partial updates
// based on whether the value is set to nil.
type UpdateReaderRequestBody struct {
	Name     *string `json:"name"`
	ReaderID *string `json:"reader_id"`
	Email    *string `json:"email"`
	IsActive *bool   `json:"is_active"`
}

// QsListReaders defines the query strings used for listing readers.
type QsListReaders struct {
	Search  string
	Filters data.Filters
}
