package data

import (
	"time"

	"github.com/eokafor/athenaeum/internal/validator"
)

// Reader defines a registered library member.
type Reader struct {
	ID               int64     `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Name             string    `json:"name"`
	ReaderID         string    `json:"reader_id"`
	Email            string    `json:"email,omitempty"`
	IsActive         bool      `json:"is_active"`
	RegistrationDate Date      `json:"registration_date"`
	Version          int32     `json:"-"`
}

func ValidateReader(v *validator.Validator, reader *Reader) {
	v.Check(reader.Name != "", "name", "must be provided")
	v.Check(len(reader.Name) <= 500, "name", "must not be more than 500 bytes long")
	v.Check(reader.ReaderID != "", "reader_id", "must be provided")
	v.Check(len(reader.ReaderID) <= 50, "reader_id", "must not be more than 50 bytes long")
	if reader.Email != "" {
		v.Check(validator.Matches(reader.Email, validator.EmailRX), "email", "must be a valid email address")
	}
	v.Check(!reader.RegistrationDate.IsZero(), "registration_date", "must be provided")
}
