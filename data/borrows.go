package data

import (
	"time"

	"github.com/eokafor/athenaeum/internal/validator"
)

// BorrowRecord defines a single loan of one book copy to one reader. A nil
// ReturnDate means the loan is still active; a set ReturnDate is terminal.
// BookTitle and ReaderName are read-only fields populated by a join.
type BorrowRecord struct {
	ID         int64     `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	BookID     int64     `json:"book_id"`
	BookTitle  string    `json:"book_title,omitempty"`
	ReaderID   int64     `json:"reader_id"`
	ReaderName string    `json:"reader_name,omitempty"`
	BorrowDate Date      `json:"borrow_date"`
	DueDate    Date      `json:"due_date"`
	ReturnDate *Date     `json:"return_date"`
	Version    int32     `json:"-"`
}

// Returned reports whether the record has reached its terminal state.
func (b *BorrowRecord) Returned() bool {
	return b.ReturnDate != nil
}

func ValidateBorrowRecord(v *validator.Validator, record *BorrowRecord) {
	v.Check(record.BookID > 0, "book_id", "must be provided")
	v.Check(record.ReaderID > 0, "reader_id", "must be provided")
	v.Check(!record.BorrowDate.IsZero(), "borrow_date", "must be provided")
	v.Check(!record.DueDate.IsZero(), "due_date", "must be provided")
	if !record.BorrowDate.IsZero() && !record.DueDate.IsZero() {
		v.Check(!record.DueDate.Before(record.BorrowDate), "due_date", "must not be earlier than borrow date")
	}
}

func ValidateReturnDate(v *validator.Validator, borrowDate, returnDate Date) {
	v.Check(!returnDate.IsZero(), "return_date", "must be provided")
	v.Check(!returnDate.Before(borrowDate), "return_date", "must not be earlier than borrow date")
}
