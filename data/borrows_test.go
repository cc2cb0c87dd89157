package data

import (
	"testing"
	"time"

	"github.com/eokafor/athenaeum/internal/validator"
)

func TestValidateBorrowRecord(t *testing.T) {
	valid := func() *BorrowRecord {
		return &BorrowRecord{
			BookID:     1,
			ReaderID:   1,
			BorrowDate: NewDate(2024, time.March, 1),
			DueDate:    NewDate(2024, time.March, 15),
		}
	}

	t.Run("a valid record passes", func(t *testing.T) {
		v := validator.New()
		ValidateBorrowRecord(v, valid())
		if !v.Valid() {
			t.Errorf("expected no errors; got %v", v.Errors)
		}
	})

	t.Run("missing book and reader ids fail", func(t *testing.T) {
		record := valid()
		record.BookID = 0
		record.ReaderID = 0
		v := validator.New()
		ValidateBorrowRecord(v, record)
		if _, ok := v.Errors["book_id"]; !ok {
			t.Error("expected a book_id error")
		}
		if _, ok := v.Errors["reader_id"]; !ok {
			t.Error("expected a reader_id error")
		}
	})

	t.Run("due date before borrow date fails", func(t *testing.T) {
		record := valid()
		record.DueDate = NewDate(2024, time.February, 1)
		v := validator.New()
		ValidateBorrowRecord(v, record)
		if _, ok := v.Errors["due_date"]; !ok {
			t.Error("expected a due_date error")
		}
	})

	t.Run("due date equal to borrow date passes", func(t *testing.T) {
		record := valid()
		record.DueDate = record.BorrowDate
		v := validator.New()
		ValidateBorrowRecord(v, record)
		if !v.Valid() {
			t.Errorf("expected no errors; got %v", v.Errors)
		}
	})
}

func TestValidateReturnDate(t *testing.T) {
	borrowDate := NewDate(2024, time.March, 1)

	t.Run("a return on the borrow date passes", func(t *testing.T) {
		v := validator.New()
		ValidateReturnDate(v, borrowDate, borrowDate)
		if !v.Valid() {
			t.Errorf("expected no errors; got %v", v.Errors)
		}
	})

	t.Run("a return before the borrow date fails", func(t *testing.T) {
		v := validator.New()
		ValidateReturnDate(v, borrowDate, NewDate(2024, time.February, 28))
		if _, ok := v.Errors["return_date"]; !ok {
			t.Error("expected a return_date error")
		}
	})

	t.Run("a zero return date fails", func(t *testing.T) {
		v := validator.New()
		ValidateReturnDate(v, borrowDate, Date{})
		if _, ok := v.Errors["return_date"]; !ok {
			t.Error("expected a return_date error")
		}
	})
}

func TestBorrowRecordReturned(t *testing.T) {
	record := &BorrowRecord{}
	if record.Returned() {
		t.Error("expected a record without a return date to be active")
	}
	d := NewDate(2024, time.March, 10)
	record.ReturnDate = &d
	if !record.Returned() {
		t.Error("expected a record with a return date to be returned")
	}
}
