package service

import (
	"errors"
	"strconv"

	"github.com/eokafor/athenaeum/data"
	"github.com/eokafor/athenaeum/data/dto"
	"github.com/eokafor/athenaeum/internal/cache"
	"github.com/eokafor/athenaeum/internal/validator"
	"github.com/eokafor/athenaeum/repository"
)

type borrowRecords interface {
	CreateBorrowRecord(requestBody dto.CreateBorrowRecordRequestBody) (*data.BorrowRecord, error)
	GetBorrowRecord(recordID int64) (*data.BorrowRecord, error)
	ListBorrowRecords(bookID, readerID int64, returned *bool, filters data.Filters) ([]*data.BorrowRecord, data.Metadata, error)
	UpdateBorrowRecord(recordID int64, requestBody dto.UpdateBorrowRecordRequestBody) (*data.BorrowRecord, error)
	ReturnBorrowRecord(recordID int64, requestBody dto.ReturnBorrowRecordRequestBody) (*data.BorrowRecord, error)
	DeleteBorrowRecord(recordID int64) error
}

// CreateBorrowRecord service lends one copy of a book to a reader. The
// availability check, the decrement and the record insert happen in a single
// repository transaction; a transient transaction failure is retried exactly
// once before surfacing. Borrow date defaults to the current date.
func (s *service) CreateBorrowRecord(requestBody dto.CreateBorrowRecordRequestBody) (*data.BorrowRecord, error) {
	record := &data.BorrowRecord{
		BookID:     requestBody.BookID,
		ReaderID:   requestBody.ReaderID,
		BorrowDate: requestBody.BorrowDate,
		DueDate:    requestBody.DueDate,
	}
	if record.BorrowDate.IsZero() {
		record.BorrowDate = data.Today()
	}
	v := validator.New()
	if data.ValidateBorrowRecord(v, record); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err := s.repo.CreateBorrowRecord(record)
	if retryable(err) {
		err = s.repo.CreateBorrowRecord(record)
	}
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		case errors.Is(err, repository.ErrNoCopiesAvailable):
			return nil, ErrNoCopiesAvailable
		default:
			return nil, err
		}
	}
	s.cache.InvalidateEntity(cache.EntityBooks, record.BookID)
	s.cache.InvalidateLists(cache.EntityBorrows)
	// Re-read through the join so the response carries the book title and
	// reader name; the bare record is still a valid fallback.
	if created, err := s.repo.GetBorrowRecord(record.ID); err == nil {
		record = created
	}
	s.sendBorrowReceipt(record)
	return record, nil
}

// GetBorrowRecord service retrieves the details of a borrow record.
func (s *service) GetBorrowRecord(recordID int64) (*data.BorrowRecord, error) {
	record, err := s.repo.GetBorrowRecord(recordID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return record, nil
}

// ListBorrowRecords service retrieves a paginated list of borrow records.
// The list can be filtered by book, reader and returned state, and sorted.
func (s *service) ListBorrowRecords(bookID, readerID int64, returned *bool, filters data.Filters) ([]*data.BorrowRecord, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	records, metadata, err := s.repo.GetAllBorrowRecords(bookID, readerID, returned, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return records, metadata, nil
}

// UpdateBorrowRecord service updates the due date of a borrow record.
func (s *service) UpdateBorrowRecord(recordID int64, requestBody dto.UpdateBorrowRecordRequestBody) (*data.BorrowRecord, error) {
	record, err := s.repo.GetBorrowRecord(recordID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if record.Returned() {
		return nil, ErrAlreadyReturned
	}
	if requestBody.DueDate != nil {
		record.DueDate = *requestBody.DueDate
	}
	v := validator.New()
	if data.ValidateBorrowRecord(v, record); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err = s.repo.UpdateBorrowRecord(record)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	s.cache.InvalidateLists(cache.EntityBorrows)
	return record, nil
}

// ReturnBorrowRecord service marks a borrow record as returned and gives the
// copy back to the book. The transition is terminal: a second return fails.
// Return date defaults to the current date, read per request.
func (s *service) ReturnBorrowRecord(recordID int64, requestBody dto.ReturnBorrowRecordRequestBody) (*data.BorrowRecord, error) {
	record, err := s.repo.GetBorrowRecord(recordID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if record.Returned() {
		return nil, ErrAlreadyReturned
	}
	returnDate := data.Today()
	if requestBody.ReturnDate != nil {
		returnDate = *requestBody.ReturnDate
	}
	v := validator.New()
	if data.ValidateReturnDate(v, record.BorrowDate, returnDate); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	updated, err := s.repo.ReturnBorrowRecord(recordID, returnDate)
	if retryable(err) {
		updated, err = s.repo.ReturnBorrowRecord(recordID, returnDate)
	}
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		case errors.Is(err, repository.ErrAlreadyReturned):
			return nil, ErrAlreadyReturned
		case errors.Is(err, repository.ErrCopiesExceedTotal):
			s.logger.PrintError(err, map[string]string{
				"record_id": strconv.FormatInt(recordID, 10),
				"book_id":   strconv.FormatInt(record.BookID, 10),
			})
			return nil, ErrIntegrityViolation
		default:
			return nil, err
		}
	}
	s.cache.InvalidateEntity(cache.EntityBooks, updated.BookID)
	s.cache.InvalidateLists(cache.EntityBorrows)
	updated.BookTitle = record.BookTitle
	updated.ReaderName = record.ReaderName
	return updated, nil
}

// DeleteBorrowRecord service deletes a borrow record. Deleting an active
// record gives the copy back to the book atomically.
func (s *service) DeleteBorrowRecord(recordID int64) error {
	record, err := s.repo.GetBorrowRecord(recordID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	err = s.repo.DeleteBorrowRecord(recordID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		case errors.Is(err, repository.ErrCopiesExceedTotal):
			s.logger.PrintError(err, map[string]string{
				"record_id": strconv.FormatInt(recordID, 10),
				"book_id":   strconv.FormatInt(record.BookID, 10),
			})
			return ErrIntegrityViolation
		default:
			return err
		}
	}
	s.cache.InvalidateEntity(cache.EntityBooks, record.BookID)
	s.cache.InvalidateLists(cache.EntityBorrows)
	return nil
}

// sendBorrowReceipt emails a borrow receipt to the reader in a background
// goroutine. Failures are logged and never affect the borrow itself.
func (s *service) sendBorrowReceipt(record *data.BorrowRecord) {
	if s.config.Smtp.Host == "" {
		return
	}
	recordID := record.ID
	readerID := record.ReaderID
	bookTitle := record.BookTitle
	borrowDate := record.BorrowDate
	dueDate := record.DueDate
	s.background(func() {
		reader, err := s.repo.GetReader(readerID)
		if err != nil {
			s.logger.PrintError(err, map[string]string{"record_id": strconv.FormatInt(recordID, 10)})
			return
		}
		if reader.Email == "" || !reader.IsActive {
			return
		}
		payload := map[string]interface{}{
			"readerName": reader.Name,
			"bookTitle":  bookTitle,
			"borrowDate": borrowDate.Format("January 2, 2006"),
			"dueDate":    dueDate.Format("January 2, 2006"),
		}
		err = s.mailer.Send(reader.Email, "borrow_receipt.tmpl", payload)
		if err != nil {
			s.logger.PrintError(err, map[string]string{"record_id": strconv.FormatInt(recordID, 10)})
		}
	})
}
