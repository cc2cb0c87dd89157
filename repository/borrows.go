package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/eokafor/athenaeum/data"
	"github.com/lib/pq"
)

type borrows interface {
	CreateBorrowRecord(record *data.BorrowRecord) error
	GetBorrowRecord(recordID int64) (*data.BorrowRecord, error)
	GetAllBorrowRecords(bookID, readerID int64, returned *bool, filters data.Filters) ([]*data.BorrowRecord, data.Metadata, error)
	UpdateBorrowRecord(record *data.BorrowRecord) error
	ReturnBorrowRecord(recordID int64, returnDate data.Date) (*data.BorrowRecord, error)
	DeleteBorrowRecord(recordID int64) error
}

// CreateBorrowRecord inserts a borrow record and decrements the book's
// available copies as one atomic unit. The book row is locked for the
// duration of the transaction, so concurrent borrow requests for the same
// book serialize around the availability check and the count can never go
// negative.
func (r *repository) CreateBorrowRecord(record *data.BorrowRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var available int
	query := `
		SELECT available_copies
		FROM books
		WHERE id = $1
		FOR UPDATE`
	err = tx.QueryRowContext(ctx, query, record.BookID).Scan(&available)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	if available <= 0 {
		return ErrNoCopiesAvailable
	}

	query = `
		UPDATE books
		SET available_copies = available_copies - 1, version = version + 1
		WHERE id = $1`
	_, err = tx.ExecContext(ctx, query, record.BookID)
	if err != nil {
		return err
	}

	query = `
		INSERT INTO borrow_records (book_id, reader_id, borrow_date, due_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version`
	args := []interface{}{record.BookID, record.ReaderID, record.BorrowDate, record.DueDate}
	err = tx.QueryRowContext(ctx, query, args...).Scan(&record.ID, &record.CreatedAt, &record.Version)
	if err != nil {
		var pqErr *pq.Error
		switch {
		// Foreign key violation means the referenced reader doesn't exist.
		case errors.As(err, &pqErr) && pqErr.Code == "23503":
			return ErrRecordNotFound
		default:
			return err
		}
	}

	return tx.Commit()
}

// GetBorrowRecord retrieves a borrow record by its ID, joined with the book
// title and reader name.
func (r *repository) GetBorrowRecord(recordID int64) (*data.BorrowRecord, error) {
	if recordID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT br.id, br.created_at, br.book_id, b.title, br.reader_id, rd.name, br.borrow_date, br.due_date, br.return_date, br.version
		FROM borrow_records br
		INNER JOIN books b ON b.id = br.book_id
		INNER JOIN readers rd ON rd.id = br.reader_id
		WHERE br.id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	var record data.BorrowRecord
	var returnDate sql.NullTime
	err := r.db.QueryRowContext(ctx, query, recordID).Scan(
		&record.ID,
		&record.CreatedAt,
		&record.BookID,
		&record.BookTitle,
		&record.ReaderID,
		&record.ReaderName,
		&record.BorrowDate,
		&record.DueDate,
		&returnDate,
		&record.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if returnDate.Valid {
		d := data.Date{Time: returnDate.Time.UTC()}
		record.ReturnDate = &d
	}
	return &record, nil
}

// GetAllBorrowRecords retrieves a paginated list of borrow records. Records
// can be filtered by book, reader and returned state, and sorted. A zero
// bookID or readerID matches every record; a nil returned matches both
// active and returned loans.
func (r *repository) GetAllBorrowRecords(bookID, readerID int64, returned *bool, filters data.Filters) ([]*data.BorrowRecord, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), br.id, br.created_at, br.book_id, b.title, br.reader_id, rd.name, br.borrow_date, br.due_date, br.return_date, br.version
		FROM borrow_records br
		INNER JOIN books b ON b.id = br.book_id
		INNER JOIN readers rd ON rd.id = br.reader_id
		WHERE (br.book_id = $1 OR $1 = 0)
		AND (br.reader_id = $2 OR $2 = 0)
		AND (
			CASE
				WHEN $3::boolean IS NULL THEN TRUE
				WHEN $3::boolean THEN br.return_date IS NOT NULL
				ELSE br.return_date IS NULL
			END
		)
		ORDER BY br.%s %s, br.id ASC
		LIMIT $4 OFFSET $5`,
		filters.SortColumn(), filters.SortDirection(),
	)
	args := []interface{}{bookID, readerID, returned, filters.Limit(), filters.Offset()}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	records := []*data.BorrowRecord{}
	for rows.Next() {
		var record data.BorrowRecord
		var returnDate sql.NullTime
		err := rows.Scan(
			&totalRecords,
			&record.ID,
			&record.CreatedAt,
			&record.BookID,
			&record.BookTitle,
			&record.ReaderID,
			&record.ReaderName,
			&record.BorrowDate,
			&record.DueDate,
			&returnDate,
			&record.Version,
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		if returnDate.Valid {
			d := data.Date{Time: returnDate.Time.UTC()}
			record.ReturnDate = &d
		}
		records = append(records, &record)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return records, metadata, nil
}

// UpdateBorrowRecord updates the mutable fields of a borrow record (the due
// date). Lifecycle transitions go through ReturnBorrowRecord instead.
func (r *repository) UpdateBorrowRecord(record *data.BorrowRecord) error {
	query := `
		UPDATE borrow_records
		SET due_date = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version`
	args := []interface{}{record.DueDate, record.ID, record.Version}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&record.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		default:
			return err
		}
	}
	return nil
}

// ReturnBorrowRecord marks a borrow record as returned and increments the
// book's available copies as one atomic unit. Both rows are locked, the
// already-returned check runs under the lock, and an increment that would
// push available copies past total copies aborts the transaction since it
// signals an earlier invariant violation.
func (r *repository) ReturnBorrowRecord(recordID int64, returnDate data.Date) (*data.BorrowRecord, error) {
	if recordID < 1 {
		return nil, ErrRecordNotFound
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var record data.BorrowRecord
	var existingReturn sql.NullTime
	query := `
		SELECT id, created_at, book_id, reader_id, borrow_date, due_date, return_date, version
		FROM borrow_records
		WHERE id = $1
		FOR UPDATE`
	err = tx.QueryRowContext(ctx, query, recordID).Scan(
		&record.ID,
		&record.CreatedAt,
		&record.BookID,
		&record.ReaderID,
		&record.BorrowDate,
		&record.DueDate,
		&existingReturn,
		&record.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if existingReturn.Valid {
		return nil, ErrAlreadyReturned
	}

	var available, total int
	query = `
		SELECT available_copies, total_copies
		FROM books
		WHERE id = $1
		FOR UPDATE`
	err = tx.QueryRowContext(ctx, query, record.BookID).Scan(&available, &total)
	if err != nil {
		return nil, err
	}
	if available+1 > total {
		return nil, ErrCopiesExceedTotal
	}

	query = `
		UPDATE borrow_records
		SET return_date = $1, version = version + 1
		WHERE id = $2
		RETURNING version`
	err = tx.QueryRowContext(ctx, query, returnDate, record.ID).Scan(&record.Version)
	if err != nil {
		return nil, err
	}

	query = `
		UPDATE books
		SET available_copies = available_copies + 1, version = version + 1
		WHERE id = $1`
	_, err = tx.ExecContext(ctx, query, record.BookID)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}
	record.ReturnDate = &returnDate
	return &record, nil
}

// DeleteBorrowRecord deletes a borrow record. Deleting a still-active record
// gives the borrowed copy back to the book inside the same transaction, so
// the availability count stays consistent with the remaining records.
func (r *repository) DeleteBorrowRecord(recordID int64) error {
	if recordID < 1 {
		return ErrRecordNotFound
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var bookID int64
	var returnDate sql.NullTime
	query := `
		SELECT book_id, return_date
		FROM borrow_records
		WHERE id = $1
		FOR UPDATE`
	err = tx.QueryRowContext(ctx, query, recordID).Scan(&bookID, &returnDate)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrRecordNotFound
		default:
			return err
		}
	}

	if !returnDate.Valid {
		var available, total int
		query = `
			SELECT available_copies, total_copies
			FROM books
			WHERE id = $1
			FOR UPDATE`
		err = tx.QueryRowContext(ctx, query, bookID).Scan(&available, &total)
		if err != nil {
			return err
		}
		if available+1 > total {
			return ErrCopiesExceedTotal
		}
		query = `
			UPDATE books
			SET available_copies = available_copies + 1, version = version + 1
			WHERE id = $1`
		_, err = tx.ExecContext(ctx, query, bookID)
		if err != nil {
			return err
		}
	}

	query = `
		DELETE FROM borrow_records
		WHERE id = $1`
	_, err = tx.ExecContext(ctx, query, recordID)
	if err != nil {
		return err
	}

	return tx.Commit()
}
