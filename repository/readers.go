package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/eokafor/athenaeum/data"
)

type readers interface {
	CreateReader(reader *data.Reader) error
	GetReader(readerID int64) (*data.Reader, error)
	GetAllReaders(search string, filters data.Filters) ([]*data.Reader, data.Metadata, error)
	UpdateReader(reader *data.Reader) error
	DeleteReader(readerID int64) error
}

// CreateReader creates a new reader record.
func (r *repository) CreateReader(reader *data.Reader) error {
	query := `
		INSERT INTO readers (name, reader_id, email, is_active, registration_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version`
	args := []interface{}{reader.Name, reader.ReaderID, reader.Email, reader.IsActive, reader.RegistrationDate}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&reader.ID, &reader.CreatedAt, &reader.Version)
	if err != nil {
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint "readers_reader_id_key"`:
			return ErrDuplicateRecord
		case err.Error() == `pq: duplicate key value violates unique constraint "readers_email_key"`:
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	return nil
}

// GetReader retrieves a reader record by its ID.
func (r *repository) GetReader(readerID int64) (*data.Reader, error) {
	if readerID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, created_at, name, reader_id, email, is_active, registration_date, version
		FROM readers
		WHERE id = $1`
	var reader data.Reader
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, readerID).Scan(
		&reader.ID,
		&reader.CreatedAt,
		&reader.Name,
		&reader.ReaderID,
		&reader.Email,
		&reader.IsActive,
		&reader.RegistrationDate,
		&reader.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &reader, nil
}

// GetAllReaders retrieves a paginated list of reader records. Records can be
// searched by name, reader id or email, and sorted.
func (r *repository) GetAllReaders(search string, filters data.Filters) ([]*data.Reader, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), id, created_at, name, reader_id, email, is_active, registration_date, version
		FROM readers
		WHERE (
			to_tsvector('simple', name) ||
			to_tsvector('simple', reader_id) ||
			to_tsvector('simple', email)
			@@ plainto_tsquery('simple', $1) OR $1 = ''
		)
		ORDER BY %s %s, id ASC
		LIMIT $2 OFFSET $3`,
		filters.SortColumn(), filters.SortDirection(),
	)
	args := []interface{}{search, filters.Limit(), filters.Offset()}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	readers := []*data.Reader{}
	for rows.Next() {
		var reader data.Reader
		err := rows.Scan(
			&totalRecords,
			&reader.ID,
			&reader.CreatedAt,
			&reader.Name,
			&reader.ReaderID,
			&reader.Email,
			&reader.IsActive,
			&reader.RegistrationDate,
			&reader.Version,
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		readers = append(readers, &reader)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return readers, metadata, nil
}

// UpdateReader updates a reader record.
func (r *repository) UpdateReader(reader *data.Reader) error {
	query := `
		UPDATE readers
		SET name = $1, reader_id = $2, email = $3, is_active = $4, version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING version`
	args := []interface{}{reader.Name, reader.ReaderID, reader.Email, reader.IsActive, reader.ID, reader.Version}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&reader.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		case err.Error() == `pq: duplicate key value violates unique constraint "readers_reader_id_key"`:
			return ErrDuplicateRecord
		case err.Error() == `pq: duplicate key value violates unique constraint "readers_email_key"`:
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	return nil
}

// DeleteReader deletes a reader record.
func (r *repository) DeleteReader(readerID int64) error {
	if readerID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM readers
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, readerID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
