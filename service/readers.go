package service

import (
	"errors"

	"github.com/eokafor/athenaeum/data"
	"github.com/eokafor/athenaeum/data/dto"
	"github.com/eokafor/athenaeum/internal/cache"
	"github.com/eokafor/athenaeum/internal/validator"
	"github.com/eokafor/athenaeum/repository"
)

type readers interface {
	CreateReader(requestBody dto.CreateReaderRequestBody) (*data.Reader, error)
	GetReader(readerID int64) (*data.Reader, error)
	ListReaders(search string, filters data.Filters) ([]*data.Reader, data.Metadata, error)
	UpdateReader(readerID int64, requestBody dto.UpdateReaderRequestBody) (*data.Reader, error)
	DeleteReader(readerID int64) error
}

// CreateReader service registers a new reader. Registration date defaults to
// the current date and new readers are active unless stated otherwise.
func (s *service) CreateReader(requestBody dto.CreateReaderRequestBody) (*data.Reader, error) {
	reader := &data.Reader{
		Name:             requestBody.Name,
		ReaderID:         requestBody.ReaderID,
		Email:            requestBody.Email,
		IsActive:         true,
		RegistrationDate: data.Today(),
	}
	if requestBody.IsActive != nil {
		reader.IsActive = *requestBody.IsActive
	}
	if requestBody.RegistrationDate != nil {
		reader.RegistrationDate = *requestBody.RegistrationDate
	}
	v := validator.New()
	if data.ValidateReader(v, reader); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err := s.repo.CreateReader(reader)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			return nil, ErrDuplicateRecord
		default:
			return nil, err
		}
	}
	s.cache.InvalidateLists(cache.EntityReaders)
	return reader, nil
}

// GetReader service retrieves the details of a reader.
func (s *service) GetReader(readerID int64) (*data.Reader, error) {
	reader, err := s.repo.GetReader(readerID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return reader, nil
}

// ListReaders service retrieves a paginated list of readers. The list can be
// searched and sorted.
func (s *service) ListReaders(search string, filters data.Filters) ([]*data.Reader, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	readers, metadata, err := s.repo.GetAllReaders(search, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return readers, metadata, nil
}

// UpdateReader service updates the details of a specific reader.
func (s *service) UpdateReader(readerID int64, requestBody dto.UpdateReaderRequestBody) (*data.Reader, error) {
	reader, err := s.repo.GetReader(readerID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if requestBody.Name != nil {
		reader.Name = *requestBody.Name
	}
	if requestBody.ReaderID != nil {
		reader.ReaderID = *requestBody.ReaderID
	}
	if requestBody.Email != nil {
		reader.Email = *requestBody.Email
	}
	if requestBody.IsActive != nil {
		reader.IsActive = *requestBody.IsActive
	}
	v := validator.New()
	if data.ValidateReader(v, reader); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err = s.repo.UpdateReader(reader)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		case errors.Is(err, repository.ErrDuplicateRecord):
			return nil, ErrDuplicateRecord
		default:
			return nil, err
		}
	}
	s.cache.InvalidateEntity(cache.EntityReaders, reader.ID)
	return reader, nil
}

// DeleteReader service deletes a reader.
func (s *service) DeleteReader(readerID int64) error {
	err := s.repo.DeleteReader(readerID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	s.cache.InvalidateEntity(cache.EntityReaders, readerID)
	return nil
}
