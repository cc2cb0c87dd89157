package service

import (
	"errors"
	"net/http"

	"github.com/eokafor/athenaeum/clients"
	"github.com/eokafor/athenaeum/data"
	"github.com/eokafor/athenaeum/data/dto"
	"github.com/eokafor/athenaeum/internal/cache"
	"github.com/eokafor/athenaeum/internal/validator"
	"github.com/eokafor/athenaeum/repository"
)

type books interface {
	CreateBook(requestBody dto.CreateBookRequestBody) (*data.Book, error)
	GetBook(bookID int64) (*data.Book, error)
	ListBooks(search, category, publisher string, filters data.Filters) ([]*data.Book, data.Metadata, error)
	UpdateBook(bookID int64, requestBody dto.UpdateBookRequestBody) (*data.Book, error)
	UpdateBookCover(bookID int64, r *http.Request) (*data.Book, error)
	DeleteBook(bookID int64) error
}

// CreateBook service creates a new book. Every copy of a new book starts out
// available.
func (s *service) CreateBook(requestBody dto.CreateBookRequestBody) (*data.Book, error) {
	book := &data.Book{
		Title:           requestBody.Title,
		Author:          requestBody.Author,
		Isbn:            requestBody.Isbn,
		Category:        requestBody.Category,
		Publisher:       requestBody.Publisher,
		PublicationDate: requestBody.PublicationDate,
		TotalCopies:     requestBody.TotalCopies,
		AvailableCopies: requestBody.TotalCopies,
	}
	v := validator.New()
	if data.ValidateBook(v, book); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err := s.repo.CreateBook(book)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateLists(cache.EntityBooks)
	return book, nil
}

// GetBook service retrieves the details of a book.
func (s *service) GetBook(bookID int64) (*data.Book, error) {
	book, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return book, nil
}

// ListBooks service retrieves a paginated list of books. The list can be
// searched, filtered and sorted.
func (s *service) ListBooks(search, category, publisher string, filters data.Filters) ([]*data.Book, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	books, metadata, err := s.repo.GetAllBooks(search, category, publisher, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return books, metadata, nil
}

// UpdateBook service updates the details of a specific book. Available
// copies cannot be set directly: shrinking total copies below the number of
// copies currently out on loan fails validation.
func (s *service) UpdateBook(bookID int64, requestBody dto.UpdateBookRequestBody) (*data.Book, error) {
	book, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if requestBody.Title != nil {
		book.Title = *requestBody.Title
	}
	if requestBody.Author != nil {
		book.Author = *requestBody.Author
	}
	if requestBody.Isbn != nil {
		book.Isbn = *requestBody.Isbn
	}
	if requestBody.Category != nil {
		book.Category = *requestBody.Category
	}
	if requestBody.Publisher != nil {
		book.Publisher = *requestBody.Publisher
	}
	if requestBody.PublicationDate != nil {
		book.PublicationDate = *requestBody.PublicationDate
	}
	if requestBody.TotalCopies != nil {
		// Growing or shrinking the stock adjusts the available count by
		// the same amount, keeping copies-on-loan fixed.
		delta := *requestBody.TotalCopies - book.TotalCopies
		book.TotalCopies = *requestBody.TotalCopies
		book.AvailableCopies += delta
	}
	v := validator.New()
	if data.ValidateBook(v, book); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err = s.repo.UpdateBook(book)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	s.cache.InvalidateEntity(cache.EntityBooks, book.ID)
	return book, nil
}

// UpdateBookCover service uploads a cover image for a book.
func (s *service) UpdateBookCover(bookID int64, r *http.Request) (*data.Book, error) {
	book, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	err = r.ParseMultipartForm(5000)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesError):
			return nil, ErrContentTooLarge
		default:
			return nil, ErrBadRequest
		}
	}
	file, fileHeader, err := r.FormFile(data.ScopeCover)
	if err != nil {
		return nil, ErrBadRequest
	}
	defer file.Close()
	buffer, mtype, err := s.detectMimeType(file, fileHeader)
	if err != nil {
		return nil, err
	}
	supportedMediaType := []string{
		"image/jpeg",
		"image/png",
	}
	if validMime := validator.Mime(mtype, supportedMediaType...); !validMime {
		return nil, ErrUnsupportedMediaType
	}
	s3Client, err := clients.NewS3Client(s.config)
	if err != nil {
		return nil, err
	}
	coverPath, err := s.uploadCoverToS3(s3Client, buffer, mtype, fileHeader)
	if err != nil {
		return nil, err
	}
	book.CoverPath = coverPath
	err = s.repo.UpdateBook(book)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	s.cache.InvalidateEntity(cache.EntityBooks, book.ID)
	return book, nil
}

// DeleteBook service deletes a book.
func (s *service) DeleteBook(bookID int64) error {
	err := s.repo.DeleteBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	s.cache.InvalidateEntity(cache.EntityBooks, bookID)
	return nil
}
