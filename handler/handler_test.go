package handler

import (
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/eokafor/athenaeum/config"
	"github.com/eokafor/athenaeum/data"
	"github.com/eokafor/athenaeum/data/dto"
	"github.com/eokafor/athenaeum/internal/cache"
	"github.com/eokafor/athenaeum/internal/jsonlog"
)

// stubService implements service.Service with per-method function fields so
// each test only wires the calls it cares about.
type stubService struct {
	createBook        func(dto.CreateBookRequestBody) (*data.Book, error)
	getBook           func(int64) (*data.Book, error)
	listBooks         func(string, string, string, data.Filters) ([]*data.Book, data.Metadata, error)
	updateBook        func(int64, dto.UpdateBookRequestBody) (*data.Book, error)
	updateBookCover   func(int64, *http.Request) (*data.Book, error)
	deleteBook        func(int64) error
	createReader      func(dto.CreateReaderRequestBody) (*data.Reader, error)
	getReader         func(int64) (*data.Reader, error)
	listReaders       func(string, data.Filters) ([]*data.Reader, data.Metadata, error)
	updateReader      func(int64, dto.UpdateReaderRequestBody) (*data.Reader, error)
	deleteReader      func(int64) error
	createBorrow      func(dto.CreateBorrowRecordRequestBody) (*data.BorrowRecord, error)
	getBorrow         func(int64) (*data.BorrowRecord, error)
	listBorrowRecords func(int64, int64, *bool, data.Filters) ([]*data.BorrowRecord, data.Metadata, error)
	updateBorrow      func(int64, dto.UpdateBorrowRecordRequestBody) (*data.BorrowRecord, error)
	returnBorrow      func(int64, dto.ReturnBorrowRecordRequestBody) (*data.BorrowRecord, error)
	deleteBorrow      func(int64) error
}

func (s *stubService) CreateBook(body dto.CreateBookRequestBody) (*data.Book, error) {
	return s.createBook(body)
}

func (s *stubService) GetBook(bookID int64) (*data.Book, error) {
	return s.getBook(bookID)
}

func (s *stubService) ListBooks(search, category, publisher string, filters data.Filters) ([]*data.Book, data.Metadata, error) {
	return s.listBooks(search, category, publisher, filters)
}

func (s *stubService) UpdateBook(bookID int64, body dto.UpdateBookRequestBody) (*data.Book, error) {
	return s.updateBook(bookID, body)
}

func (s *stubService) UpdateBookCover(bookID int64, r *http.Request) (*data.Book, error) {
	return s.updateBookCover(bookID, r)
}

func (s *stubService) DeleteBook(bookID int64) error {
	return s.deleteBook(bookID)
}

func (s *stubService) CreateReader(body dto.CreateReaderRequestBody) (*data.Reader, error) {
	return s.createReader(body)
}

func (s *stubService) GetReader(readerID int64) (*data.Reader, error) {
	return s.getReader(readerID)
}

func (s *stubService) ListReaders(search string, filters data.Filters) ([]*data.Reader, data.Metadata, error) {
	return s.listReaders(search, filters)
}

func (s *stubService) UpdateReader(readerID int64, body dto.UpdateReaderRequestBody) (*data.Reader, error) {
	return s.updateReader(readerID, body)
}

func (s *stubService) DeleteReader(readerID int64) error {
	return s.deleteReader(readerID)
}

func (s *stubService) CreateBorrowRecord(body dto.CreateBorrowRecordRequestBody) (*data.BorrowRecord, error) {
	return s.createBorrow(body)
}

func (s *stubService) GetBorrowRecord(recordID int64) (*data.BorrowRecord, error) {
	return s.getBorrow(recordID)
}

func (s *stubService) ListBorrowRecords(bookID, readerID int64, returned *bool, filters data.Filters) ([]*data.BorrowRecord, data.Metadata, error) {
	return s.listBorrowRecords(bookID, readerID, returned, filters)
}

func (s *stubService) UpdateBorrowRecord(recordID int64, body dto.UpdateBorrowRecordRequestBody) (*data.BorrowRecord, error) {
	return s.updateBorrow(recordID, body)
}

func (s *stubService) ReturnBorrowRecord(recordID int64, body dto.ReturnBorrowRecordRequestBody) (*data.BorrowRecord, error) {
	return s.returnBorrow(recordID, body)
}

func (s *stubService) DeleteBorrowRecord(recordID int64) error {
	return s.deleteBorrow(recordID)
}

// newTestHandler wires a handler around a stub service with a quiet logger.
// Rate limiting and metrics stay disabled under the zero config.
func newTestHandler(svc *stubService, c *cache.Cache) *Handler {
	var cfg config.Config
	logger := jsonlog.New(io.Discard, jsonlog.LevelOff)
	return New(cfg, logger, c, svc)
}

func doRequest(h *Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, target, body)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.Routes().ServeHTTP(w, r)
	return w
}
