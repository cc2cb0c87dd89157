package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/eokafor/athenaeum/data"
	"github.com/eokafor/athenaeum/data/dto"
	"github.com/eokafor/athenaeum/service"
)

func TestCreateBorrowRecordHandler(t *testing.T) {
	body := `{"book_id": 1, "reader_id": 2, "borrow_date": "2024-03-01", "due_date": "2024-03-15"}`

	t.Run("a successful borrow responds with 201", func(t *testing.T) {
		svc := &stubService{
			createBorrow: func(req dto.CreateBorrowRecordRequestBody) (*data.BorrowRecord, error) {
				return &data.BorrowRecord{
					ID:         10,
					BookID:     req.BookID,
					ReaderID:   req.ReaderID,
					BorrowDate: req.BorrowDate,
					DueDate:    req.DueDate,
				}, nil
			},
		}
		h := newTestHandler(svc, nil)
		w := doRequest(h, http.MethodPost, "/v1/borrows", strings.NewReader(body))
		if w.Code != http.StatusCreated {
			t.Errorf("expected status 201; got %d", w.Code)
		}
		if got := w.Header().Get("Location"); got != "/v1/borrows/10" {
			t.Errorf("expected Location /v1/borrows/10; got %q", got)
		}
		var response struct {
			BorrowRecord data.BorrowRecord `json:"borrow_record"`
		}
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatal(err)
		}
		if response.BorrowRecord.ID != 10 {
			t.Errorf("expected record id 10; got %d", response.BorrowRecord.ID)
		}
	})

	t.Run("no copies available responds with 400", func(t *testing.T) {
		svc := &stubService{
			createBorrow: func(dto.CreateBorrowRecordRequestBody) (*data.BorrowRecord, error) {
				return nil, service.ErrNoCopiesAvailable
			},
		}
		h := newTestHandler(svc, nil)
		w := doRequest(h, http.MethodPost, "/v1/borrows", strings.NewReader(body))
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400; got %d", w.Code)
		}
	})

	t.Run("an unknown book responds with 404", func(t *testing.T) {
		svc := &stubService{
			createBorrow: func(dto.CreateBorrowRecordRequestBody) (*data.BorrowRecord, error) {
				return nil, service.ErrRecordNotFound
			},
		}
		h := newTestHandler(svc, nil)
		w := doRequest(h, http.MethodPost, "/v1/borrows", strings.NewReader(body))
		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404; got %d", w.Code)
		}
	})

	t.Run("a validation failure responds with 400", func(t *testing.T) {
		svc := &stubService{
			createBorrow: func(dto.CreateBorrowRecordRequestBody) (*data.BorrowRecord, error) {
				return nil, service.ErrFailedValidation
			},
		}
		h := newTestHandler(svc, nil)
		w := doRequest(h, http.MethodPost, "/v1/borrows", strings.NewReader(body))
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400; got %d", w.Code)
		}
	})

	t.Run("a malformed body responds with 400", func(t *testing.T) {
		h := newTestHandler(&stubService{}, nil)
		w := doRequest(h, http.MethodPost, "/v1/borrows", strings.NewReader(`{"book_id": }`))
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400; got %d", w.Code)
		}
	})
}

func TestReturnBorrowRecordHandler(t *testing.T) {
	t.Run("a successful return responds with 200", func(t *testing.T) {
		returnDate := data.NewDate(2024, time.March, 10)
		svc := &stubService{
			returnBorrow: func(recordID int64, req dto.ReturnBorrowRecordRequestBody) (*data.BorrowRecord, error) {
				return &data.BorrowRecord{ID: recordID, ReturnDate: &returnDate}, nil
			},
		}
		h := newTestHandler(svc, nil)
		w := doRequest(h, http.MethodPost, "/v1/borrows/10/return", nil)
		if w.Code != http.StatusOK {
			t.Errorf("expected status 200; got %d", w.Code)
		}
		var response struct {
			BorrowRecord data.BorrowRecord `json:"borrow_record"`
		}
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatal(err)
		}
		if !response.BorrowRecord.Returned() {
			t.Error("expected the record to be returned")
		}
	})

	t.Run("a double return responds with 400", func(t *testing.T) {
		svc := &stubService{
			returnBorrow: func(int64, dto.ReturnBorrowRecordRequestBody) (*data.BorrowRecord, error) {
				return nil, service.ErrAlreadyReturned
			},
		}
		h := newTestHandler(svc, nil)
		w := doRequest(h, http.MethodPost, "/v1/borrows/10/return", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400; got %d", w.Code)
		}
	})

	t.Run("an unknown record responds with 404", func(t *testing.T) {
		svc := &stubService{
			returnBorrow: func(int64, dto.ReturnBorrowRecordRequestBody) (*data.BorrowRecord, error) {
				return nil, service.ErrRecordNotFound
			},
		}
		h := newTestHandler(svc, nil)
		w := doRequest(h, http.MethodPost, "/v1/borrows/99/return", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404; got %d", w.Code)
		}
	})

	t.Run("an integrity violation responds with 500", func(t *testing.T) {
		svc := &stubService{
			returnBorrow: func(int64, dto.ReturnBorrowRecordRequestBody) (*data.BorrowRecord, error) {
				return nil, service.ErrIntegrityViolation
			},
		}
		h := newTestHandler(svc, nil)
		w := doRequest(h, http.MethodPost, "/v1/borrows/10/return", nil)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected status 500; got %d", w.Code)
		}
	})

	t.Run("a non-numeric id responds with 404", func(t *testing.T) {
		h := newTestHandler(&stubService{}, nil)
		w := doRequest(h, http.MethodPost, "/v1/borrows/abc/return", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404; got %d", w.Code)
		}
	})
}

func TestListBorrowRecordsHandler(t *testing.T) {
	t.Run("query filters are forwarded to the service", func(t *testing.T) {
		var gotBookID, gotReaderID int64
		var gotReturned *bool
		svc := &stubService{
			listBorrowRecords: func(bookID, readerID int64, returned *bool, filters data.Filters) ([]*data.BorrowRecord, data.Metadata, error) {
				gotBookID, gotReaderID, gotReturned = bookID, readerID, returned
				return []*data.BorrowRecord{}, data.Metadata{}, nil
			},
		}
		h := newTestHandler(svc, nil)
		w := doRequest(h, http.MethodGet, "/v1/borrows?book_id=3&reader_id=7&returned=false", nil)
		if w.Code != http.StatusOK {
			t.Errorf("expected status 200; got %d", w.Code)
		}
		if gotBookID != 3 || gotReaderID != 7 {
			t.Errorf("expected book 3 and reader 7; got %d and %d", gotBookID, gotReaderID)
		}
		if gotReturned == nil || *gotReturned {
			t.Errorf("expected returned=false; got %v", gotReturned)
		}
	})

	t.Run("an invalid returned value responds with 400", func(t *testing.T) {
		h := newTestHandler(&stubService{}, nil)
		w := doRequest(h, http.MethodGet, "/v1/borrows?returned=maybe", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400; got %d", w.Code)
		}
	})
}
