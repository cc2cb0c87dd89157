package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/eokafor/athenaeum/data/dto"
	"github.com/eokafor/athenaeum/internal/validator"
	"github.com/eokafor/athenaeum/service"
)

// createBorrowRecordHandler godoc
// @Summary Lend a copy of a book to a reader
// @Tags borrows
// @Accept json
// @Produce json
// @Param body body dto.CreateBorrowRecordRequestBody true "Request body"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/borrows [post]
func (h *Handler) createBorrowRecordHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateBorrowRecordRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	record, err := h.service.CreateBorrowRecord(requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrNoCopiesAvailable):
			h.noCopiesAvailableResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/borrows/%d", record.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"borrow_record": record}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// showBorrowRecordHandler godoc
// @Summary Show the details of a specific borrow record
// @Tags borrows
// @Produce json
// @Param borrowId path int true "Borrow record ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/borrows/{borrowId} [get]
func (h *Handler) showBorrowRecordHandler(w http.ResponseWriter, r *http.Request) {
	recordID, err := h.readIDParam(r, "borrowId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	record, err := h.service.GetBorrowRecord(recordID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"borrow_record": record}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// listBorrowRecordsHandler godoc
// @Summary Show a paginated list of borrow records
// @Tags borrows
// @Produce json
// @Param book_id query int false "Filter by book"
// @Param reader_id query int false "Filter by reader"
// @Param returned query bool false "Filter by returned state"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param sort query string false "Sort column"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /v1/borrows [get]
func (h *Handler) listBorrowRecordsHandler(w http.ResponseWriter, r *http.Request) {
	var qsParams dto.QsListBorrowRecords
	v := validator.New()
	qs := r.URL.Query()
	qsParams.BookID = h.readInt64(qs, "book_id", 0, v)
	qsParams.ReaderID = h.readInt64(qs, "reader_id", 0, v)
	qsParams.Returned = h.readOptionalBool(qs, "returned", v)
	qsParams.Filters.Page = h.readInt(qs, "page", 1, v)
	qsParams.Filters.PageSize = h.readInt(qs, "page_size", 20, v)
	qsParams.Filters.Sort = h.readString(qs, "sort", "id")
	qsParams.Filters.SortSafeList = []string{"id", "borrow_date", "due_date", "return_date", "-id", "-borrow_date", "-due_date", "-return_date"}
	if !v.Valid() {
		h.failedValidationResponse(w, r, queryValidationError(v.Errors))
		return
	}
	records, metadata, err := h.service.ListBorrowRecords(qsParams.BookID, qsParams.ReaderID, qsParams.Returned, qsParams.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"borrow_records": records, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// updateBorrowRecordHandler godoc
// @Summary Update the due date of a specific borrow record
// @Tags borrows
// @Accept json
// @Produce json
// @Param borrowId path int true "Borrow record ID"
// @Param body body dto.UpdateBorrowRecordRequestBody true "Request body"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /v1/borrows/{borrowId} [patch]
func (h *Handler) updateBorrowRecordHandler(w http.ResponseWriter, r *http.Request) {
	recordID, err := h.readIDParam(r, "borrowId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	var requestBody dto.UpdateBorrowRecordRequestBody
	err = h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	record, err := h.service.UpdateBorrowRecord(recordID, requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrAlreadyReturned):
			h.alreadyReturnedResponse(w, r)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"borrow_record": record}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// returnBorrowRecordHandler godoc
// @Summary Return a borrowed copy of a book
// @Tags borrows
// @Accept json
// @Produce json
// @Param borrowId path int true "Borrow record ID"
// @Param body body dto.ReturnBorrowRecordRequestBody false "Request body"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/borrows/{borrowId}/return [post]
func (h *Handler) returnBorrowRecordHandler(w http.ResponseWriter, r *http.Request) {
	recordID, err := h.readIDParam(r, "borrowId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	var requestBody dto.ReturnBorrowRecordRequestBody
	if r.ContentLength > 0 {
		err = h.decodeJSON(w, r, &requestBody)
		if err != nil {
			h.badRequestResponse(w, r, err)
			return
		}
	}
	record, err := h.service.ReturnBorrowRecord(recordID, requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrAlreadyReturned):
			h.alreadyReturnedResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"borrow_record": record}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// deleteBorrowRecordHandler godoc
// @Summary Delete a specific borrow record
// @Tags borrows
// @Produce json
// @Param borrowId path int true "Borrow record ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/borrows/{borrowId} [delete]
func (h *Handler) deleteBorrowRecordHandler(w http.ResponseWriter, r *http.Request) {
	recordID, err := h.readIDParam(r, "borrowId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeleteBorrowRecord(recordID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "borrow record successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
