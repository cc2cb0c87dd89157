package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/eokafor/athenaeum/data/dto"
	"github.com/eokafor/athenaeum/internal/cache"
	"github.com/eokafor/athenaeum/internal/validator"
	"github.com/eokafor/athenaeum/service"
)

// createReaderHandler godoc
// @Summary Register a new reader
// @Tags readers
// @Accept json
// @Produce json
// @Param body body dto.CreateReaderRequestBody true "Request body"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /v1/readers [post]
func (h *Handler) createReaderHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateReaderRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	reader, err := h.service.CreateReader(requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrDuplicateRecord):
			h.recordAlreadyExistsResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/readers/%d", reader.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"reader": reader}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// showReaderHandler godoc
// @Summary Show the details of a specific reader
// @Tags readers
// @Produce json
// @Param readerId path int true "Reader ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/readers/{readerId} [get]
func (h *Handler) showReaderHandler(w http.ResponseWriter, r *http.Request) {
	readerID, err := h.readIDParam(r, "readerId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	key := h.cache.DetailKey(cache.EntityReaders, readerID)
	if js, ok := h.cache.Get(key); ok {
		h.writeCachedJSON(w, http.StatusOK, js)
		return
	}
	reader, err := h.service.GetReader(readerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeAndCacheJSON(w, http.StatusOK, envelope{"reader": reader}, nil, key)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// listReadersHandler godoc
// @Summary Show a paginated list of readers
// @Tags readers
// @Produce json
// @Param search query string false "Search over name, reader id and email"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param sort query string false "Sort column"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /v1/readers [get]
func (h *Handler) listReadersHandler(w http.ResponseWriter, r *http.Request) {
	var qsParams dto.QsListReaders
	v := validator.New()
	qs := r.URL.Query()
	qsParams.Search = h.readString(qs, "search", "")
	qsParams.Filters.Page = h.readInt(qs, "page", 1, v)
	qsParams.Filters.PageSize = h.readInt(qs, "page_size", 20, v)
	qsParams.Filters.Sort = h.readString(qs, "sort", "id")
	qsParams.Filters.SortSafeList = []string{"id", "name", "registration_date", "-id", "-name", "-registration_date"}
	if !v.Valid() {
		h.failedValidationResponse(w, r, queryValidationError(v.Errors))
		return
	}
	key := h.cache.ListKey(cache.EntityReaders, cache.Signature(qs, "search", "page", "page_size", "sort"))
	if js, ok := h.cache.Get(key); ok {
		h.writeCachedJSON(w, http.StatusOK, js)
		return
	}
	readers, metadata, err := h.service.ListReaders(qsParams.Search, qsParams.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeAndCacheJSON(w, http.StatusOK, envelope{"readers": readers, "metadata": metadata}, nil, key)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// updateReaderHandler godoc
// @Summary Update the details of a specific reader
// @Tags readers
// @Accept json
// @Produce json
// @Param readerId path int true "Reader ID"
// @Param body body dto.UpdateReaderRequestBody true "Request body"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /v1/readers/{readerId} [patch]
func (h *Handler) updateReaderHandler(w http.ResponseWriter, r *http.Request) {
	readerID, err := h.readIDParam(r, "readerId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	var requestBody dto.UpdateReaderRequestBody
	err = h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	reader, err := h.service.UpdateReader(readerID, requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		case errors.Is(err, service.ErrDuplicateRecord):
			h.recordAlreadyExistsResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"reader": reader}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// deleteReaderHandler godoc
// @Summary Delete a specific reader
// @Tags readers
// @Produce json
// @Param readerId path int true "Reader ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/readers/{readerId} [delete]
func (h *Handler) deleteReaderHandler(w http.ResponseWriter, r *http.Request) {
	readerID, err := h.readIDParam(r, "readerId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeleteReader(readerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "reader successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
