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

// createBookHandler godoc
// @Summary Add a new book
// @Tags books
// @Accept json
// @Produce json
// @Param body body dto.CreateBookRequestBody true "Request body"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /v1/books [post]
func (h *Handler) createBookHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateBookRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	book, err := h.service.CreateBook(requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/books/%d", book.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"book": book}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// showBookHandler godoc
// @Summary Show the details of a specific book
// @Tags books
// @Produce json
// @Param bookId path int true "Book ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/books/{bookId} [get]
func (h *Handler) showBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	key := h.cache.DetailKey(cache.EntityBooks, bookID)
	if js, ok := h.cache.Get(key); ok {
		h.writeCachedJSON(w, http.StatusOK, js)
		return
	}
	book, err := h.service.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeAndCacheJSON(w, http.StatusOK, envelope{"book": book}, nil, key)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// listBooksHandler godoc
// @Summary Show a paginated list of books
// @Tags books
// @Produce json
// @Param search query string false "Full text search over title, author and ISBN"
// @Param category query string false "Filter by category"
// @Param publisher query string false "Filter by publisher"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param sort query string false "Sort column"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /v1/books [get]
func (h *Handler) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	var qsParams dto.QsListBooks
	v := validator.New()
	qs := r.URL.Query()
	qsParams.Search = h.readString(qs, "search", "")
	qsParams.Category = h.readString(qs, "category", "")
	qsParams.Publisher = h.readString(qs, "publisher", "")
	qsParams.Filters.Page = h.readInt(qs, "page", 1, v)
	qsParams.Filters.PageSize = h.readInt(qs, "page_size", 20, v)
	qsParams.Filters.Sort = h.readString(qs, "sort", "id")
	qsParams.Filters.SortSafeList = []string{"id", "title", "author", "publication_date", "-id", "-title", "-author", "-publication_date"}
	if !v.Valid() {
		h.failedValidationResponse(w, r, queryValidationError(v.Errors))
		return
	}
	key := h.cache.ListKey(cache.EntityBooks, cache.Signature(qs, "search", "category", "publisher", "page", "page_size", "sort"))
	if js, ok := h.cache.Get(key); ok {
		h.writeCachedJSON(w, http.StatusOK, js)
		return
	}
	books, metadata, err := h.service.ListBooks(qsParams.Search, qsParams.Category, qsParams.Publisher, qsParams.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeAndCacheJSON(w, http.StatusOK, envelope{"books": books, "metadata": metadata}, nil, key)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// updateBookHandler godoc
// @Summary Update the details of a specific book
// @Tags books
// @Accept json
// @Produce json
// @Param bookId path int true "Book ID"
// @Param body body dto.UpdateBookRequestBody true "Request body"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /v1/books/{bookId} [patch]
func (h *Handler) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	var requestBody dto.UpdateBookRequestBody
	err = h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	book, err := h.service.UpdateBook(bookID, requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"book": book}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// updateBookCoverHandler godoc
// @Summary Upload a cover image for a specific book
// @Tags books
// @Accept mpfd
// @Produce json
// @Param bookId path int true "Book ID"
// @Param cover formData file true "Cover image (jpeg or png)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 413 {object} map[string]interface{}
// @Failure 415 {object} map[string]interface{}
// @Router /v1/books/{bookId}/cover [patch]
func (h *Handler) updateBookCoverHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	book, err := h.service.UpdateBookCover(bookID, r)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrBadRequest):
			h.badRequestResponse(w, r, err)
		case errors.Is(err, service.ErrContentTooLarge):
			h.contentTooLargeResponse(w, r)
		case errors.Is(err, service.ErrUnsupportedMediaType):
			h.unsupportedMediaTypeResponse(w, r)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"book": book}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// deleteBookHandler godoc
// @Summary Delete a specific book
// @Tags books
// @Produce json
// @Param bookId path int true "Book ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /v1/books/{bookId} [delete]
func (h *Handler) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeleteBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "book successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
