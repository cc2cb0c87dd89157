package handler

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	router.HandlerFunc(http.MethodGet, "/v1/books", h.listBooksHandler)
	router.HandlerFunc(http.MethodPost, "/v1/books", h.createBookHandler)
	router.HandlerFunc(http.MethodGet, "/v1/books/:bookId", h.showBookHandler)
	router.HandlerFunc(http.MethodPut, "/v1/books/:bookId", h.updateBookHandler)
	router.HandlerFunc(http.MethodPatch, "/v1/books/:bookId", h.updateBookHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/books/:bookId", h.deleteBookHandler)
	router.HandlerFunc(http.MethodPatch, "/v1/books/:bookId/cover", h.updateBookCoverHandler)

	router.HandlerFunc(http.MethodGet, "/v1/readers", h.listReadersHandler)
	router.HandlerFunc(http.MethodPost, "/v1/readers", h.createReaderHandler)
	router.HandlerFunc(http.MethodGet, "/v1/readers/:readerId", h.showReaderHandler)
	router.HandlerFunc(http.MethodPut, "/v1/readers/:readerId", h.updateReaderHandler)
	router.HandlerFunc(http.MethodPatch, "/v1/readers/:readerId", h.updateReaderHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/readers/:readerId", h.deleteReaderHandler)

	router.HandlerFunc(http.MethodGet, "/v1/borrows", h.listBorrowRecordsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/borrows", h.createBorrowRecordHandler)
	router.HandlerFunc(http.MethodGet, "/v1/borrows/:borrowId", h.showBorrowRecordHandler)
	router.HandlerFunc(http.MethodPut, "/v1/borrows/:borrowId", h.updateBorrowRecordHandler)
	router.HandlerFunc(http.MethodPatch, "/v1/borrows/:borrowId", h.updateBorrowRecordHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/borrows/:borrowId", h.deleteBorrowRecordHandler)
	router.HandlerFunc(http.MethodPost, "/v1/borrows/:borrowId/return", h.returnBorrowRecordHandler)

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", h.healthcheckHandler)
	router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))

	// Swagger routes
	router.HandlerFunc(http.MethodGet, "/spec", h.handleSwaggerFile())
	router.HandlerFunc(http.MethodGet, "/docs/*any", httpSwagger.Handler(httpSwagger.URL("/spec")))

	return h.recoverPanic(h.enableCORS(h.rateLimit(h.metrics(router))))
}
