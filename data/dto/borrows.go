package dto

import "github.com/eokafor/athenaeum/data"

// CreateBorrowRecordRequestBody defines the request body for the
// CreateBorrowRecord service. BorrowDate defaults to the current date when
// omitted.
type CreateBorrowRecordRequestBody struct {
	BookID     int64     `json:"book_id"`
	ReaderID   int64     `json:"reader_id"`
	BorrowDate data.Date `json:"borrow_date"`
	DueDate    data.Date `json:"due_date"`
}

// UpdateBorrowRecordRequestBody defines the request body for the
// UpdateBorrowRecord service. Only the due date may be changed after a loan
// exists; the remaining lifecycle runs through ReturnBorrowRecord.
type UpdateBorrowRecordRequestBody struct {
	DueDate *data.Date `json:"due_date"`
}

// ReturnBorrowRecordRequestBody defines the request body for the
// ReturnBorrowRecord service. ReturnDate defaults to the current date when
// omitted.
type ReturnBorrowRecordRequestBody struct {
	ReturnDate *data.Date `json:"return_date"`
}

// QsListBorrowRecords defines the query strings used for listing borrow
// records. A nil Returned lists every record regardless of state.
type QsListBorrowRecords struct {
	BookID   int64
	ReaderID int64
	Returned *bool
	Filters  data.Filters
}
