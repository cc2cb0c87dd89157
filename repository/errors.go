package repository

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrEditConflict      = errors.New("edit conflict")
	ErrDuplicateRecord   = errors.New("duplicate record")
	ErrNoCopiesAvailable = errors.New("no copies available")
	ErrAlreadyReturned   = errors.New("record already returned")
	ErrCopiesExceedTotal = errors.New("available copies would exceed total copies")
)
