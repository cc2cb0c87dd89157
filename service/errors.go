package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrFailedValidation     = errors.New("failed validation")
	ErrRecordNotFound       = errors.New("record not found")
	ErrEditConflict         = errors.New("edit conflict")
	ErrDuplicateRecord      = errors.New("duplicate record")
	ErrNoCopiesAvailable    = errors.New("no copies available")
	ErrAlreadyReturned      = errors.New("book already returned")
	ErrIntegrityViolation   = errors.New("data integrity violation")
	ErrBadRequest           = errors.New("bad request")
	ErrContentTooLarge      = errors.New("content too large")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)

// failedValidation converts a validation error map into a single error
// wrapping ErrFailedValidation. Keys are sorted so the message is
// deterministic.
func (s *service) failedValidation(errorMap map[string]string) error {
	keys := make([]string, 0, len(errorMap))
	for k := range errorMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%q %s", k, errorMap[k]))
	}
	return fmt.Errorf("%w: %s", ErrFailedValidation, strings.Join(parts, "; "))
}
