package services

import "errors"

// Sentinel errors shared by all services. Handlers match them with
// errors.Is and map them to the response envelope; anything else is
// treated as an unexpected failure.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrQuotaExceeded   = errors.New("quota exceeded")
)
