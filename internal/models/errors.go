package models

import "errors"

// Error taxonomy shared by repositories, services and handlers.
// Callers wrap these with fmt.Errorf("...: %w") and match with errors.Is.
var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("already exists")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
)
