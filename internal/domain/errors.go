package domain

import "errors"

// Sentinel errors for the two failure classes the application distinguishes.
// Callers wrap them with fmt.Errorf("...: %w", ...) and the delivery layer
// maps them to HTTP statuses with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)
