package therapist

import "errors"

var (
	ErrNotFound    = errors.New("therapist not found")
	ErrInvalidName = errors.New("therapist name is required")
)
