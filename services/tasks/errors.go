package tasks

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound              = errors.New("task not found")
	ErrGenerationFailed      = errors.New("could not generate personalised tasks")
	ErrGenerationUnavailable = errors.New("task generation is not configured")
)

// ValidationError reports a rejected task.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
