package chat

import "errors"

var (
	ErrEmptyMessage   = errors.New("message text is empty")
	ErrMissingSession = errors.New("session id is required")
)
