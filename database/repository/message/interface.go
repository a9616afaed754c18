package messageRepo

import (
	"context"

	"soulsync/models"
)

// MessageRepository persists chat turns.
type MessageRepository interface {
	// Create stores a new message.
	Create(ctx context.Context, msg *models.ChatMessage) error
	// List returns messages matching filter, chronological unless filter.Newest is set.
	List(ctx context.Context, filter models.MessageFilter) ([]models.ChatMessage, error)
}
