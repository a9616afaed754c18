package moodRepo

import (
	"context"

	"soulsync/models"
)

// MoodRepository persists mood journal entries.
type MoodRepository interface {
	Create(ctx context.Context, entry *models.MoodEntry) error
	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int64) ([]models.MoodEntry, error)
}
