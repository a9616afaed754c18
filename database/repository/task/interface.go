package taskRepo

import (
	"context"
	"time"

	"soulsync/models"
)

// TaskRepository persists wellness tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	// CreateMany inserts tasks in one round trip; either all are stored or none.
	CreateMany(ctx context.Context, tasks []models.Task) error
	GetByID(ctx context.Context, id string) (*models.Task, error)
	// List returns every task, newest first.
	List(ctx context.Context) ([]models.Task, error)
	MarkCompleted(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}
