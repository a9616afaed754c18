package therapistRepo

import (
	"context"

	"soulsync/models"
)

// TherapistRepository defines methods for therapist directory access.
type TherapistRepository interface {
	// GetByID retrieves a therapist by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Therapist, error)
	// GetAll retrieves all therapists in insertion order.
	GetAll(ctx context.Context) ([]models.Therapist, error)
	// Create inserts a new therapist record.
	Create(ctx context.Context, therapist *models.Therapist) error
	// DeleteAll removes every therapist and returns how many were deleted.
	DeleteAll(ctx context.Context) (int64, error)
}
