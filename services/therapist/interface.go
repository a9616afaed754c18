package therapist

import (
	"context"
	"time"

	therapistRepo "soulsync/database/repository/therapist"
	"soulsync/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type DirectoryService interface {
	List(ctx context.Context) ([]models.Therapist, error)
	Search(ctx context.Context, query models.GeoQuery) ([]models.RankedResult, error)
	Specialties() []string
	Get(ctx context.Context, id string) (*models.Therapist, error)
	Create(ctx context.Context, t models.Therapist) (*models.Therapist, error)
	Refresh(ctx context.Context) (int, error)
	Seed(ctx context.Context) (int, error)
}

// DefaultDirectoryService reads the directory through a Redis cache.
type DefaultDirectoryService struct {
	Repo  therapistRepo.TherapistRepository
	Cache *redis.Client // nil disables caching
	TTL   time.Duration
	// SeedSamples fills an empty directory with the sample therapists.
	SeedSamples bool
	Logger      *zap.Logger

	loads singleflight.Group
}

func NewDirectoryService(repo therapistRepo.TherapistRepository, cache *redis.Client, ttl time.Duration, seed bool, logger *zap.Logger) *DefaultDirectoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultDirectoryService{Repo: repo, Cache: cache, TTL: ttl, SeedSamples: seed, Logger: logger}
}
