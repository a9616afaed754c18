package therapist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"soulsync/database"
	"soulsync/metrics"
	"soulsync/models"
	"soulsync/services/geo"
	"soulsync/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// List returns the whole directory, served from cache when possible.
// An empty directory is seeded with the sample therapists when enabled.
func (s *DefaultDirectoryService) List(ctx context.Context) ([]models.Therapist, error) {
	if cached, ok := s.readCache(ctx); ok {
		return cached, nil
	}

	// Concurrent misses share one load so an empty directory is seeded once.
	v, err, _ := s.loads.Do(utils.TherapistCacheKey, func() (interface{}, error) {
		return s.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return append([]models.Therapist{}, v.([]models.Therapist)...), nil
}

func (s *DefaultDirectoryService) load(ctx context.Context) ([]models.Therapist, error) {
	therapists, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load therapists: %w", err)
	}
	if len(therapists) == 0 && s.SeedSamples {
		if _, err := s.seed(ctx); err != nil {
			return nil, err
		}
		if therapists, err = s.Repo.GetAll(ctx); err != nil {
			return nil, fmt.Errorf("load therapists: %w", err)
		}
	}

	s.writeCache(ctx, therapists)
	return therapists, nil
}

// Search filters the directory by text, specialty and distance from query.Origin.
func (s *DefaultDirectoryService) Search(ctx context.Context, query models.GeoQuery) ([]models.RankedResult, error) {
	if query.MaxDistanceKm < 0 {
		query.MaxDistanceKm = models.DefaultMaxDistanceKm
	}
	if strings.TrimSpace(query.Specialty) == "" {
		query.Specialty = models.SpecialtyAll
	}

	origin := "absent"
	if query.Origin != nil {
		origin = "present"
	}
	metrics.TherapistSearches.WithLabelValues(origin).Inc()

	therapists, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return geo.Filter(therapists, query), nil
}

func (s *DefaultDirectoryService) Specialties() []string {
	return append([]string(nil), specialties...)
}

func (s *DefaultDirectoryService) Get(ctx context.Context, id string) (*models.Therapist, error) {
	t, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Create adds a therapist and drops the cached directory.
func (s *DefaultDirectoryService) Create(ctx context.Context, t models.Therapist) (*models.Therapist, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return nil, ErrInvalidName
	}
	t.ID = uuid.New().String()
	if t.Specialties == nil {
		t.Specialties = []string{}
	}
	if err := s.Repo.Create(ctx, &t); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &t, nil
}

// Refresh reloads the directory from the repository into the cache.
func (s *DefaultDirectoryService) Refresh(ctx context.Context) (int, error) {
	therapists, err := s.Repo.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("refresh therapists: %w", err)
	}
	s.writeCache(ctx, therapists)
	return len(therapists), nil
}

// Seed stores the sample therapists and returns how many were added.
func (s *DefaultDirectoryService) Seed(ctx context.Context) (int, error) {
	n, err := s.seed(ctx)
	if err != nil {
		return n, err
	}
	s.invalidate(ctx)
	return n, nil
}

func (s *DefaultDirectoryService) seed(ctx context.Context) (int, error) {
	samples := SampleTherapists()
	for i := range samples {
		samples[i].ID = uuid.New().String()
		if err := s.Repo.Create(ctx, &samples[i]); err != nil {
			return i, fmt.Errorf("seed therapist %q: %w", samples[i].Name, err)
		}
	}
	s.Logger.Info("Seeded sample therapists", zap.Int("count", len(samples)))
	return len(samples), nil
}

func (s *DefaultDirectoryService) readCache(ctx context.Context) ([]models.Therapist, bool) {
	if s.Cache == nil {
		return nil, false
	}
	data, err := s.Cache.Get(ctx, utils.TherapistCacheKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		s.Logger.Warn("therapist cache read failed", zap.Error(err))
		return nil, false
	}
	var therapists []models.Therapist
	if err := json.Unmarshal(data, &therapists); err != nil {
		s.Logger.Warn("discarding corrupt therapist cache", zap.Error(err))
		return nil, false
	}
	if therapists == nil {
		therapists = []models.Therapist{}
	}
	return therapists, true
}

func (s *DefaultDirectoryService) writeCache(ctx context.Context, therapists []models.Therapist) {
	if s.Cache == nil {
		return
	}
	b, err := json.Marshal(therapists)
	if err != nil {
		s.Logger.Warn("failed to encode therapist cache", zap.Error(err))
		return
	}
	if err := s.Cache.Set(ctx, utils.TherapistCacheKey, b, s.TTL).Err(); err != nil {
		s.Logger.Warn("therapist cache write failed", zap.Error(err))
	}
}

func (s *DefaultDirectoryService) invalidate(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.TherapistCacheKey).Err(); err != nil {
		s.Logger.Warn("therapist cache invalidation failed", zap.Error(err))
	}
}
