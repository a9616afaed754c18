// Package memoryRepo keeps every repository in process memory. It backs local
// runs with DATABASE_URL=memory:// and the service tests.
package memoryRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"soulsync/database"
	"soulsync/models"
)

// MessageStore implements messageRepo.MessageRepository.
type MessageStore struct {
	mu       sync.RWMutex
	messages []models.ChatMessage
	// Err, when set, is returned by every call.
	Err error
}

func NewMessageStore() *MessageStore { return &MessageStore{} }

func (s *MessageStore) Create(_ context.Context, msg *models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.messages = append(s.messages, *msg)
	return nil
}

func (s *MessageStore) List(_ context.Context, filter models.MessageFilter) ([]models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}

	out := []models.ChatMessage{}
	for _, m := range s.messages {
		if filter.SessionID != "" && m.SessionID != filter.SessionID {
			continue
		}
		if filter.Sender != "" && m.Sender != filter.Sender {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if filter.Newest {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	if filter.Limit > 0 && int64(len(out)) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// MoodStore implements moodRepo.MoodRepository.
type MoodStore struct {
	mu      sync.RWMutex
	entries []models.MoodEntry
	Err     error
}

func NewMoodStore() *MoodStore { return &MoodStore{} }

func (s *MoodStore) Create(_ context.Context, entry *models.MoodEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *MoodStore) ListRecent(_ context.Context, limit int64) ([]models.MoodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := append([]models.MoodEntry{}, s.entries...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

// TaskStore implements taskRepo.TaskRepository.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []models.Task
	Err   error
}

func NewTaskStore() *TaskStore { return &TaskStore{} }

func (s *TaskStore) Create(_ context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.tasks = append(s.tasks, *task)
	return nil
}

func (s *TaskStore) CreateMany(_ context.Context, tasks []models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.tasks = append(s.tasks, tasks...)
	return nil
}

func (s *TaskStore) GetByID(_ context.Context, id string) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			t := s.tasks[i]
			return &t, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *TaskStore) List(_ context.Context) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := append([]models.Task{}, s.tasks...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *TaskStore) MarkCompleted(_ context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = true
			s.tasks[i].CompletedAt = &at
			return nil
		}
	}
	return database.ErrNotFound
}

func (s *TaskStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return database.ErrNotFound
}

// TherapistStore implements therapistRepo.TherapistRepository.
type TherapistStore struct {
	mu         sync.RWMutex
	therapists []models.Therapist
	Err        error
	// GetAllCalls counts directory loads, for cache assertions.
	GetAllCalls int
}

func NewTherapistStore(seed ...models.Therapist) *TherapistStore {
	return &TherapistStore{therapists: append([]models.Therapist{}, seed...)}
}

func (s *TherapistStore) GetByID(_ context.Context, id string) (*models.Therapist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.therapists {
		if s.therapists[i].ID == id {
			t := s.therapists[i]
			return &t, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *TherapistStore) GetAll(_ context.Context) ([]models.Therapist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.GetAllCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]models.Therapist{}, s.therapists...), nil
}

func (s *TherapistStore) Create(_ context.Context, therapist *models.Therapist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.therapists = append(s.therapists, *therapist)
	return nil
}

func (s *TherapistStore) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	n := int64(len(s.therapists))
	s.therapists = nil
	return n, nil
}
