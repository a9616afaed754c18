package tasks

import (
	"context"
	"time"

	moodRepo "soulsync/database/repository/mood"
	taskRepo "soulsync/database/repository/task"
	"soulsync/models"
	"soulsync/services/mood"

	"go.uber.org/zap"
)

type TaskService interface {
	List(ctx context.Context, category string) (*TaskList, error)
	Create(ctx context.Context, task models.Task) (*models.Task, error)
	Complete(ctx context.Context, id string) (*models.Task, error)
	Delete(ctx context.Context, id string) error
	GeneratePersonalized(ctx context.Context, prefs models.TaskPreferences) ([]models.Task, error)
}

// TaskList splits tasks into the two columns shown to the user.
type TaskList struct {
	Pending   []models.Task `json:"pending"`
	Completed []models.Task `json:"completed"`
}

type DefaultTaskService struct {
	Repo      taskRepo.TaskRepository
	Moods     moodRepo.MoodRepository
	Generator mood.TextGenerator // nil disables generation

	GenerationTimeout time.Duration
	Logger            *zap.Logger
	Now               func() time.Time
}

func NewTaskService(repo taskRepo.TaskRepository, moods moodRepo.MoodRepository, gen mood.TextGenerator, timeout time.Duration, logger *zap.Logger) *DefaultTaskService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultTaskService{
		Repo:              repo,
		Moods:             moods,
		Generator:         gen,
		GenerationTimeout: timeout,
		Logger:            logger,
		Now:               time.Now,
	}
}
