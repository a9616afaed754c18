package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"soulsync/database"
	"soulsync/models"

	"github.com/google/uuid"
)

const (
	minDuration     = 5
	maxDuration     = 60
	defaultDuration = 15
)

// List returns tasks newest first, optionally narrowed to one category.
// An empty category or "all" disables the filter.
func (s *DefaultTaskService) List(ctx context.Context, category string) (*TaskList, error) {
	all, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	out := &TaskList{Pending: []models.Task{}, Completed: []models.Task{}}
	for _, t := range all {
		if category != "" && category != "all" && string(t.Category) != category {
			continue
		}
		if t.Completed {
			out.Completed = append(out.Completed, t)
		} else {
			out.Pending = append(out.Pending, t)
		}
	}
	return out, nil
}

// Create normalises and stores a task entered by the user.
func (s *DefaultTaskService) Create(ctx context.Context, task models.Task) (*models.Task, error) {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return nil, &ValidationError{Field: "title", Message: "is required"}
	}
	if task.Category != "" && !isCategory(task.Category) {
		return nil, &ValidationError{Field: "category", Message: fmt.Sprintf("unknown category %q", task.Category)}
	}
	if task.Difficulty != "" && !isDifficulty(task.Difficulty) {
		return nil, &ValidationError{Field: "difficulty", Message: fmt.Sprintf("unknown difficulty %q", task.Difficulty)}
	}

	s.normalise(&task)
	task.AIGenerated = false
	task.Completed = false
	task.CompletedAt = nil

	if err := s.Repo.Create(ctx, &task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return &task, nil
}

// Complete marks a task done and returns it.
func (s *DefaultTaskService) Complete(ctx context.Context, id string) (*models.Task, error) {
	if err := s.Repo.MarkCompleted(ctx, id, s.Now().UTC()); err != nil {
		return nil, mapRepoErr(err)
	}
	t, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return t, nil
}

func (s *DefaultTaskService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return mapRepoErr(err)
	}
	return nil
}

// normalise fills defaults, clamps the duration and stamps identity fields.
func (s *DefaultTaskService) normalise(t *models.Task) {
	t.Category = normaliseCategory(string(t.Category))
	t.Difficulty = normaliseDifficulty(string(t.Difficulty))
	t.DurationMinutes = clampDuration(t.DurationMinutes)
	t.ID = uuid.New().String()
	t.CreatedAt = s.Now().UTC()
}

func mapRepoErr(err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func isCategory(c models.TaskCategory) bool {
	for _, known := range models.TaskCategories {
		if c == known {
			return true
		}
	}
	return false
}

func isDifficulty(d models.TaskDifficulty) bool {
	switch d {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		return true
	}
	return false
}

// normaliseCategory maps loose spellings such as "Self Care" onto a known
// category, defaulting to mindfulness.
func normaliseCategory(raw string) models.TaskCategory {
	c := strings.ToLower(strings.TrimSpace(raw))
	c = strings.NewReplacer(" ", "_", "-", "_").Replace(c)
	if isCategory(models.TaskCategory(c)) {
		return models.TaskCategory(c)
	}
	return models.CategoryMindfulness
}

func normaliseDifficulty(raw string) models.TaskDifficulty {
	d := models.TaskDifficulty(strings.ToLower(strings.TrimSpace(raw)))
	if isDifficulty(d) {
		return d
	}
	return models.DifficultyEasy
}

func clampDuration(minutes int) int {
	switch {
	case minutes == 0:
		return defaultDuration
	case minutes < minDuration:
		return minDuration
	case minutes > maxDuration:
		return maxDuration
	}
	return minutes
}
