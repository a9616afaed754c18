package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"soulsync/models"

	"go.uber.org/zap"
)

const (
	generationMoodWindow = 10
	defaultSupportStyle  = "gentle and supportive"
	defaultDailyGoal     = "general wellness and stress reduction"
)

type generatedTask struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Difficulty      string   `json:"difficulty"`
	DurationMinutes float64  `json:"duration_minutes"`
	MoodTarget      []string `json:"mood_target"`
}

type generatedTasks struct {
	Tasks []generatedTask `json:"tasks"`
}

// BuildTaskPrompt asks for five tasks tailored to the recent moods and preferences.
func BuildTaskPrompt(recent []models.MoodEntry, prefs models.TaskPreferences) string {
	moodContext := "No recent mood data"
	if len(recent) > 0 {
		parts := make([]string, 0, len(recent))
		for _, e := range recent {
			parts = append(parts, fmt.Sprintf("%s: %d/10", e.Mood, e.Intensity))
		}
		moodContext = strings.Join(parts, ", ")
	}
	style := strings.TrimSpace(prefs.SupportStyle)
	if style == "" {
		style = defaultSupportStyle
	}
	goal := strings.TrimSpace(prefs.DailyGoal)
	if goal == "" {
		goal = defaultDailyGoal
	}

	return fmt.Sprintf(`Generate 5 personalized mental health tasks for a Gen Z user in India based on:
Recent moods: %s
Support style preference: %s
Daily goal: %s

Create tasks that are:
- Specific and actionable
- Culturally relevant for India
- Varied in categories (mindfulness, physical, creative, social, learning, self_care)
- 5-60 minutes duration
- Include difficulty levels (easy, medium, hard)
- Suitable for students and working professionals

Respond with only a JSON object of the form {"tasks": [...]} where each task is:
{
  "title": "string",
  "description": "string",
  "category": "mindfulness|physical|creative|social|learning|self_care",
  "difficulty": "easy|medium|hard",
  "duration_minutes": number,
  "mood_target": ["mood1", "mood2"]
}`, moodContext, style, goal)
}

// GeneratePersonalized asks the text generator for tasks and stores them.
// Any generator or format problem yields ErrGenerationFailed and nothing is stored.
func (s *DefaultTaskService) GeneratePersonalized(ctx context.Context, prefs models.TaskPreferences) ([]models.Task, error) {
	if s.Generator == nil {
		return nil, ErrGenerationUnavailable
	}

	recent, err := s.Moods.ListRecent(ctx, generationMoodWindow)
	if err != nil {
		s.Logger.Warn("could not load recent moods for task generation", zap.Error(err))
		recent = nil
	}

	genCtx := ctx
	if s.GenerationTimeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.GenerationTimeout)
		defer cancel()
	}
	raw, err := s.Generator.GenerateContent(genCtx, BuildTaskPrompt(recent, prefs))
	if err != nil {
		s.Logger.Error("task generation failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	tasks, err := s.parseGenerated(raw)
	if err != nil {
		s.Logger.Error("task generation returned unusable output", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if err := s.Repo.CreateMany(ctx, tasks); err != nil {
		return nil, fmt.Errorf("store generated tasks: %w", err)
	}
	return tasks, nil
}

func (s *DefaultTaskService) parseGenerated(raw string) ([]models.Task, error) {
	doc := stripCodeFence(raw)
	if err := validateGenerated(doc); err != nil {
		return nil, err
	}
	var parsed generatedTasks
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		return nil, err
	}

	out := make([]models.Task, 0, len(parsed.Tasks))
	for _, g := range parsed.Tasks {
		t := models.Task{
			Title:           strings.TrimSpace(g.Title),
			Description:     strings.TrimSpace(g.Description),
			Category:        models.TaskCategory(g.Category),
			Difficulty:      models.TaskDifficulty(g.Difficulty),
			DurationMinutes: int(math.Round(g.DurationMinutes)),
			MoodTarget:      g.MoodTarget,
			AIGenerated:     true,
		}
		if t.Title == "" {
			continue
		}
		s.normalise(&t)
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no usable tasks in reply")
	}
	return out, nil
}
