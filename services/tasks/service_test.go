package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	memoryRepo "soulsync/database/repository/memory"
	"soulsync/models"
	"soulsync/services/mood"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func newTestService(gen mood.TextGenerator) (*DefaultTaskService, *memoryRepo.TaskStore, *memoryRepo.MoodStore) {
	repo := memoryRepo.NewTaskStore()
	moods := memoryRepo.NewMoodStore()
	svc := NewTaskService(repo, moods, gen, time.Second, nil)
	svc.Now = func() time.Time { return fixedNow }
	return svc, repo, moods
}

func TestCreateNormalisesTask(t *testing.T) {
	svc, _, _ := newTestService(nil)

	got, err := svc.Create(context.Background(), models.Task{
		Title:           "  Evening walk ",
		Category:        models.CategoryPhysical,
		DurationMinutes: 120,
		Completed:       true,
		AIGenerated:     true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Evening walk", got.Title)
	assert.Equal(t, models.DifficultyEasy, got.Difficulty)
	assert.Equal(t, 60, got.DurationMinutes)
	assert.False(t, got.Completed)
	assert.False(t, got.AIGenerated)
	assert.Equal(t, fixedNow, got.CreatedAt)
}

func TestCreateValidation(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	var verr *ValidationError
	_, err := svc.Create(ctx, models.Task{Title: " "})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)

	_, err = svc.Create(ctx, models.Task{Title: "x", Category: "cooking"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "category", verr.Field)

	_, err = svc.Create(ctx, models.Task{Title: "x", Difficulty: "extreme"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "difficulty", verr.Field)
}

func TestListSplitsAndFilters(t *testing.T) {
	svc, repo, _ := newTestService(nil)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Task{ID: "1", Title: "a", Category: models.CategoryCreative, CreatedAt: fixedNow.Add(-2 * time.Hour)}))
	require.NoError(t, repo.Create(ctx, &models.Task{ID: "2", Title: "b", Category: models.CategorySocial, Completed: true, CreatedAt: fixedNow.Add(-time.Hour)}))
	require.NoError(t, repo.Create(ctx, &models.Task{ID: "3", Title: "c", Category: models.CategoryCreative, CreatedAt: fixedNow}))

	all, err := svc.List(ctx, "all")
	require.NoError(t, err)
	require.Len(t, all.Pending, 2)
	assert.Equal(t, "3", all.Pending[0].ID)
	assert.Len(t, all.Completed, 1)

	creative, err := svc.List(ctx, "creative")
	require.NoError(t, err)
	assert.Len(t, creative.Pending, 2)
	assert.Empty(t, creative.Completed)
	assert.NotNil(t, creative.Completed)
}

func TestCompleteAndDelete(t *testing.T) {
	svc, repo, _ := newTestService(nil)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &models.Task{ID: "t1", Title: "stretch"}))

	done, err := svc.Complete(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)
	assert.Equal(t, fixedNow, *done.CompletedAt)

	_, err = svc.Complete(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(ctx, "t1"))
	assert.ErrorIs(t, svc.Delete(ctx, "t1"), ErrNotFound)
}

func TestGeneratePersonalized(t *testing.T) {
	var prompt string
	gen := mood.GeneratorFunc(func(_ context.Context, p string) (string, error) {
		prompt = p
		return "```json\n" + `{"tasks": [
			{"title": "Box breathing", "description": "4-4-4-4", "category": "Mindfulness", "difficulty": "EASY", "duration_minutes": 3, "mood_target": ["anxious"]},
			{"title": "Call a friend", "category": "social", "difficulty": "medium", "duration_minutes": 20.4},
			{"title": "Sketch your day", "category": "art", "difficulty": "legendary", "duration_minutes": 90}
		]}` + "\n```", nil
	})
	svc, repo, moods := newTestService(gen)
	ctx := context.Background()
	require.NoError(t, moods.Create(ctx, &models.MoodEntry{ID: "m", Mood: models.MoodAnxious, Intensity: 7, CreatedAt: fixedNow}))

	got, err := svc.GeneratePersonalized(ctx, models.TaskPreferences{DailyGoal: "sleep better"})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Contains(t, prompt, "Recent moods: anxious: 7/10")
	assert.Contains(t, prompt, "Support style preference: gentle and supportive")
	assert.Contains(t, prompt, "Daily goal: sleep better")

	assert.Equal(t, models.CategoryMindfulness, got[0].Category)
	assert.Equal(t, models.DifficultyEasy, got[0].Difficulty)
	assert.Equal(t, 5, got[0].DurationMinutes)
	assert.Equal(t, []string{"anxious"}, got[0].MoodTarget)

	assert.Equal(t, models.CategorySocial, got[1].Category)
	assert.Equal(t, 20, got[1].DurationMinutes)

	assert.Equal(t, models.CategoryMindfulness, got[2].Category)
	assert.Equal(t, models.DifficultyEasy, got[2].Difficulty)
	assert.Equal(t, 60, got[2].DurationMinutes)

	for _, task := range got {
		assert.True(t, task.AIGenerated)
		assert.NotEmpty(t, task.ID)
	}

	stored, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestGeneratePersonalizedFailures(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
	}{
		{"generator error", "", errors.New("quota")},
		{"not json", "Here are some tasks you could try!", nil},
		{"missing tasks key", `{"items": []}`, nil},
		{"empty list", `{"tasks": []}`, nil},
		{"wrong types", `{"tasks": [{"title": 5}]}`, nil},
		{"blank titles", `{"tasks": [{"title": "   "}]}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := mood.GeneratorFunc(func(context.Context, string) (string, error) { return tt.reply, tt.err })
			svc, repo, _ := newTestService(gen)

			_, err := svc.GeneratePersonalized(context.Background(), models.TaskPreferences{})
			assert.ErrorIs(t, err, ErrGenerationFailed)

			stored, _ := repo.List(context.Background())
			assert.Empty(t, stored)
		})
	}
}

func TestGeneratePersonalizedWithoutGenerator(t *testing.T) {
	svc, _, _ := newTestService(nil)
	_, err := svc.GeneratePersonalized(context.Background(), models.TaskPreferences{})
	assert.ErrorIs(t, err, ErrGenerationUnavailable)
}

func TestBuildTaskPromptWithoutMoods(t *testing.T) {
	p := BuildTaskPrompt(nil, models.TaskPreferences{SupportStyle: "direct"})
	assert.Contains(t, p, "Recent moods: No recent mood data")
	assert.Contains(t, p, "Support style preference: direct")
	assert.Contains(t, p, "Daily goal: general wellness and stress reduction")
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("  {\"a\":1}  "))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json {\"a\":1}```"))
}
