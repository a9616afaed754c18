package models

import "time"

type TaskCategory string

const (
	CategoryMindfulness TaskCategory = "mindfulness"
	CategoryPhysical    TaskCategory = "physical"
	CategoryCreative    TaskCategory = "creative"
	CategorySocial      TaskCategory = "social"
	CategoryLearning    TaskCategory = "learning"
	CategorySelfCare    TaskCategory = "self_care"
)

// TaskCategories is the display order of categories.
var TaskCategories = []TaskCategory{
	CategoryMindfulness, CategoryPhysical, CategoryCreative, CategorySocial, CategoryLearning, CategorySelfCare,
}

type TaskDifficulty string

const (
	DifficultyEasy   TaskDifficulty = "easy"
	DifficultyMedium TaskDifficulty = "medium"
	DifficultyHard   TaskDifficulty = "hard"
)

// Task is a wellness activity suggested to the user.
type Task struct {
	ID              string         `bson:"id" json:"id"`
	Title           string         `bson:"title" json:"title" binding:"required"`
	Description     string         `bson:"description" json:"description"`
	Category        TaskCategory   `bson:"category" json:"category"`
	Difficulty      TaskDifficulty `bson:"difficulty" json:"difficulty"`
	DurationMinutes int            `bson:"duration_minutes" json:"duration_minutes"`
	MoodTarget      []string       `bson:"mood_target,omitempty" json:"mood_target,omitempty"`
	AIGenerated     bool           `bson:"ai_generated" json:"ai_generated"`
	Completed       bool           `bson:"completed" json:"completed"`
	CreatedAt       time.Time      `bson:"created_at" json:"created_date"`
	CompletedAt     *time.Time     `bson:"completed_at,omitempty" json:"completed_date,omitempty"`
}

// TaskPreferences steer personalised task generation.
type TaskPreferences struct {
	SupportStyle string `json:"supportStyle"`
	DailyGoal    string `json:"dailyGoal"`
}
