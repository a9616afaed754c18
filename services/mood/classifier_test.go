package mood

import (
	"testing"

	"soulsync/models"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.MoodLabel
	}{
		{"empty", "", models.MoodNeutral},
		{"no keywords", "what should I cook tonight", models.MoodNeutral},
		{"crisis", "I want to end it all", models.MoodCrisis},
		{"crisis beats happy", "I'm happy but I want to hurt myself", models.MoodCrisis},
		{"crisis beats sad", "so sad I think about suicide", models.MoodCrisis},
		{"case insensitive", "I Feel SAD", models.MoodSad},
		{"sad before anxious", "I'm sad and anxious", models.MoodSad},
		{"stress substring is anxious", "I'm so stressed about exams", models.MoodAnxious},
		{"overwhelmed is anxious", "feeling overwhelmed", models.MoodAnxious},
		{"pressure is stressed", "so much pressure at work", models.MoodStressed},
		{"tired is stressed", "I'm tired", models.MoodStressed},
		{"sleepy is tired", "kinda sleepy today", models.MoodTired},
		{"angry", "I'm furious with my roommate", models.MoodAngry},
		{"happy", "I had a great day", models.MoodHappy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	text := "worried and nervous, also a bit tired"
	first := Classify(text)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Classify(text))
	}
}

func TestClassifyAlwaysReturnsDetectableLabel(t *testing.T) {
	inputs := []string{"", "hello", "die", "joy", "   ", "🐼", "I'm drained"}
	for _, in := range inputs {
		assert.Contains(t, models.DetectableMoods, Classify(in), "input %q", in)
	}
}
