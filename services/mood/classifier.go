// Package mood detects a user's mood from chat text and picks the companion's reply.
package mood

import (
	"strings"

	"soulsync/models"
)

// rule maps a mood to the substrings that trigger it.
type rule struct {
	Label    models.MoodLabel
	Keywords []string
}

// crisisRule is evaluated before everything else and cannot be overridden.
var crisisRule = rule{
	Label:    models.MoodCrisis,
	Keywords: []string{"suicide", "kill myself", "end it all", "hurt myself", "self harm", "die", "killing"},
}

// moodRules are checked in order after crisis; the first match wins.
// Keywords overlap between rules, so the order is significant.
var moodRules = []rule{
	{models.MoodSad, []string{"sad", "depressed", "down", "upset", "crying", "lonely", "empty", "hopeless", "worthless"}},
	{models.MoodAnxious, []string{"anxious", "worried", "nervous", "panic", "scared", "afraid", "stress", "overwhelmed"}},
	{models.MoodStressed, []string{"stressed", "overwhelmed", "pressure", "busy", "exhausted", "tired"}},
	{models.MoodAngry, []string{"angry", "mad", "furious", "annoyed", "frustrated", "hate"}},
	{models.MoodHappy, []string{"happy", "good", "great", "amazing", "excited", "joy", "wonderful"}},
	{models.MoodTired, []string{"tired", "sleepy", "exhausted", "drained", "worn out", "fatigued"}},
}

func (r rule) matches(lower string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Classify returns the mood expressed in text. It is total and deterministic:
// empty or unmatched text is neutral.
func Classify(text string) models.MoodLabel {
	lower := strings.ToLower(text)

	if crisisRule.matches(lower) {
		return models.MoodCrisis
	}
	for _, r := range moodRules {
		if r.matches(lower) {
			return r.Label
		}
	}
	return models.MoodNeutral
}
