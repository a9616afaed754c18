package models

import "time"

// MoodLabel is the emotional state detected in, or logged for, a user.
type MoodLabel string

const (
	MoodNeutral  MoodLabel = "neutral"
	MoodSad      MoodLabel = "sad"
	MoodAnxious  MoodLabel = "anxious"
	MoodStressed MoodLabel = "stressed"
	MoodAngry    MoodLabel = "angry"
	MoodHappy    MoodLabel = "happy"
	MoodTired    MoodLabel = "tired"
	MoodCrisis   MoodLabel = "crisis"

	// Labels only offered by the manual mood logger.
	MoodVeryHappy MoodLabel = "very_happy"
	MoodExcited   MoodLabel = "excited"
	MoodVerySad   MoodLabel = "very_sad"
)

// DetectableMoods lists every label the chat classifier can produce.
var DetectableMoods = []MoodLabel{
	MoodNeutral, MoodSad, MoodAnxious, MoodStressed, MoodAngry, MoodHappy, MoodTired, MoodCrisis,
}

// LoggableMoods lists the labels accepted in a mood journal entry.
var LoggableMoods = []MoodLabel{
	MoodVeryHappy, MoodHappy, MoodExcited, MoodNeutral, MoodAnxious,
	MoodStressed, MoodSad, MoodVerySad, MoodAngry, MoodTired,
}

// IsLoggable reports whether m may be stored in the mood journal.
func (m MoodLabel) IsLoggable() bool {
	for _, l := range LoggableMoods {
		if l == m {
			return true
		}
	}
	return false
}

// Trigger is a self-reported cause attached to a mood entry.
type Trigger string

const (
	TriggerWork          Trigger = "work"
	TriggerStudies       Trigger = "studies"
	TriggerRelationships Trigger = "relationships"
	TriggerFamily        Trigger = "family"
	TriggerHealth        Trigger = "health"
	TriggerFinances      Trigger = "finances"
	TriggerSocialMedia   Trigger = "social_media"
	TriggerOther         Trigger = "other"
)

var validTriggers = map[Trigger]bool{
	TriggerWork: true, TriggerStudies: true, TriggerRelationships: true, TriggerFamily: true,
	TriggerHealth: true, TriggerFinances: true, TriggerSocialMedia: true, TriggerOther: true,
}

// IsValid reports whether t is a known trigger.
func (t Trigger) IsValid() bool {
	return validTriggers[t]
}

// MoodEntry is a single journal record.
type MoodEntry struct {
	ID        string    `bson:"id" json:"id"`
	Mood      MoodLabel `bson:"mood" json:"mood"`
	Intensity int       `bson:"intensity" json:"intensity"` // 1..10
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Triggers  []Trigger `bson:"triggers,omitempty" json:"triggers,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_date"`
}
