package mood

import (
	"time"

	"soulsync/models"

	"github.com/google/uuid"
)

const (
	// Intensities recorded for chat-detected moods. These are fixed values,
	// not measurements.
	crisisIntensity  = 1
	defaultIntensity = 5
)

// MoodEntryFor builds the journal entry to record after a chat message was
// classified. It returns nil for neutral messages.
func MoodEntryFor(mood models.MoodLabel, notes string) *models.MoodEntry {
	if mood == models.MoodNeutral || mood == "" {
		return nil
	}
	entry := &models.MoodEntry{
		ID:        uuid.New().String(),
		Mood:      mood,
		Intensity: defaultIntensity,
		Notes:     notes,
		Triggers:  []models.Trigger{models.TriggerOther},
		CreatedAt: time.Now().UTC(),
	}
	if mood == models.MoodCrisis {
		entry.Mood = models.MoodVerySad
		entry.Intensity = crisisIntensity
	}
	return entry
}
