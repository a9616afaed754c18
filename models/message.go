package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser  Sender = "user"
	SenderAgent Sender = "agent"
)

// UnmarshalJSON accepts "panda" as an alias of the agent sender.
func (s *Sender) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch raw {
	case "user":
		*s = SenderUser
	case "agent", "panda":
		*s = SenderAgent
	default:
		return fmt.Errorf("unknown sender %q", raw)
	}
	return nil
}

// ChatMessage is one persisted chat turn. Messages are immutable once stored.
type ChatMessage struct {
	ID           string     `bson:"id" json:"id"`
	SessionID    string     `bson:"session_id" json:"session_id"`
	Text         string     `bson:"message" json:"message"`
	Sender       Sender     `bson:"sender" json:"sender"`
	DetectedMood *MoodLabel `bson:"mood_detected,omitempty" json:"mood_detected,omitempty"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_date"`
}

// MessageFilter narrows a message listing. Zero values match everything.
type MessageFilter struct {
	SessionID string
	Sender    Sender
	Limit     int64
	// Newest lists most recent first instead of chronological order.
	Newest bool
}

// ResponseBundle is the companion's reply for a detected mood.
type ResponseBundle struct {
	MessageText      string   `json:"message"`
	IsCrisis         bool     `json:"isCrisis"`
	MusicSuggestions []string `json:"musicSuggestions,omitempty"`
}
