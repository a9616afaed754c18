package models

import "time"

// SessionContext is the short-lived state kept for a chat session.
type SessionContext struct {
	LastMood      MoodLabel `json:"lastMood"`
	Turns         int       `json:"turns"`
	CrisisFlagged bool      `json:"crisisFlagged"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ChatRequest is the payload for sending a chat message.
type ChatRequest struct {
	Text string `json:"text" binding:"required"`
}

// ChatTurn is the result of one user message and the companion's reply.
type ChatTurn struct {
	UserMessage         ChatMessage     `json:"userMessage"`
	Reply               ChatMessage     `json:"reply"`
	Mood                MoodLabel       `json:"mood"`
	Bundle              ResponseBundle  `json:"bundle"`
	ShowCrisisResources bool            `json:"showCrisisResources"`
	Suggestions         *MoodSuggestion `json:"suggestions,omitempty"`
}

// MoodSuggestion is a quick-suggestion card shown under the chat.
type MoodSuggestion struct {
	Title       string           `json:"title"`
	Suggestions []SuggestionItem `json:"suggestions"`
}

type SuggestionItem struct {
	Icon  string `json:"icon"`
	Text  string `json:"text"`
	Color string `json:"color"`
}

// QuickReply is a starter prompt offered in an empty chat.
type QuickReply struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}
