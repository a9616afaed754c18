package mood

import "soulsync/models"

var moodSuggestions = map[models.MoodLabel]models.MoodSuggestion{
	models.MoodSad: {
		Title: "Feeling down? Let's lift your spirits 🌈",
		Suggestions: []models.SuggestionItem{
			{Icon: "music", Text: "Listen to uplifting music", Color: "from-pink-500 to-red-500"},
			{Icon: "book-open", Text: "Try journaling your thoughts", Color: "from-blue-500 to-purple-500"},
			{Icon: "coffee", Text: "Make your favorite warm drink", Color: "from-orange-500 to-red-500"},
		},
	},
	models.MoodAnxious: {
		Title: "Let's calm those nerves together 🌸",
		Suggestions: []models.SuggestionItem{
			{Icon: "sparkles", Text: "Try 5-minute breathing exercise", Color: "from-green-500 to-blue-500"},
			{Icon: "music", Text: "Play calming nature sounds", Color: "from-blue-500 to-cyan-500"},
			{Icon: "coffee", Text: "Ground yourself with tea", Color: "from-purple-500 to-pink-500"},
		},
	},
	models.MoodStressed: {
		Title: "Time to decompress 🌿",
		Suggestions: []models.SuggestionItem{
			{Icon: "sparkles", Text: "5-minute meditation", Color: "from-green-500 to-emerald-500"},
			{Icon: "music", Text: "Lo-fi study beats", Color: "from-purple-500 to-blue-500"},
			{Icon: "book-open", Text: "Write down your worries", Color: "from-orange-500 to-yellow-500"},
		},
	},
	models.MoodHappy: {
		Title: "Love the positive vibes! ✨",
		Suggestions: []models.SuggestionItem{
			{Icon: "music", Text: "Dance to your favorite song", Color: "from-yellow-500 to-orange-500"},
			{Icon: "book-open", Text: "Write about what made you happy", Color: "from-pink-500 to-purple-500"},
			{Icon: "sparkles", Text: "Share the joy with a friend", Color: "from-blue-500 to-green-500"},
		},
	},
}

// SuggestionsFor returns the quick-suggestion card for mood, or nil when the
// mood has none.
func SuggestionsFor(mood models.MoodLabel) *models.MoodSuggestion {
	s, ok := moodSuggestions[mood]
	if !ok {
		return nil
	}
	s.Suggestions = append([]models.SuggestionItem(nil), s.Suggestions...)
	return &s
}

var quickReplies = []models.QuickReply{
	{Text: "I'm feeling overwhelmed", Icon: "😰"},
	{Text: "I had a good day", Icon: "😊"},
	{Text: "I'm anxious about something", Icon: "😟"},
	{Text: "I need motivation", Icon: "💪"},
	{Text: "I'm feeling sad", Icon: "😢"},
	{Text: "Can you suggest some music?", Icon: "🎵"},
}

// QuickReplies returns the starter prompts offered in an empty chat.
func QuickReplies() []models.QuickReply {
	return append([]models.QuickReply(nil), quickReplies...)
}

// Colors used when charting mood entries.
var moodColors = map[models.MoodLabel]string{
	models.MoodVeryHappy: "#10B981",
	models.MoodHappy:     "#34D399",
	models.MoodNeutral:   "#6B7280",
	models.MoodSad:       "#F59E0B",
	models.MoodVerySad:   "#EF4444",
	models.MoodAnxious:   "#8B5CF6",
	models.MoodStressed:  "#F97316",
	models.MoodAngry:     "#DC2626",
	models.MoodExcited:   "#06B6D4",
	models.MoodTired:     "#64748B",
}

const fallbackColor = "#6B7280"

// ColorFor returns the chart colour for mood.
func ColorFor(mood models.MoodLabel) string {
	if c, ok := moodColors[mood]; ok {
		return c
	}
	return fallbackColor
}

// Recommendation is the focus area suggested from recent moods.
type Recommendation struct {
	RecentMood   models.MoodLabel `json:"recentMood,omitempty"`
	Focus        string           `json:"focus"`
	Color        string           `json:"color"`
	Activities   []string         `json:"activities"`
	AvgIntensity float64          `json:"avgIntensity"`
}

type focusArea struct {
	Focus      string
	Color      string
	Activities []string
}

var focusAreas = map[models.MoodLabel]focusArea{
	models.MoodSad:      {"Gentle mood lifting activities", "from-blue-500 to-cyan-500", []string{"Creative expression", "Gentle movement", "Connection with others"}},
	models.MoodAnxious:  {"Calming and grounding practices", "from-purple-500 to-indigo-500", []string{"Mindfulness meditation", "Breathing exercises", "Progressive relaxation"}},
	models.MoodStressed: {"Stress reduction and relaxation", "from-orange-500 to-red-500", []string{"Time management", "Physical exercise", "Mindful breaks"}},
	models.MoodHappy:    {"Maintaining positive momentum", "from-green-500 to-emerald-500", []string{"Gratitude practice", "Social connection", "Creative pursuits"}},
	models.MoodNeutral:  {"General wellness building", "from-gray-500 to-gray-600", []string{"Habit building", "Learning new skills", "Self-care routines"}},
}

// RecommendationFor derives a focus area from entries ordered newest first.
func RecommendationFor(entries []models.MoodEntry) Recommendation {
	var recent models.MoodLabel
	if len(entries) > 0 {
		recent = entries[0].Mood
	}
	area, ok := focusAreas[recent]
	if !ok {
		area = focusAreas[models.MoodNeutral]
	}
	return Recommendation{
		RecentMood:   recent,
		Focus:        area.Focus,
		Color:        area.Color,
		Activities:   append([]string(nil), area.Activities...),
		AvgIntensity: averageIntensity(entries),
	}
}
