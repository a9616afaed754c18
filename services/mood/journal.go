package mood

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	messageRepo "soulsync/database/repository/message"
	moodRepo "soulsync/database/repository/mood"
	"soulsync/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultRecentLimit  = 10
	maxRecentLimit      = 100
	dashboardMoodLimit  = 50
	dashboardChatLimit  = 20
	dashboardDays       = 7
	neutralDayIntensity = 5.0
)

// Journal records and summarises mood entries.
type Journal struct {
	Moods    moodRepo.MoodRepository
	Messages messageRepo.MessageRepository
	Now      func() time.Time
}

func NewJournal(moods moodRepo.MoodRepository, messages messageRepo.MessageRepository) *Journal {
	return &Journal{Moods: moods, Messages: messages, Now: time.Now}
}

// LogMood validates and stores a manual entry.
func (j *Journal) LogMood(ctx context.Context, entry models.MoodEntry) (*models.MoodEntry, error) {
	if !entry.Mood.IsLoggable() {
		return nil, newValidationError("mood", fmt.Sprintf("unknown mood %q", entry.Mood))
	}
	if entry.Intensity < 1 || entry.Intensity > 10 {
		return nil, newValidationError("intensity", "must be between 1 and 10")
	}
	for _, t := range entry.Triggers {
		if !t.IsValid() {
			return nil, newValidationError("triggers", fmt.Sprintf("unknown trigger %q", t))
		}
	}
	entry.Notes = strings.TrimSpace(entry.Notes)
	entry.ID = uuid.New().String()
	entry.CreatedAt = j.Now().UTC()

	if err := j.Moods.Create(ctx, &entry); err != nil {
		return nil, fmt.Errorf("log mood: %w", err)
	}
	return &entry, nil
}

// RecentMoods returns up to limit entries, newest first.
func (j *Journal) RecentMoods(ctx context.Context, limit int) ([]models.MoodEntry, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	entries, err := j.Moods.ListRecent(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("recent moods: %w", err)
	}
	return entries, nil
}

// Recommendation suggests a focus area from the ten most recent entries.
func (j *Journal) Recommendation(ctx context.Context) (Recommendation, error) {
	entries, err := j.RecentMoods(ctx, defaultRecentLimit)
	if err != nil {
		return Recommendation{}, err
	}
	return RecommendationFor(entries), nil
}

// MoodCount is one slice of the mood distribution chart.
type MoodCount struct {
	Mood  models.MoodLabel `json:"mood"`
	Name  string           `json:"name"`
	Count int              `json:"value"`
	Color string           `json:"fill"`
}

// DayPoint is the average intensity logged on one day.
type DayPoint struct {
	Date  string  `json:"date"`
	Day   string  `json:"day"`
	Mood  float64 `json:"mood"`
	Count int     `json:"count"`
}

// Dashboard summarises recent mood entries and chat activity.
type Dashboard struct {
	TotalMoods       int                  `json:"totalMoods"`
	AvgIntensity     float64              `json:"averageIntensity"`
	Distribution     []MoodCount          `json:"distribution"`
	LastSevenDays    []DayPoint           `json:"lastSevenDays"`
	RecentMessages   []models.ChatMessage `json:"recentMessages"`
	ChatMessageCount int                  `json:"chatMessages"`
}

// Dashboard loads recent moods and user messages concurrently and aggregates them.
func (j *Journal) Dashboard(ctx context.Context) (*Dashboard, error) {
	var (
		entries  []models.MoodEntry
		messages []models.ChatMessage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = j.Moods.ListRecent(gctx, dashboardMoodLimit)
		return err
	})
	g.Go(func() error {
		var err error
		messages, err = j.Messages.List(gctx, models.MessageFilter{
			Sender: models.SenderUser,
			Limit:  dashboardChatLimit,
			Newest: true,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	return &Dashboard{
		TotalMoods:       len(entries),
		AvgIntensity:     averageIntensity(entries),
		Distribution:     distribution(entries),
		LastSevenDays:    lastDays(entries, j.Now().UTC(), dashboardDays),
		RecentMessages:   messages,
		ChatMessageCount: len(messages),
	}, nil
}

func averageIntensity(entries []models.MoodEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += e.Intensity
	}
	return roundTenth(float64(sum) / float64(len(entries)))
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// distribution counts entries per mood, in order of first appearance.
func distribution(entries []models.MoodEntry) []MoodCount {
	counts := []MoodCount{}
	index := map[models.MoodLabel]int{}
	for _, e := range entries {
		i, ok := index[e.Mood]
		if !ok {
			i = len(counts)
			index[e.Mood] = i
			counts = append(counts, MoodCount{
				Mood:  e.Mood,
				Name:  strings.Replace(string(e.Mood), "_", " ", 1),
				Color: ColorFor(e.Mood),
			})
		}
		counts[i].Count++
	}
	return counts
}

// lastDays averages intensity per UTC day for the n days ending today.
// Days without entries report the neutral intensity.
func lastDays(entries []models.MoodEntry, now time.Time, n int) []DayPoint {
	points := make([]DayPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		key := day.Format("2006-01-02")

		sum, count := 0, 0
		for _, e := range entries {
			if e.CreatedAt.UTC().Format("2006-01-02") == key {
				sum += e.Intensity
				count++
			}
		}
		avg := neutralDayIntensity
		if count > 0 {
			avg = float64(sum) / float64(count)
		}
		points = append(points, DayPoint{
			Date:  key,
			Day:   day.Format("Mon"),
			Mood:  roundTenth(avg),
			Count: count,
		})
	}
	return points
}
