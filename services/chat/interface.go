package chat

import (
	"context"
	"time"

	messageRepo "soulsync/database/repository/message"
	moodRepo "soulsync/database/repository/mood"
	"soulsync/models"
	"soulsync/services/mood"

	"go.uber.org/zap"
)

type ChatService interface {
	NewSessionID() string
	SendMessage(ctx context.Context, sessionID, text string) (*models.ChatTurn, error)
	History(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	Suggestions(m models.MoodLabel) *models.MoodSuggestion
	QuickReplies() []models.QuickReply
}

// ContextStore keeps per-session conversation state between turns.
type ContextStore interface {
	Get(ctx context.Context, sessionID string) (*models.SessionContext, error)
	Set(ctx context.Context, sessionID string, sc *models.SessionContext) error
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Messages messageRepo.MessageRepository
	Moods    moodRepo.MoodRepository
	Contexts ContextStore // optional
	Selector *mood.Selector

	// GenerationTimeout bounds each reply generation call. Zero means no bound.
	GenerationTimeout time.Duration
	Logger            *zap.Logger
	Now               func() time.Time

	ids *idSource
}

func NewChatService(
	messages messageRepo.MessageRepository,
	moods moodRepo.MoodRepository,
	contexts ContextStore,
	gen mood.TextGenerator,
	generationTimeout time.Duration,
	logger *zap.Logger,
) *DefaultChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultChatService{
		Messages:          messages,
		Moods:             moods,
		Contexts:          contexts,
		Selector:          mood.NewSelector(gen, logger),
		GenerationTimeout: generationTimeout,
		Logger:            logger,
		Now:               time.Now,
		ids:               newIDSource(),
	}
}
