package chat

import (
	"context"
	"fmt"
	"strings"

	"soulsync/metrics"
	"soulsync/models"
	"soulsync/services/mood"

	"go.uber.org/zap"
)

func (s *DefaultChatService) NewSessionID() string {
	return newSessionID()
}

// SendMessage stores the user's message, classifies it and returns the
// companion's reply. Storage failures are logged and never fail the turn.
// If the reply cannot be produced at all, the turn carries the generic
// trouble-connecting message instead.
func (s *DefaultChatService) SendMessage(ctx context.Context, sessionID, text string) (turn *models.ChatTurn, err error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrMissingSession
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}
	logger := s.Logger.With(zap.String("sessionID", sessionID))

	userMsg := s.newMessage(sessionID, text, models.SenderUser, nil)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("chat pipeline panicked", zap.Any("panic", r))
			turn, err = s.troubleTurn(sessionID, userMsg), nil
		}
	}()

	s.persistMessage(ctx, logger, userMsg)

	detected := mood.Classify(text)
	metrics.MoodsClassified.WithLabelValues(string(detected)).Inc()

	if ctx.Err() != nil {
		logger.Warn("request cancelled before a reply was produced", zap.Error(ctx.Err()))
		return s.troubleTurn(sessionID, userMsg), nil
	}

	bundle := s.selectResponse(ctx, detected, text)

	reply := s.newMessage(sessionID, bundle.MessageText, models.SenderAgent, &detected)
	s.persistMessage(ctx, logger, reply)

	if entry := mood.MoodEntryFor(detected, text); entry != nil {
		if err := s.Moods.Create(ctx, entry); err != nil {
			metrics.PersistenceFailures.WithLabelValues("mood").Inc()
			logger.Error("Error saving mood entry", zap.Error(err))
		}
	}

	s.updateContext(ctx, logger, sessionID, detected)

	return &models.ChatTurn{
		UserMessage:         *userMsg,
		Reply:               *reply,
		Mood:                detected,
		Bundle:              bundle,
		ShowCrisisResources: bundle.IsCrisis,
		Suggestions:         mood.SuggestionsFor(detected),
	}, nil
}

func (s *DefaultChatService) selectResponse(ctx context.Context, m models.MoodLabel, text string) models.ResponseBundle {
	if s.GenerationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.GenerationTimeout)
		defer cancel()
	}
	return s.Selector.SelectResponse(ctx, m, text)
}

// History returns the session's messages in creation order. A session with
// no messages yet gets the welcome message, which is not stored.
func (s *DefaultChatService) History(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrMissingSession
	}
	msgs, err := s.Messages.List(ctx, models.MessageFilter{SessionID: sessionID})
	if err != nil {
		return nil, fmt.Errorf("load chat history: %w", err)
	}
	if len(msgs) == 0 {
		return []models.ChatMessage{*s.WelcomeMessage(sessionID)}, nil
	}
	return msgs, nil
}

// WelcomeMessage builds the greeting shown at the start of a session.
func (s *DefaultChatService) WelcomeMessage(sessionID string) *models.ChatMessage {
	return s.newMessage(sessionID, mood.WelcomeMessage, models.SenderAgent, nil)
}

func (s *DefaultChatService) Suggestions(m models.MoodLabel) *models.MoodSuggestion {
	return mood.SuggestionsFor(m)
}

func (s *DefaultChatService) QuickReplies() []models.QuickReply {
	return mood.QuickReplies()
}

func (s *DefaultChatService) newMessage(sessionID, text string, sender models.Sender, detected *models.MoodLabel) *models.ChatMessage {
	now := s.Now().UTC()
	return &models.ChatMessage{
		ID:           s.ids.next(now),
		SessionID:    sessionID,
		Text:         text,
		Sender:       sender,
		DetectedMood: detected,
		CreatedAt:    now,
	}
}

func (s *DefaultChatService) persistMessage(ctx context.Context, logger *zap.Logger, msg *models.ChatMessage) {
	if err := s.Messages.Create(ctx, msg); err != nil {
		metrics.PersistenceFailures.WithLabelValues("message").Inc()
		logger.Error("Error saving chat message",
			zap.String("sender", string(msg.Sender)), zap.Error(err))
	}
}

func (s *DefaultChatService) updateContext(ctx context.Context, logger *zap.Logger, sessionID string, m models.MoodLabel) {
	if s.Contexts == nil {
		return
	}
	sc, err := s.Contexts.Get(ctx, sessionID)
	if err != nil {
		logger.Warn("failed to load session context", zap.Error(err))
		sc = &models.SessionContext{}
	}
	sc.LastMood = m
	sc.Turns++
	sc.CrisisFlagged = sc.CrisisFlagged || m == models.MoodCrisis
	sc.UpdatedAt = s.Now().UTC()
	if err := s.Contexts.Set(ctx, sessionID, sc); err != nil {
		metrics.PersistenceFailures.WithLabelValues("session_context").Inc()
		logger.Warn("failed to save session context", zap.Error(err))
	}
}

// troubleTurn is returned when no reply could be produced. The notice still
// points the user to professional help.
func (s *DefaultChatService) troubleTurn(sessionID string, userMsg *models.ChatMessage) *models.ChatTurn {
	reply := s.newMessage(sessionID, mood.TroubleConnectingMessage, models.SenderAgent, nil)
	return &models.ChatTurn{
		UserMessage: *userMsg,
		Reply:       *reply,
		Mood:        models.MoodNeutral,
		Bundle:      models.ResponseBundle{MessageText: mood.TroubleConnectingMessage},
	}
}
