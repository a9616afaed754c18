package mood

import (
	"context"
	"fmt"
	"strings"
	"time"

	"soulsync/metrics"
	"soulsync/models"

	"go.uber.org/zap"
)

// TextGenerator produces a short reply for a natural-language prompt.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to TextGenerator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Selector picks the reply bundle for a detected mood.
type Selector struct {
	Generator TextGenerator // nil disables augmentation
	Logger    *zap.Logger
}

// NewSelector returns a Selector. A nil logger is replaced with a no-op logger.
func NewSelector(gen TextGenerator, logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{Generator: gen, Logger: logger}
}

// BuildPrompt returns the companion prompt for a user message and its mood.
func BuildPrompt(userText string, mood models.MoodLabel) string {
	return fmt.Sprintf(`You are Panda, SoulSync's caring mental health AI companion for Gen Z. The user just said: %q

Their detected mood seems to be: %s

Provide a warm, empathetic response that:
- Uses Gen Z language naturally (not forced)
- Offers genuine emotional support
- Suggests specific creative activities, mindfulness practices, or journaling prompts
- Includes music recommendations when appropriate (especially for sad/tired moods)
- Shows you truly care about their wellbeing
- Keeps responses conversational (2-3 sentences max)
- Use emojis sparingly and meaningfully
- Be authentic and never judgmental

This is a safe space. Focus on practical, immediate help they can use right now.`, userText, mood)
}

// SelectResponse returns the reply for mood. Crisis replies are always the
// canned bundle and never reach the generator. Other moods get one generator
// attempt; any failure or empty output falls back to the canned bundle.
func (s *Selector) SelectResponse(ctx context.Context, mood models.MoodLabel, originalText string) models.ResponseBundle {
	canned := CannedResponse(mood)

	if mood == models.MoodCrisis {
		canned.IsCrisis = true
		metrics.GenerationOutcomes.WithLabelValues("skipped").Inc()
		return canned
	}
	if s.Generator == nil {
		metrics.GenerationOutcomes.WithLabelValues("skipped").Inc()
		return canned
	}

	start := time.Now()
	text, err := s.Generator.GenerateContent(ctx, BuildPrompt(originalText, mood))
	metrics.GenerationLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		s.Logger.Warn("text generation failed, using canned response",
			zap.String("mood", string(mood)), zap.Error(err))
		metrics.GenerationOutcomes.WithLabelValues("fallback").Inc()
		return canned
	}
	text = strings.TrimSpace(text)
	if text == "" {
		s.Logger.Warn("text generation returned empty reply, using canned response",
			zap.String("mood", string(mood)))
		metrics.GenerationOutcomes.WithLabelValues("fallback").Inc()
		return canned
	}

	metrics.GenerationOutcomes.WithLabelValues("augmented").Inc()
	return models.ResponseBundle{MessageText: text, IsCrisis: false}
}

// SelectResponse is the functional form of Selector.SelectResponse.
func SelectResponse(ctx context.Context, mood models.MoodLabel, originalText string, gen TextGenerator) models.ResponseBundle {
	return NewSelector(gen, nil).SelectResponse(ctx, mood, originalText)
}
