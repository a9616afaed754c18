package chat

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	memoryRepo "soulsync/database/repository/memory"
	"soulsync/models"
	ai "soulsync/services/intelligence"
	"soulsync/services/mood"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc      *DefaultChatService
	messages *memoryRepo.MessageStore
	moods    *memoryRepo.MoodStore
	contexts *ai.RedisContextStore
	calls    int
}

func newFixture(t *testing.T, gen func(ctx context.Context, prompt string) (string, error)) *fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	f := &fixture{
		messages: memoryRepo.NewMessageStore(),
		moods:    memoryRepo.NewMoodStore(),
		contexts: ai.NewRedisContextStore(client, time.Hour),
	}
	var generator mood.TextGenerator
	if gen != nil {
		generator = mood.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
			f.calls++
			return gen(ctx, prompt)
		})
	}
	f.svc = NewChatService(f.messages, f.moods, f.contexts, generator, time.Second, nil)
	return f
}

func failing(context.Context, string) (string, error) {
	return "", errors.New("service unavailable")
}

func TestSendMessageRejectsBlankInput(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.svc.SendMessage(ctx, "session_1", "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = f.svc.SendMessage(ctx, "", "hello")
	assert.ErrorIs(t, err, ErrMissingSession)
}

func TestSendMessageSadWithFailingGenerator(t *testing.T) {
	f := newFixture(t, failing)
	ctx := context.Background()

	turn, err := f.svc.SendMessage(ctx, "session_1", "I feel so sad today")
	require.NoError(t, err)

	assert.Equal(t, 1, f.calls)
	assert.Equal(t, models.MoodSad, turn.Mood)
	assert.Equal(t, mood.CannedResponse(models.MoodSad).MessageText, turn.Reply.Text)
	assert.False(t, turn.ShowCrisisResources)
	require.NotNil(t, turn.Suggestions)

	stored, err := f.messages.List(ctx, models.MessageFilter{SessionID: "session_1"})
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, models.SenderUser, stored[0].Sender)
	assert.Nil(t, stored[0].DetectedMood)
	assert.Equal(t, models.SenderAgent, stored[1].Sender)
	require.NotNil(t, stored[1].DetectedMood)
	assert.Equal(t, models.MoodSad, *stored[1].DetectedMood)

	entries, err := f.moods.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.MoodSad, entries[0].Mood)
	assert.Equal(t, 5, entries[0].Intensity)
	assert.Equal(t, "I feel so sad today", entries[0].Notes)

	sc, err := f.contexts.Get(ctx, "session_1")
	require.NoError(t, err)
	assert.Equal(t, 1, sc.Turns)
	assert.Equal(t, models.MoodSad, sc.LastMood)
}

func TestSendMessageCrisisSkipsGenerator(t *testing.T) {
	f := newFixture(t, func(context.Context, string) (string, error) { return "generated", nil })
	ctx := context.Background()

	turn, err := f.svc.SendMessage(ctx, "session_c", "I'm happy but I want to kill myself")
	require.NoError(t, err)

	assert.Equal(t, 0, f.calls)
	assert.Equal(t, models.MoodCrisis, turn.Mood)
	assert.True(t, turn.ShowCrisisResources)
	assert.True(t, turn.Bundle.IsCrisis)

	entries, err := f.moods.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.MoodVerySad, entries[0].Mood)
	assert.Equal(t, 1, entries[0].Intensity)

	sc, err := f.contexts.Get(ctx, "session_c")
	require.NoError(t, err)
	assert.True(t, sc.CrisisFlagged)

	// The flag sticks for the rest of the session.
	_, err = f.svc.SendMessage(ctx, "session_c", "ok thanks")
	require.NoError(t, err)
	sc, err = f.contexts.Get(ctx, "session_c")
	require.NoError(t, err)
	assert.True(t, sc.CrisisFlagged)
	assert.Equal(t, 2, sc.Turns)
	assert.Equal(t, models.MoodNeutral, sc.LastMood)
}

func TestSendMessageNeutralRecordsNoMood(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	turn, err := f.svc.SendMessage(ctx, "s", "what's up")
	require.NoError(t, err)
	assert.Equal(t, models.MoodNeutral, turn.Mood)
	assert.Nil(t, turn.Suggestions)

	entries, err := f.moods.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSendMessageAugmentedReply(t *testing.T) {
	f := newFixture(t, func(context.Context, string) (string, error) { return "Sending you a hug. Want to try a 2-minute breathing break?", nil })

	turn, err := f.svc.SendMessage(context.Background(), "s", "I'm worried about tomorrow")
	require.NoError(t, err)
	assert.Equal(t, models.MoodAnxious, turn.Mood)
	assert.Equal(t, "Sending you a hug. Want to try a 2-minute breathing break?", turn.Reply.Text)
	assert.Empty(t, turn.Bundle.MusicSuggestions)
}

func TestSendMessageSurvivesStorageFailures(t *testing.T) {
	f := newFixture(t, nil)
	f.messages.Err = errors.New("mongo down")
	f.moods.Err = errors.New("mongo down")

	turn, err := f.svc.SendMessage(context.Background(), "s", "I feel lonely")
	require.NoError(t, err)
	assert.Equal(t, models.MoodSad, turn.Mood)
	assert.Equal(t, mood.CannedResponse(models.MoodSad).MessageText, turn.Reply.Text)
}

func TestSendMessageGenerationTimeoutFallsBack(t *testing.T) {
	f := newFixture(t, func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	f.svc.GenerationTimeout = 20 * time.Millisecond

	turn, err := f.svc.SendMessage(context.Background(), "s", "feeling tired")
	require.NoError(t, err)
	assert.Equal(t, mood.CannedResponse(models.MoodStressed).MessageText, turn.Reply.Text)
}

func TestSendMessagePipelineFailureReturnsTroubleNotice(t *testing.T) {
	f := newFixture(t, func(context.Context, string) (string, error) { panic("boom") })

	turn, err := f.svc.SendMessage(context.Background(), "s", "I had a good day")
	require.NoError(t, err)
	assert.Equal(t, mood.TroubleConnectingMessage, turn.Reply.Text)
	assert.Contains(t, turn.Reply.Text, "professional helpline")
	assert.Equal(t, "I had a good day", turn.UserMessage.Text)
}

func TestSendMessageCancelledContext(t *testing.T) {
	f := newFixture(t, func(context.Context, string) (string, error) { return "hi", nil })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	turn, err := f.svc.SendMessage(ctx, "s", "I'm angry")
	require.NoError(t, err)
	assert.Equal(t, 0, f.calls)
	assert.Equal(t, mood.TroubleConnectingMessage, turn.Reply.Text)
}

func TestHistory(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	msgs, err := f.svc.History(ctx, "session_new")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, mood.WelcomeMessage, msgs[0].Text)
	assert.Equal(t, models.SenderAgent, msgs[0].Sender)

	stored, err := f.messages.List(ctx, models.MessageFilter{SessionID: "session_new"})
	require.NoError(t, err)
	assert.Empty(t, stored, "welcome message is not persisted")

	_, err = f.svc.SendMessage(ctx, "session_new", "first")
	require.NoError(t, err)
	_, err = f.svc.SendMessage(ctx, "session_new", "second")
	require.NoError(t, err)
	_, err = f.svc.SendMessage(ctx, "other", "elsewhere")
	require.NoError(t, err)

	msgs, err = f.svc.History(ctx, "session_new")
	require.NoError(t, err)
	require.Len(t, msgs, 4)
	assert.Equal(t, "first", msgs[0].Text)
	assert.Equal(t, "second", msgs[2].Text)
}

func TestMessageIDsAreMonotonic(t *testing.T) {
	f := newFixture(t, nil)
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f.svc.Now = func() time.Time { return fixed }

	var ids []string
	for i := 0; i < 20; i++ {
		ids = append(ids, f.svc.newMessage("s", "x", models.SenderUser, nil).ID)
	}
	assert.True(t, sort.StringsAreSorted(ids))
	assert.Len(t, ids, 20)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestNewSessionID(t *testing.T) {
	f := newFixture(t, nil)
	a, b := f.svc.NewSessionID(), f.svc.NewSessionID()
	assert.True(t, strings.HasPrefix(a, "session_"))
	assert.NotEqual(t, a, b)
	assert.Len(t, f.svc.QuickReplies(), 6)
	assert.NotNil(t, f.svc.Suggestions(models.MoodHappy))
}
