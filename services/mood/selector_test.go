package mood

import (
	"context"
	"errors"
	"strings"
	"testing"

	"soulsync/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingGenerator struct {
	calls   int
	prompts []string
	reply   string
	err     error
}

func (g *countingGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	g.calls++
	g.prompts = append(g.prompts, prompt)
	return g.reply, g.err
}

func TestSelectResponseCrisisNeverCallsGenerator(t *testing.T) {
	gen := &countingGenerator{reply: "generated"}

	got := SelectResponse(context.Background(), models.MoodCrisis, "I want to end it all", gen)

	assert.Equal(t, 0, gen.calls)
	assert.True(t, got.IsCrisis)
	assert.Equal(t, cannedResponses[models.MoodCrisis].MessageText, got.MessageText)
	assert.Contains(t, got.MessageText, "988")
}

func TestSelectResponseFallsBackOnGeneratorError(t *testing.T) {
	gen := &countingGenerator{err: errors.New("quota exceeded")}

	got := SelectResponse(context.Background(), models.MoodSad, "I feel sad", gen)

	assert.Equal(t, 1, gen.calls)
	assert.False(t, got.IsCrisis)
	assert.Equal(t, cannedResponses[models.MoodSad].MessageText, got.MessageText)
	assert.Equal(t, []string{"Here Comes the Sun - The Beatles", "Good as Hell - Lizzo", "Happy - Pharrell Williams"}, got.MusicSuggestions)
}

func TestSelectResponseFallsBackOnEmptyOutput(t *testing.T) {
	gen := &countingGenerator{reply: "   \n "}

	got := SelectResponse(context.Background(), models.MoodTired, "so tired", gen)

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, cannedResponses[models.MoodTired].MessageText, got.MessageText)
}

func TestSelectResponseWithoutGenerator(t *testing.T) {
	for _, m := range []models.MoodLabel{models.MoodHappy, models.MoodAnxious, models.MoodNeutral, models.MoodAngry} {
		got := SelectResponse(context.Background(), m, "anything", nil)
		assert.Equal(t, CannedResponse(m), got, "mood %s", m)
		assert.False(t, got.IsCrisis)
	}
}

func TestSelectResponseAugmented(t *testing.T) {
	gen := &countingGenerator{reply: "  You've got this. Try a short walk.  "}

	got := SelectResponse(context.Background(), models.MoodSad, "I feel down", gen)

	require.Equal(t, 1, gen.calls)
	assert.Equal(t, "You've got this. Try a short walk.", got.MessageText)
	assert.False(t, got.IsCrisis)
	assert.Empty(t, got.MusicSuggestions)
	assert.Contains(t, gen.prompts[0], `"I feel down"`)
	assert.Contains(t, gen.prompts[0], "sad")
}

func TestSelectResponseUnmappedMoodUsesDefault(t *testing.T) {
	got := SelectResponse(context.Background(), models.MoodStressed, "pressure", nil)
	assert.Equal(t, defaultResponse.MessageText, got.MessageText)
	assert.Nil(t, got.MusicSuggestions)
}

func TestCannedResponseReturnsCopy(t *testing.T) {
	b := CannedResponse(models.MoodSad)
	b.MusicSuggestions[0] = "changed"
	assert.NotEqual(t, "changed", CannedResponse(models.MoodSad).MusicSuggestions[0])
}

func TestBuildPromptQuotesUserText(t *testing.T) {
	p := BuildPrompt(`he said "hi"`, models.MoodHappy)
	assert.True(t, strings.Contains(p, `"he said \"hi\""`))
	assert.Contains(t, p, "Their detected mood seems to be: happy")
}
