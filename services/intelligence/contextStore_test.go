package ai

import (
	"context"
	"testing"
	"time"

	"soulsync/models"
	"soulsync/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestContextStoreMissingSessionIsEmpty(t *testing.T) {
	_, client := setupRedis(t)
	store := NewRedisContextStore(client, time.Minute)

	sc, err := store.Get(context.Background(), "session_missing")
	require.NoError(t, err)
	assert.Equal(t, &models.SessionContext{}, sc)
}

func TestContextStoreRoundTripAndTTL(t *testing.T) {
	mr, client := setupRedis(t)
	store := NewRedisContextStore(client, 30*time.Minute)
	ctx := context.Background()

	in := &models.SessionContext{
		LastMood:      models.MoodAnxious,
		Turns:         3,
		CrisisFlagged: true,
		UpdatedAt:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Set(ctx, "session_1", in))

	assert.True(t, mr.Exists(utils.SessionContextPrefix+"session_1"))
	assert.Equal(t, 30*time.Minute, mr.TTL(utils.SessionContextPrefix+"session_1"))

	out, err := store.Get(ctx, "session_1")
	require.NoError(t, err)
	assert.Equal(t, in.LastMood, out.LastMood)
	assert.Equal(t, in.Turns, out.Turns)
	assert.True(t, out.CrisisFlagged)
	assert.True(t, in.UpdatedAt.Equal(out.UpdatedAt))

	mr.FastForward(31 * time.Minute)
	out, err = store.Get(ctx, "session_1")
	require.NoError(t, err)
	assert.Zero(t, out.Turns)
}

func TestContextStoreClear(t *testing.T) {
	mr, client := setupRedis(t)
	store := NewRedisContextStore(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s", &models.SessionContext{Turns: 1}))
	require.NoError(t, store.Clear(ctx, "s"))
	assert.False(t, mr.Exists(utils.SessionContextPrefix+"s"))
}

func TestContextStoreCorruptValue(t *testing.T) {
	mr, client := setupRedis(t)
	store := NewRedisContextStore(client, time.Minute)
	require.NoError(t, mr.Set(utils.SessionContextPrefix+"bad", "{not json"))

	_, err := store.Get(context.Background(), "bad")
	assert.Error(t, err)
}
