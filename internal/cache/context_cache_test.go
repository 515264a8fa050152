package cache

import (
	"bondhu/internal/model"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestContextCache_RoundTrip(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewContextCache(client, time.Hour)
	ctx := context.Background()

	got, err := c.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, got, "miss returns nil")

	want := &model.LLMPersonalityContext{
		ConversationStyle: "Calm and reflective.",
		TopicPreferences:  []string{"books and quiet hobbies"},
		SystemPrompt:      "You are Bondhu",
	}
	require.NoError(t, c.Set(ctx, "user-1", want))
	assert.True(t, mr.Exists("user:user-1:personality:context"))
	assert.Equal(t, time.Hour, mr.TTL("user:user-1:personality:context"))

	got, err = c.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, c.Delete(ctx, "user-1"))
	got, err = c.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestContextCache_Expires(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewContextCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "user-2", &model.LLMPersonalityContext{SystemPrompt: "p"}))
	mr.FastForward(2 * time.Minute)

	got, err := c.Get(ctx, "user-2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestContextCache_DefaultTTL(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewContextCache(client, 0)

	require.NoError(t, c.Set(context.Background(), "user-3", &model.LLMPersonalityContext{}))
	assert.Equal(t, 24*time.Hour, mr.TTL("user:user-3:personality:context"))
}

func TestContextCache_CorruptValue(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewContextCache(client, time.Hour)
	require.NoError(t, mr.Set("user:user-4:personality:context", "{not json"))

	_, err := c.Get(context.Background(), "user-4")
	assert.Error(t, err)
}
