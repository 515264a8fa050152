package cache

import (
	"bondhu/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ContextCache handles Redis operations for generated LLM personality contexts
type ContextCache interface {
	Get(ctx context.Context, userID string) (*model.LLMPersonalityContext, error)
	Set(ctx context.Context, userID string, llmCtx *model.LLMPersonalityContext) error
	Delete(ctx context.Context, userID string) error
}

type contextCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewContextCache creates a new context cache; a non-positive ttl falls back to 24h
func NewContextCache(client *redis.Client, ttl time.Duration) ContextCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &contextCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *contextCache) key(userID string) string {
	return fmt.Sprintf("user:%s:personality:context", userID)
}

func (c *contextCache) Get(ctx context.Context, userID string) (*model.LLMPersonalityContext, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var llmCtx model.LLMPersonalityContext
	if err := json.Unmarshal([]byte(data), &llmCtx); err != nil {
		return nil, err
	}
	return &llmCtx, nil
}

func (c *contextCache) Set(ctx context.Context, userID string, llmCtx *model.LLMPersonalityContext) error {
	data, err := json.Marshal(llmCtx)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(userID), data, c.ttl).Err()
}

func (c *contextCache) Delete(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
