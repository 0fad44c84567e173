package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

const defaultQuestionTTL = 10 * time.Minute

// QuestionCache stores JSON-encoded questions.
// Key format: question:<id>
type QuestionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewQuestionCache wraps client. A non-positive ttl falls back to ten minutes.
func NewQuestionCache(client *redis.Client, ttl time.Duration) *QuestionCache {
	if ttl <= 0 {
		ttl = defaultQuestionTTL
	}
	return &QuestionCache{client: client, ttl: ttl}
}

// Get returns ok=false on a cache miss.
func (c *QuestionCache) Get(ctx context.Context, id int64) (*domain.Question, bool, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("question cache get: %w", err)
	}

	var q domain.Question
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, false, fmt.Errorf("question cache decode: %w", err)
	}
	return &q, true, nil
}

func (c *QuestionCache) Set(ctx context.Context, q *domain.Question) error {
	raw, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("question cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(q.ID), raw, c.ttl).Err()
}

func (c *QuestionCache) Invalidate(ctx context.Context, id int64) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *QuestionCache) key(id int64) string {
	return fmt.Sprintf("question:%d", id)
}
