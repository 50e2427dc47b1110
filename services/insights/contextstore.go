package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"maidly/models"

	"github.com/go-redis/redis/v8"
)

const (
	contextKeyPrefix = "insights:ctx:"
	contextTTL       = 24 * time.Hour
	maxHistory       = 10
)

// ContextStore keeps the recent insight exchanges per maid so follow-up
// summaries can reference earlier ones.
type ContextStore interface {
	Get(ctx context.Context, maidID string) (*models.InsightContext, error)
	Append(ctx context.Context, maidID, entry string) error
}

// RedisContextStore backs the context store with the generic cache DB.
type RedisContextStore struct {
	Client *redis.Client
}

func (s *RedisContextStore) Get(ctx context.Context, maidID string) (*models.InsightContext, error) {
	raw, err := s.Client.Get(ctx, contextKeyPrefix+maidID).Result()
	if err == redis.Nil {
		return &models.InsightContext{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read insight context: %w", err)
	}
	var ic models.InsightContext
	if err := json.Unmarshal([]byte(raw), &ic); err != nil {
		return &models.InsightContext{}, nil
	}
	return &ic, nil
}

func (s *RedisContextStore) Append(ctx context.Context, maidID, entry string) error {
	ic, err := s.Get(ctx, maidID)
	if err != nil {
		return err
	}
	ic.History = append(ic.History, entry)
	if len(ic.History) > maxHistory {
		ic.History = ic.History[len(ic.History)-maxHistory:]
	}
	data, err := json.Marshal(ic)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, contextKeyPrefix+maidID, data, contextTTL).Err()
}
