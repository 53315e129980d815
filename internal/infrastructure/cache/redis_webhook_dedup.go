package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisWebhookDedupStore marks provider event ids as seen with a TTL. It is a
// fast path only; the ledger's unique constraint remains the source of truth.
type RedisWebhookDedupStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisWebhookDedupStore(client *redis.Client, ttl time.Duration) *RedisWebhookDedupStore {
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &RedisWebhookDedupStore{client: client, ttl: ttl}
}

// MarkSeen returns true when the event id was already marked. SetNX makes the
// mark-and-check atomic under concurrent deliveries.
func (s *RedisWebhookDedupStore) MarkSeen(ctx context.Context, providerEventID string) (bool, error) {
	set, err := s.client.SetNX(ctx, "webhooks:seen:"+providerEventID, "1", s.ttl).Result()
	if err != nil {
		return false, err
	}
	return !set, nil
}
