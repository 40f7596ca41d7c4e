package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mvachon/userd/internal/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// RedisStore keeps session payloads in Redis. Expiry is delegated to Redis
// key TTLs.
type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Set(ctx context.Context, id, principal string, ttl time.Duration) error {
	if err := s.client.Set(ctx, keyPrefix+id, principal, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSessionStore, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (string, error) {
	principal, err := s.client.Get(ctx, keyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrNoSession
		}
		return "", fmt.Errorf("%w: %v", domain.ErrSessionStore, err)
	}
	return principal, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSessionStore, err)
	}
	return nil
}
