package sessionstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, keyPrefix+token, userID, ttl).Err()
}

// Get returns the user id for a token. ErrNotFound covers both expired and
// never-issued tokens; any other error is a transport failure and must not
// be mistaken for an authentication failure.
func (s *RedisStore) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

// Delete is idempotent; removing an absent key is not an error.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}
