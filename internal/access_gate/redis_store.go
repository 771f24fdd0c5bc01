package accessgate

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/scribearc/scribearc/internal/config"
)

// RedisSessionStore keeps attempt counters and verified markers in Redis so
// multiple api instances share them. Both key families carry a TTL; an expired
// attempt counter simply resets the soft limit.
type RedisSessionStore struct {
	client      *redis.Client
	attemptTTL  time.Duration
	verifiedTTL time.Duration
}

func NewRedisSessionStore(client *redis.Client, cfg config.TrackingConfig) *RedisSessionStore {
	return &RedisSessionStore{
		client:      client,
		attemptTTL:  cfg.AttemptTTL,
		verifiedTTL: cfg.VerifiedTTL,
	}
}

// NewRedisClient connects and pings the configured Redis instance.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.ADDR,
		Password: cfg.PASSWORD,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

func attemptKey(sessionToken, projectID string) string {
	return fmt.Sprintf("tracking:attempts:%s:%s", sessionToken, projectID)
}

func verifiedKey(sessionToken, projectID string) string {
	return fmt.Sprintf("tracking:verified:%s:%s", sessionToken, projectID)
}

func (s *RedisSessionStore) IncrementAttempts(ctx context.Context, sessionToken, projectID string) (int, error) {
	key := attemptKey(sessionToken, projectID)

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}

	// set the expiry on first failure so the window starts then
	if count == 1 {
		if err := s.client.Expire(ctx, key, s.attemptTTL).Err(); err != nil {
			return int(count), err
		}
	}

	return int(count), nil
}

func (s *RedisSessionStore) Attempts(ctx context.Context, sessionToken, projectID string) (int, error) {
	count, err := s.client.Get(ctx, attemptKey(sessionToken, projectID)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (s *RedisSessionStore) MarkVerified(ctx context.Context, sessionToken, projectID string) error {
	return s.client.Set(ctx, verifiedKey(sessionToken, projectID), "1", s.verifiedTTL).Err()
}

func (s *RedisSessionStore) IsVerified(ctx context.Context, sessionToken, projectID string) (bool, error) {
	exists, err := s.client.Exists(ctx, verifiedKey(sessionToken, projectID)).Result()
	if err != nil {
		return false, err
	}

	return exists > 0, nil
}
