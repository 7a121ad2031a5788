// internal/scores/redis.go
package scores

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKey is the Redis hash that maps player names to scores.
const DefaultKey = "czar:scores"

// RedisStore keeps the whole score table in a single Redis hash.
type RedisStore struct {
	Client *redis.Client
	Key    string
}

// NewRedisStore initializes a client from environment variables:
//   - REDIS_ADDR (default "localhost:6379")
//   - REDIS_DB (optional, default 0)
//   - SCORES_KEY (optional, default "czar:scores")
//
// The server is pinged before the store is returned.
func NewRedisStore() (*RedisStore, error) {
	addr := getEnv("REDIS_ADDR", "localhost:6379")
	dbIdx := getEnvInt("REDIS_DB", 0)

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   dbIdx,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	return &RedisStore{Client: client, Key: getEnv("SCORES_KEY", DefaultKey)}, nil
}

func (s *RedisStore) Lookup(ctx context.Context, name string) (int, bool, error) {
	val, err := s.Client.HGet(ctx, s.Key, name).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read score for %s: %w", name, err)
	}
	score, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt score for %s: %w", name, err)
	}
	return score, true, nil
}

func (s *RedisStore) Snapshot(ctx context.Context, scores map[string]int) error {
	if len(scores) == 0 {
		return nil
	}
	fields := make([]interface{}, 0, len(scores)*2)
	for name, score := range scores {
		fields = append(fields, name, score)
	}
	if err := s.Client.HSet(ctx, s.Key, fields...).Err(); err != nil {
		return fmt.Errorf("failed to write score snapshot: %w", err)
	}
	return nil
}

// getEnv is a helper to read an environment variable or return a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt is a helper to parse an environment variable as integer, else a default value.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
