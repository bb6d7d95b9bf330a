// Package session stores conversation history in Redis with a sliding TTL.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"poolworks/internal/domain/entities"
	"poolworks/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix  = "session:"
	defaultSessionTTL = 30 * time.Minute
)

// RedisSessionStore keeps each conversation under "session:<id>" as a JSON
// document. The TTL is applied on every Save, so active sessions stay alive
// and abandoned ones expire.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.ISessionStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &RedisSessionStore{client: client, ttl: ttl}
}

// TTLFromEnv reads SESSION_TTL as a Go duration string ("30m", "1h").
// Unset or invalid values fall back to the default.
func TTLFromEnv() time.Duration {
	raw := os.Getenv("SESSION_TTL")
	if raw == "" {
		return defaultSessionTTL
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		return defaultSessionTTL
	}
	return ttl
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (entities.Conversation, error) {
	raw, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.Conversation{}, nil
	}
	if err != nil {
		return entities.Conversation{}, err
	}

	var conv entities.Conversation
	if err := json.Unmarshal(raw, &conv); err != nil {
		return entities.Conversation{}, err
	}
	return conv, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, conv entities.Conversation) error {
	raw, err := json.Marshal(conv)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+conv.SessionID, raw, s.ttl).Err()
}
