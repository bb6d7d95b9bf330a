package session

import (
	"context"
	"testing"
	"time"

	"poolworks/internal/domain/entities"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T, ttl time.Duration) (*RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisSessionStore(client, ttl), mr
}

func TestRedisSessionStore_SaveAndGet(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	ctx := context.Background()

	conv := entities.Conversation{
		SessionID: "session-1",
		Messages: []entities.Message{
			{Role: entities.RoleUser, Content: "I want a 600 sqft concrete pool"},
			{Role: entities.RoleAssistant, Content: "Got it."},
		},
	}

	if err := store.Save(ctx, conv); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Get(ctx, "session-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.SessionID != conv.SessionID {
		t.Fatalf("session id = %q, want %q", got.SessionID, conv.SessionID)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(got.Messages))
	}
	if got.Messages[0] != conv.Messages[0] || got.Messages[1] != conv.Messages[1] {
		t.Fatalf("messages round-trip mismatch: %+v", got.Messages)
	}
}

func TestRedisSessionStore_GetUnknownSession(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)

	got, err := store.Get(context.Background(), "never-seen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SessionID != "" || len(got.Messages) != 0 {
		t.Fatalf("expected zero-value conversation, got %+v", got)
	}
}

func TestRedisSessionStore_EntriesExpire(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	conv := entities.Conversation{
		SessionID: "short-lived",
		Messages:  []entities.Message{{Role: entities.RoleUser, Content: "hello"}},
	}
	if err := store.Save(ctx, conv); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, "short-lived")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Messages) != 0 {
		t.Fatalf("expected expired session to be empty, got %+v", got)
	}
}

func TestRedisSessionStore_SaveRefreshesTTL(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	conv := entities.Conversation{SessionID: "active"}
	if err := store.Save(ctx, conv); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	mr.FastForward(45 * time.Second)

	conv.Messages = append(conv.Messages, entities.Message{Role: entities.RoleUser, Content: "still here"})
	if err := store.Save(ctx, conv); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// Past the original deadline but within the refreshed one.
	mr.FastForward(45 * time.Second)

	got, err := store.Get(ctx, "active")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Messages) != 1 {
		t.Fatalf("expected session to survive the refresh, got %+v", got)
	}
}

func TestTTLFromEnv(t *testing.T) {
	t.Run("unset falls back to default", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "")
		if got := TTLFromEnv(); got != defaultSessionTTL {
			t.Fatalf("got %v, want %v", got, defaultSessionTTL)
		}
	})

	t.Run("valid duration", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "2h")
		if got := TTLFromEnv(); got != 2*time.Hour {
			t.Fatalf("got %v, want 2h", got)
		}
	})

	t.Run("invalid duration falls back", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "soon")
		if got := TTLFromEnv(); got != defaultSessionTTL {
			t.Fatalf("got %v, want %v", got, defaultSessionTTL)
		}
	})
}
