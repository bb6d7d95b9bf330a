package interfaces

import (
	"context"
	"poolworks/internal/domain/entities"
)

// ISessionStore holds per-session conversation history with a bounded
// lifetime. Entries expire after a TTL that is refreshed on every save, so
// abandoned sessions disappear on their own instead of accumulating in an
// unbounded map.
//
// Get returns a zero-value Conversation (not an error) for an unknown or
// expired session; starting over is the correct behavior there.
type ISessionStore interface {
	Get(ctx context.Context, sessionID string) (entities.Conversation, error)
	Save(ctx context.Context, conv entities.Conversation) error
}
