package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Manish26364/sevas-admin/internal/core/domain"
)

// SessionStore keeps the server-side session registry in Redis.
// Key format: session:<session_id> → username, expiring with the session TTL.
// Deleting the key is what revokes a logged-out session; the cookie's JWT
// signature alone never grants access.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Create(ctx context.Context, sid, username string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(sid), username, ttl).Err(); err != nil {
		return fmt.Errorf("session create: %w", err)
	}
	return nil
}

// Get returns the username behind a session id, or domain.ErrSessionNotFound
// when the session was revoked or has expired.
func (s *SessionStore) Get(ctx context.Context, sid string) (string, error) {
	username, err := s.client.Get(ctx, s.key(sid)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrSessionNotFound
		}
		return "", fmt.Errorf("session get: %w", err)
	}
	return username, nil
}

func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, s.key(sid)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStore) key(sid string) string {
	return "session:" + sid
}
