// Package session persists the last-used checkout email per visitor
// session, the server-side stand-in for the storefront's remembered-email
// behaviour.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const emailTTL = 30 * 24 * time.Hour

type EmailStore struct {
	client *redis.Client
}

func NewEmailStore(client *redis.Client) *EmailStore {
	return &EmailStore{client: client}
}

// Remember stores the email used at checkout for this session.
func (s *EmailStore) Remember(ctx context.Context, sessionID, email string) error {
	if err := s.client.Set(ctx, emailKey(sessionID), email, emailTTL).Err(); err != nil {
		return fmt.Errorf("remember email: %w", err)
	}
	return nil
}

// Lookup returns the remembered email, or "" when none is stored.
func (s *EmailStore) Lookup(ctx context.Context, sessionID string) (string, error) {
	email, err := s.client.Get(ctx, emailKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("lookup email: %w", err)
	}
	return email, nil
}

func emailKey(sessionID string) string {
	return fmt.Sprintf("email:%s", sessionID)
}
