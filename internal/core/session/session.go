// Package session mirrors the current user record into the key-value store
// so a reconnecting client can resolve "who is logged in" without replaying
// the login flow. The store is an explicit dependency passed to its owners;
// there is no ambient singleton.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pulsemark/agency-platform/internal/core/domain"
	"github.com/pulsemark/agency-platform/internal/core/ports"
)

const keyPrefix = "session:"

// Store holds the session mirror. At any instant a user's entry is either
// absent or a single well-formed user record; Set replaces it wholesale and
// is idempotent for identical payloads.
type Store struct {
	kv ports.KeyValueStore
}

func NewStore(kv ports.KeyValueStore) *Store {
	return &Store{kv: kv}
}

// Set replaces the mirrored record for user.ID.
func (s *Store) Set(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return s.kv.Set(ctx, keyPrefix+user.ID, raw)
}

// Get returns the mirrored record, or domain.ErrKeyNotFound when the user
// has no session.
func (s *Store) Get(ctx context.Context, userID string) (*domain.User, error) {
	raw, err := s.kv.Get(ctx, keyPrefix+userID)
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}
	return &user, nil
}

// Clear removes the mirrored record at logout.
func (s *Store) Clear(ctx context.Context, userID string) error {
	return s.kv.Remove(ctx, keyPrefix+userID)
}
