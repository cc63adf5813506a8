package session

import (
	"context"
	"errors"
	"testing"

	"github.com/pulsemark/agency-platform/internal/core/domain"
)

type memKV struct {
	data map[string][]byte
	sets int
}

func newMemKV() *memKV { return &memKV{data: make(map[string][]byte)} }

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return v, nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	m.sets++
	m.data[key] = value
	return nil
}

func (m *memKV) Remove(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func sampleUser() *domain.User {
	return &domain.User{
		ID:       "user_001",
		Name:     "Ada",
		Email:    "ada@example.com",
		Role:     domain.RoleClientAdmin,
		ClientID: "client_001",
	}
}

func TestStore_SetGetClear(t *testing.T) {
	store := NewStore(newMemKV())
	ctx := context.Background()
	user := sampleUser()

	if err := store.Set(ctx, user); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != user.ID || got.Role != user.Role || got.ClientID != user.ClientID {
		t.Fatalf("mirrored record does not match: %+v", got)
	}

	if err := store.Clear(ctx, user.ID); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := store.Get(ctx, user.ID); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound after Clear, got %v", err)
	}
}

func TestStore_SetIdempotent(t *testing.T) {
	store := NewStore(newMemKV())
	ctx := context.Background()
	user := sampleUser()

	if err := store.Set(ctx, user); err != nil {
		t.Fatalf("first Set: %v", err)
	}
	if err := store.Set(ctx, user); err != nil {
		t.Fatalf("second Set: %v", err)
	}

	got, err := store.Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	// Repeating Set with the same payload must not change the session or the
	// permission set derived from it.
	if got.Role != user.Role {
		t.Fatalf("role changed across identical Set calls")
	}
	before := domain.PermissionsFor(user.Role)
	after := domain.PermissionsFor(got.Role)
	if len(before) != len(after) {
		t.Fatalf("permission set changed across identical Set calls")
	}
}

func TestStore_GetMissing(t *testing.T) {
	store := NewStore(newMemKV())
	if _, err := store.Get(context.Background(), "nobody"); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}
