package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsemark/agency-platform/internal/core/domain"
	"github.com/pulsemark/agency-platform/internal/core/ports"
	"github.com/pulsemark/agency-platform/internal/core/session"
)

func newOnboardingFixture(t *testing.T, kv *memKV) (*OnboardingService, *domain.User) {
	t.Helper()
	users := newStubUserRepo()
	auth := NewAuthService(users, session.NewStore(newMemKV()), "secret", time.Hour, false, zerolog.Nop())

	user, err := auth.Register(context.Background(), ports.RegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "x", Role: domain.RoleAgencyAdmin,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	return NewOnboardingService(kv, users, auth, zerolog.Nop()), user
}

func TestOnboardingService_SaveAndGet(t *testing.T) {
	kv := newMemKV()
	svc, user := newOnboardingFixture(t, kv)
	ctx := context.Background()

	data := ports.OnboardingData{
		TeamMembers: []ports.TeamMemberInput{
			{Name: "Bob", Email: "bob@example.com", Role: domain.RoleAgencyStaff},
		},
		Clients: []ports.OnboardingClientInput{
			{Name: "Northwind Coffee", Industry: "Food & Beverage"},
		},
	}

	if err := svc.Save(ctx, user.ID, data); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := svc.Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.TeamMembers) != 1 || got.TeamMembers[0].Email != "bob@example.com" {
		t.Fatalf("team members not round-tripped: %+v", got.TeamMembers)
	}
	if len(got.Clients) != 1 || got.Clients[0].Name != "Northwind Coffee" {
		t.Fatalf("clients not round-tripped: %+v", got.Clients)
	}
}

func TestOnboardingService_SaveMarksUserOnboarded(t *testing.T) {
	kv := newMemKV()
	svc, user := newOnboardingFixture(t, kv)

	if err := svc.Save(context.Background(), user.ID, ports.OnboardingData{}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	updated, err := svc.users.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !updated.HasCompletedOnboarding {
		t.Fatalf("onboarding flag not set after Save")
	}
}

func TestOnboardingService_StorageFailureIsNonFatal(t *testing.T) {
	kv := newMemKV()
	kv.fail = true
	svc, user := newOnboardingFixture(t, kv)

	// Writes to the KV store fail, but the flow still completes and the user
	// is marked onboarded.
	if err := svc.Save(context.Background(), user.ID, ports.OnboardingData{
		TeamMembers: []ports.TeamMemberInput{{Name: "Bob"}},
	}); err != nil {
		t.Fatalf("Save should tolerate storage failure, got %v", err)
	}

	updated, _ := svc.users.FindByID(context.Background(), user.ID)
	if !updated.HasCompletedOnboarding {
		t.Fatalf("onboarding flag not set despite storage failure")
	}
}

func TestOnboardingService_GetMissingReturnsDefaults(t *testing.T) {
	kv := newMemKV()
	svc, user := newOnboardingFixture(t, kv)

	got, err := svc.Get(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.TeamMembers) != 0 || len(got.Clients) != 0 {
		t.Fatalf("expected empty defaults, got %+v", got)
	}
}

func TestOnboardingService_SaveUnknownUser(t *testing.T) {
	kv := newMemKV()
	svc, _ := newOnboardingFixture(t, kv)

	if err := svc.Save(context.Background(), "ghost", ports.OnboardingData{}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
