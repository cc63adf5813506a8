package ports

import (
	"context"

	"github.com/pulsemark/agency-platform/internal/core/domain"
)

// RegisterInput carries all data needed to create a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
	// ClientID is required for client-side roles and must be empty for
	// agency roles.
	ClientID string
}

// AuthService defines registration, login, and session-shaping operations.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout drops the user's session mirror. The JWT itself stays valid
	// until expiry; clients discard it.
	Logout(ctx context.Context, userID string) error
	CompleteOnboarding(ctx context.Context, userID string) (*domain.User, error)
	// SwitchRole changes the role held by an existing account and returns a
	// fresh token. It is an explicit administrative operation available only
	// when the server runs in demo mode; production builds reject it.
	SwitchRole(ctx context.Context, userID string, role domain.Role) (string, *domain.User, error)
}
