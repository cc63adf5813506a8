package ports

import (
	"context"

	"github.com/pulsemark/agency-platform/internal/core/domain"
)

// TeamMemberInput is one colleague collected during onboarding.
type TeamMemberInput struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// OnboardingClientInput is one client collected during onboarding.
type OnboardingClientInput struct {
	Name         string `json:"name"`
	Industry     string `json:"industry"`
	ContactEmail string `json:"contact_email"`
}

// OnboardingData is everything a user entered during the onboarding flow.
type OnboardingData struct {
	TeamMembers []TeamMemberInput       `json:"team_members"`
	Clients     []OnboardingClientInput `json:"clients"`
}

// OnboardingService persists onboarding answers per user and marks the
// account as onboarded. Storage failures degrade to in-memory defaults and
// never abort the flow.
type OnboardingService interface {
	Save(ctx context.Context, userID string, data OnboardingData) error
	Get(ctx context.Context, userID string) (*OnboardingData, error)
}
