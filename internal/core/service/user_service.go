package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsemark/agency-platform/internal/core/domain"
	"github.com/pulsemark/agency-platform/internal/core/ports"
)

// UserService implements account administration. The route guard enforces
// manage_users; the service additionally scopes client admins to their own
// client's accounts.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) ListUsers(ctx context.Context, role domain.Role, clientID string) ([]*domain.User, error) {
	return s.users.List(ctx, scope(role, clientID, ""))
}

// ChangeRole reassigns a user's role. Client admins may only manage accounts
// within their own client and may only grant client-side roles.
func (s *UserService) ChangeRole(ctx context.Context, actorRole domain.Role, actorClientID string, targetID string, newRole domain.Role) (*domain.User, error) {
	if !newRole.IsValid() {
		return nil, domain.ErrInvalidCredentials
	}

	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if domain.IsClientRole(actorRole) {
		if target.ClientID != actorClientID || domain.IsAgencyRole(newRole) {
			return nil, domain.ErrForbidden
		}
	}

	target.Role = newRole
	if domain.IsAgencyRole(newRole) {
		target.ClientID = ""
	}
	target.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, target); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", targetID).Str("role", string(newRole)).Msg("user role changed")
	return target, nil
}

func (s *UserService) RemoveUser(ctx context.Context, actorRole domain.Role, actorClientID string, targetID string) error {
	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if domain.IsClientRole(actorRole) && target.ClientID != actorClientID {
		return domain.ErrForbidden
	}

	if err := s.users.Delete(ctx, targetID); err != nil {
		return err
	}
	s.log.Info().Str("user_id", targetID).Msg("user removed")
	return nil
}
