package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pulsemark/agency-platform/internal/core/domain"
	"github.com/pulsemark/agency-platform/internal/core/ports"
)

const (
	teamMembersKeyPrefix = "team_members_"
	clientsKeyPrefix     = "clients_"
)

// OnboardingService stores the team members and clients a user entered
// during onboarding under per-user keys in the key-value store, and flips
// the account's onboarding flag. A failing store degrades to "nothing
// saved" — the flow itself never aborts on storage errors.
type OnboardingService struct {
	kv    ports.KeyValueStore
	users ports.UserRepository
	auth  ports.AuthService
	log   zerolog.Logger
}

func NewOnboardingService(kv ports.KeyValueStore, users ports.UserRepository, auth ports.AuthService, log zerolog.Logger) *OnboardingService {
	return &OnboardingService{kv: kv, users: users, auth: auth, log: log}
}

func (s *OnboardingService) Save(ctx context.Context, userID string, data ports.OnboardingData) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}

	if err := s.store(ctx, teamMembersKeyPrefix+userID, data.TeamMembers); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to store team members")
	}
	if err := s.store(ctx, clientsKeyPrefix+userID, data.Clients); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to store onboarding clients")
	}

	if _, err := s.auth.CompleteOnboarding(ctx, userID); err != nil {
		return fmt.Errorf("onboarding save: %w", err)
	}
	return nil
}

func (s *OnboardingService) Get(ctx context.Context, userID string) (*ports.OnboardingData, error) {
	data := &ports.OnboardingData{}

	if err := s.fetch(ctx, teamMembersKeyPrefix+userID, &data.TeamMembers); err != nil {
		return nil, err
	}
	if err := s.fetch(ctx, clientsKeyPrefix+userID, &data.Clients); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *OnboardingService) store(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, raw)
}

// fetch unmarshals the stored value into out. A missing key leaves out at
// its zero value (empty defaults, not an error).
func (s *OnboardingService) fetch(ctx context.Context, key string, out any) error {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil
		}
		return err
	}
	return json.Unmarshal(raw, out)
}
