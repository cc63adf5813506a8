package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulsemark/agency-platform/internal/core/domain"
	"github.com/pulsemark/agency-platform/internal/core/ports"
	"github.com/pulsemark/agency-platform/internal/core/session"
)

// AuthService implements registration, login, onboarding completion, and the
// demo-only role switcher.
type AuthService struct {
	users     ports.UserRepository
	sessions  *session.Store
	jwtSecret string
	tokenTTL  time.Duration
	demoMode  bool
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions *session.Store, jwtSecret string, tokenTTL time.Duration, demoMode bool, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		demoMode:  demoMode,
		log:       log,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !input.Role.IsValid() {
		return nil, domain.ErrInvalidCredentials
	}
	// Client roles must carry a client identity; agency roles must not.
	if domain.IsClientRole(input.Role) && input.ClientID == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if domain.IsAgencyRole(input.Role) && input.ClientID != "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		ClientID:     input.ClientID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	if err := s.sessions.Set(ctx, user); err != nil {
		// Session mirroring is best effort; the JWT alone is sufficient.
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to mirror session")
	}

	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if err := s.sessions.Clear(ctx, userID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info().Str("user_id", userID).Msg("user logged out")
	return nil
}

func (s *AuthService) CompleteOnboarding(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.HasCompletedOnboarding {
		return user, nil
	}

	user.HasCompletedOnboarding = true
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("complete onboarding: %w", err)
	}

	if err := s.sessions.Set(ctx, user); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to refresh session")
	}
	return user, nil
}

// SwitchRole reassigns the account's role and issues a fresh token. Only
// available in demo mode; the flag is set at startup from configuration so
// production deployments cannot reach this path.
func (s *AuthService) SwitchRole(ctx context.Context, userID string, role domain.Role) (string, *domain.User, error) {
	if !s.demoMode {
		return "", nil, domain.ErrDemoModeDisabled
	}
	if !role.IsValid() {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", nil, err
	}

	user.Role = role
	if domain.IsAgencyRole(role) {
		user.ClientID = ""
	} else if user.ClientID == "" {
		// A client role needs a scope; pin the demo account to a sample client.
		user.ClientID = "client_001"
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return "", nil, fmt.Errorf("switch role: %w", err)
	}
	if err := s.sessions.Set(ctx, user); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to refresh session")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(role)).Msg("role switched")
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":       user.ID,
		"name":      user.Name,
		"role":      string(user.Role),
		"client_id": user.ClientID,
		"onboarded": user.HasCompletedOnboarding,
		"exp":       time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
