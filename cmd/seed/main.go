// seed inserts demo accounts for local and demo deployments.
// Idempotent: skips inserting when the demo admin already exists.
package main

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pulsemark/agency-platform/internal/core/domain"
	mongodb "github.com/pulsemark/agency-platform/internal/infrastructure/db/mongo"
	"github.com/pulsemark/agency-platform/internal/pkg/config"
	"github.com/pulsemark/agency-platform/pkg/logger"
)

const (
	demoPassword = "demo12345"
	demoClientID = "client_001"
)

type demoAccount struct {
	name     string
	email    string
	role     domain.Role
	clientID string
}

var demoAccounts = []demoAccount{
	{"Avery Admin", "admin@demo.agency", domain.RoleAgencyAdmin, ""},
	{"Sam Staff", "staff@demo.agency", domain.RoleAgencyStaff, ""},
	{"Casey Client", "client-admin@demo.agency", domain.RoleClientAdmin, demoClientID},
	{"Riley Reviewer", "client-user@demo.agency", domain.RoleClientUser, demoClientID},
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes failed")
	}

	if _, err := users.FindByEmail(ctx, demoAccounts[0].email); err == nil {
		log.Info().Msg("seed already applied, skipping")
		return
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		log.Fatal().Err(err).Msg("seed check failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash password failed")
	}

	now := time.Now().UTC()
	for _, acct := range demoAccounts {
		created, err := users.Create(ctx, &domain.User{
			Name:                   acct.name,
			Email:                  acct.email,
			PasswordHash:           string(hash),
			Role:                   acct.role,
			ClientID:               acct.clientID,
			HasCompletedOnboarding: true,
			CreatedAt:              now,
			UpdatedAt:              now,
		})
		if err != nil {
			log.Fatal().Err(err).Str("email", acct.email).Msg("create demo account failed")
		}
		log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("demo account created")
	}

	log.Info().Msg("seed complete")
}
