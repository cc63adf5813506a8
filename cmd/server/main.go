package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pulsemark/agency-platform/internal/api"
	"github.com/pulsemark/agency-platform/internal/api/metrics"
	"github.com/pulsemark/agency-platform/internal/core/mockdata"
	"github.com/pulsemark/agency-platform/internal/core/ports"
	"github.com/pulsemark/agency-platform/internal/core/service"
	"github.com/pulsemark/agency-platform/internal/core/session"
	"github.com/pulsemark/agency-platform/internal/infrastructure/db/memory"
	mongodb "github.com/pulsemark/agency-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/pulsemark/agency-platform/internal/infrastructure/db/redis"
	"github.com/pulsemark/agency-platform/internal/infrastructure/queue"
	"github.com/pulsemark/agency-platform/internal/pkg/config"
	"github.com/pulsemark/agency-platform/pkg/logger"
)

const tokenTTL = 24 * time.Hour

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Mongo ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	approvalRepo := mongodb.NewApprovalRepository(db)

	for _, idx := range []interface{ EnsureIndexes(context.Context) error }{
		userRepo, projectRepo, approvalRepo,
	} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("ensure indexes failed")
		}
	}

	// --- KV store: Redis when configured, in-memory otherwise ---
	// Session mirrors expire with their tokens; everything else is unexpiring.
	var kv, sessionKV ports.KeyValueStore
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect failed")
		}
		defer rdb.Close()
		kv = redisdb.NewKVStore(rdb)
		sessionKV = redisdb.NewSessionStore(rdb, tokenTTL)
	} else {
		log.Warn().Msg("REDIS_ADDR not set, using in-memory key-value store")
		kv = memory.NewKVStore()
		sessionKV = kv
	}

	// --- Mock data layer ---
	gen := mockdata.New(cfg.Mock.Seed)
	sim := mockdata.NewSimulator(mockdata.SimulatorOptions{
		Seed:        cfg.Mock.Seed,
		FailureRate: cfg.Mock.FailureRate,
		BaseLatency: cfg.Mock.BaseLatency,
		Jitter:      cfg.Mock.Jitter,
		OnFailure:   func() { metrics.MockFailuresTotal.Inc() },
	})

	// --- Services ---
	sessions := session.NewStore(sessionKV)
	authService := service.NewAuthService(userRepo, sessions, cfg.JWTSecret, tokenTTL, cfg.DemoMode, log)
	notificationService := service.NewNotificationService(kv, log)

	dispatcher := queue.NewDispatcher(cfg.NotificationWorkers, notificationService, log)
	dispatcher.Start(ctx)

	projectService := service.NewProjectService(projectRepo, log)
	approvalService := service.NewApprovalService(approvalRepo, dispatcher, log)
	dashboardService := service.NewDashboardService(gen, sim, projectRepo, approvalRepo, notificationService, log)
	contentService := service.NewContentService(gen, sim, dispatcher, log)
	onboardingService := service.NewOnboardingService(kv, userRepo, authService, log)
	userService := service.NewUserService(userRepo, log)

	e := api.NewRouter(api.Services{
		Auth:        authService,
		Projects:    projectService,
		Approvals:   approvalService,
		Dashboard:   dashboardService,
		Content:     contentService,
		Onboarding:  onboardingService,
		Users:       userService,
		UserRepo:    userRepo,
		MongoDB:     db,
		RedisClient: rdb,
	}, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Bool("demo_mode", cfg.DemoMode).Msg("http server starting")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
