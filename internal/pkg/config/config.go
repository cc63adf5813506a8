package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// DemoMode unlocks the role switcher on demo deployments. Leave off in
	// production.
	DemoMode bool `env:"DEMO_MODE, default=false"`

	// NotificationWorkers sizes the notification dispatcher pool.
	NotificationWorkers int `env:"NOTIFICATION_WORKERS, default=8"`

	Mongo MongoConfig
	Redis RedisConfig
	Mock  MockConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=agency_platform"`
}

type RedisConfig struct {
	// Addr empty means no Redis: the KV port falls back to the in-memory store.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// MockConfig tunes the simulated upstream in front of the generated dataset.
type MockConfig struct {
	Seed        int64         `env:"MOCK_SEED,         default=42"`
	FailureRate float64       `env:"MOCK_FAILURE_RATE, default=0.05"`
	BaseLatency time.Duration `env:"MOCK_BASE_LATENCY, default=200ms"`
	Jitter      time.Duration `env:"MOCK_JITTER,       default=400ms"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
