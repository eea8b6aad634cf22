package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment after an
// optional .env file.
type Config struct {
	GRPCPort int `env:"ATLAS_GRPC_PORT" envDefault:"50051"`
	HTTPPort int `env:"ATLAS_HTTP_PORT" envDefault:"8080"`

	RedisURL  string `env:"ATLAS_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	JournalDB string `env:"ATLAS_JOURNAL_DB" envDefault:"atlas-journal.db"`
	RulesFile string `env:"ATLAS_TRAVEL_RULES"` // Empty uses the built-in table

	JWTSecret string `env:"ATLAS_JWT_SECRET,required"`
	JWTIssuer string `env:"ATLAS_JWT_ISSUER"`

	AllowedOrigins []string      `env:"ATLAS_ALLOWED_ORIGINS" envSeparator:","`
	EventBuffer    int           `env:"ATLAS_EVENT_BUFFER" envDefault:"64"`
	ChangeBlock    time.Duration `env:"ATLAS_CHANGE_BLOCK" envDefault:"2s"`

	LogLevel  string `env:"ATLAS_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"ATLAS_LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"ATLAS_LOG_FILE"` // Empty logs to stderr
}

// loadConfig reads envFile when present, then parses the environment.
func loadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
