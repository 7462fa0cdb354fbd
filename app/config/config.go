// Package config loads the process configuration from the environment once
// at startup. The result is passed explicitly to the components that need it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
)

// DefaultJWTSecret is used when BOARD_JWT_SECRET is unset. It is only fit for
// local development.
const DefaultJWTSecret = "your_jwt_secret"

// Config holds every tunable of the server.
type Config struct {
	Port          string        `validate:"required,numeric"`
	DBPath        string        `validate:"required"`
	UploadDir     string        `validate:"required"`
	JWTSecret     string        `validate:"required"`
	TokenTTL      time.Duration `validate:"gt=0"`
	BcryptCost    int           `validate:"min=4,max=31"`
	MaxUploadSize uint64        `validate:"gt=0"`
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// UsingDefaultSecret reports whether the development signing secret is active.
func (c *Config) UsingDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "5000"),
		DBPath:    getEnv("BOARD_DB_PATH", "data/badger"),
		UploadDir: getEnv("BOARD_UPLOAD_DIR", "uploads"),
		JWTSecret: getEnv("BOARD_JWT_SECRET", DefaultJWTSecret),
	}

	ttl, err := time.ParseDuration(getEnv("BOARD_TOKEN_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid BOARD_TOKEN_TTL: %v", err)
	}
	cfg.TokenTTL = ttl

	cost, err := strconv.Atoi(getEnv("BOARD_BCRYPT_COST", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid BOARD_BCRYPT_COST: %v", err)
	}
	cfg.BcryptCost = cost

	size, err := humanize.ParseBytes(getEnv("BOARD_MAX_UPLOAD_SIZE", "10 MB"))
	if err != nil {
		return nil, fmt.Errorf("invalid BOARD_MAX_UPLOAD_SIZE: %v", err)
	}
	cfg.MaxUploadSize = size

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %v", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
