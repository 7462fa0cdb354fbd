package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "BOARD_DB_PATH", "BOARD_UPLOAD_DIR", "BOARD_JWT_SECRET",
		"BOARD_TOKEN_TTL", "BOARD_BCRYPT_COST", "BOARD_MAX_UPLOAD_SIZE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, "data/badger", cfg.DBPath)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, uint64(10_000_000), cfg.MaxUploadSize)
	assert.True(t, cfg.UsingDefaultSecret())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("BOARD_DB_PATH", "/tmp/board")
	t.Setenv("BOARD_JWT_SECRET", "s3cret")
	t.Setenv("BOARD_TOKEN_TTL", "15m")
	t.Setenv("BOARD_BCRYPT_COST", "12")
	t.Setenv("BOARD_MAX_UPLOAD_SIZE", "2 MiB")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "/tmp/board", cfg.DBPath)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, uint64(2<<20), cfg.MaxUploadSize)
	assert.False(t, cfg.UsingDefaultSecret())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non numeric port", key: "PORT", value: "http"},
		{name: "bad duration", key: "BOARD_TOKEN_TTL", value: "soon"},
		{name: "negative duration", key: "BOARD_TOKEN_TTL", value: "-1h"},
		{name: "bad cost", key: "BOARD_BCRYPT_COST", value: "ten"},
		{name: "cost out of range", key: "BOARD_BCRYPT_COST", value: "2"},
		{name: "bad size", key: "BOARD_MAX_UPLOAD_SIZE", value: "lots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
