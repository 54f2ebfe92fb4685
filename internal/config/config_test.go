package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Contains(t, cfg.DatabaseURL, "postgres://")
	assert.Equal(t, 24*time.Hour, cfg.SessionDuration)
	assert.False(t, cfg.CookieSecure)
	assert.NotEmpty(t, cfg.MigrationsPath)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://app:app@db:5432/app?sslmode=disable")
	t.Setenv("SECRET_KEY", "fixed-secret")
	t.Setenv("SESSION_DURATION", "2h")
	t.Setenv("COOKIE_SECURE", "true")

	cfg := LoadConfig()

	assert.Equal(t, 9000, cfg.ServerPort)
	assert.Equal(t, "postgres://app:app@db:5432/app?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "fixed-secret", cfg.SecretKey)
	assert.Equal(t, 2*time.Hour, cfg.SessionDuration)
	assert.True(t, cfg.CookieSecure)
}

func TestLoadConfig_GeneratedSecretRotates(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	first := LoadConfig()
	second := LoadConfig()

	assert.NotEmpty(t, first.SecretKey)
	assert.NotEmpty(t, second.SecretKey)
	assert.NotEqual(t, first.SecretKey, second.SecretKey)
}
