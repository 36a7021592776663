package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PASETO_KEY", strings.Repeat("k", 32))
}

func TestLoadDefaults(t *testing.T) {
	setValidEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "dev", cfg.Server.Env)
	assert.True(t, cfg.Server.IsDevelopment())
	assert.Equal(t, TokenDriverPaseto, cfg.Auth.TokenDriver)
	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenDuration)
}

func TestLoadRejectsShortPasetoKey(t *testing.T) {
	t.Setenv("PASETO_KEY", "short")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadJWTDriver(t *testing.T) {
	t.Setenv("TOKEN_DRIVER", "jwt")
	t.Setenv("JWT_SECRET", "some-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, TokenDriverJWT, cfg.Auth.TokenDriver)
	assert.Equal(t, []byte("some-secret"), cfg.Auth.JWTSecret)
}

func TestLoadJWTDriverRequiresSecret(t *testing.T) {
	t.Setenv("TOKEN_DRIVER", "jwt")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("TOKEN_DRIVER", "cookies")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	setValidEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ACCESS_TOKEN_DURATION", "3600")
	t.Setenv("TRUSTED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.TrustedOrigins)
}

func TestDatabaseConnectionString(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.example.com",
		Port:     "5433",
		User:     "app",
		Password: "secret",
		DBName:   "tasks",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.example.com port=5433 user=app password=secret dbname=tasks sslmode=require",
		cfg.ConnectionString(),
	)
}

func TestRedisAddress(t *testing.T) {
	cfg := RedisConfig{Host: "cache.example.com", Port: "6380"}
	assert.Equal(t, "cache.example.com:6380", cfg.Address())
}
