package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "APP_ENV", "DB_DRIVER", "DATABASE_URL", "SQLITE_PATH", "JWT_SECRET", "JWT_ISSUER",
		"JWT_TTL_MINUTES", "CORS_ALLOWED_ORIGINS", "AUTH_MODE", "LOGIN_DELAY_MS", "LOGIN_RATE_PER_SEC", "LOGIN_RATE_BURST",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/hic")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddress())
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, AuthModeStore, cfg.AuthMode)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Equal(t, time.Second, cfg.LoginDelay)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadSQLiteNeedsNoDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOGIN_DELAY_MS", "0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "hic.db", cfg.SQLitePath)
	assert.Zero(t, cfg.LoginDelay)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]map[string]string{
		"missing secret":   {"DB_DRIVER": "sqlite"},
		"missing db url":   {"JWT_SECRET": "x"},
		"unknown driver":   {"JWT_SECRET": "x", "DB_DRIVER": "mysql"},
		"unknown authmode": {"JWT_SECRET": "x", "DB_DRIVER": "sqlite", "AUTH_MODE": "ldap"},
		"negative delay":   {"JWT_SECRET": "x", "DB_DRIVER": "sqlite", "LOGIN_DELAY_MS": "-5"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
