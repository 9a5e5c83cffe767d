package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"KLS_APP_NAME",
	"KLS_APP_ENV",
	"KLS_APP_PORT",
	"KLS_DATABASE_HOST",
	"KLS_DATABASE_PORT",
	"KLS_DATABASE_USER",
	"KLS_DATABASE_PASSWORD",
	"KLS_DATABASE_DBNAME",
	"KLS_DATABASE_SSLMODE",
	"KLS_DATABASE_MAX_OPEN_CONNS",
	"KLS_DATABASE_MAX_IDLE_CONNS",
	"KLS_DOMAIN_BASE",
	"KLS_TELEGRAM_ENABLED",
	"KLS_TELEGRAM_BOT_TOKEN",
	"KLS_SERVICES_CONTENT_URL",
	"KLS_HTTP_CORS_ALLOW_ORIGINS",
	"KLS_SCHEDULER_ENABLED",
}

func withCleanEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvVars {
		old, had := os.LookupEnv(k)
		os.Unsetenv(k)
		if had {
			t.Cleanup(func() { os.Setenv(k, old) })
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	withCleanEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "klassifikator", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Empty(t, cfg.App.Port)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "klassifikator", cfg.Database.DBName)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)

	assert.Equal(t, "volzhck.ru", cfg.Domain.Base)
	assert.Equal(t, "https://api.telegram.org/bot", cfg.Telegram.APIURL)
	assert.Equal(t, "http://localhost:8082", cfg.Services.ContentURL)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, 30*time.Minute, cfg.Scheduler.CheckInterval)
	assert.Equal(t, 2*time.Hour, cfg.Cache.LandingTTL)
}

func TestLoad_SchedulerOptOut(t *testing.T) {
	withCleanEnv(t)
	os.Setenv("KLS_SCHEDULER_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Scheduler.Enabled)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	withCleanEnv(t)
	os.Setenv("KLS_APP_NAME", "landing-service")
	os.Setenv("KLS_APP_PORT", "8081")
	os.Setenv("KLS_DATABASE_HOST", "db.internal")
	os.Setenv("KLS_DATABASE_PASSWORD", "secret")
	os.Setenv("KLS_DOMAIN_BASE", "example.ru")
	os.Setenv("KLS_SERVICES_CONTENT_URL", "http://content:8082")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "landing-service", cfg.App.Name)
	assert.Equal(t, "8081", cfg.App.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "example.ru", cfg.Domain.Base)
	assert.Equal(t, "http://content:8082", cfg.Services.ContentURL)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("rejects MaxIdleConns above MaxOpenConns", func(t *testing.T) {
		withCleanEnv(t)
		os.Setenv("KLS_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("KLS_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
	})

	t.Run("zero MaxOpenConns uses default", func(t *testing.T) {
		withCleanEnv(t)
		os.Setenv("KLS_DATABASE_MAX_OPEN_CONNS", "0")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	t.Run("requires database password", func(t *testing.T) {
		withCleanEnv(t)
		os.Setenv("KLS_APP_ENV", "production")
		os.Setenv("KLS_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("rejects disabled SSL", func(t *testing.T) {
		withCleanEnv(t)
		os.Setenv("KLS_APP_ENV", "production")
		os.Setenv("KLS_DATABASE_PASSWORD", "secret")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")
	})

	t.Run("requires bot token when telegram enabled", func(t *testing.T) {
		withCleanEnv(t)
		os.Setenv("KLS_APP_ENV", "production")
		os.Setenv("KLS_DATABASE_PASSWORD", "secret")
		os.Setenv("KLS_DATABASE_SSLMODE", "require")
		os.Setenv("KLS_TELEGRAM_ENABLED", "true")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telegram.bot_token")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "klassifikator",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()

	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "p%40ss%2Fword")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
}
