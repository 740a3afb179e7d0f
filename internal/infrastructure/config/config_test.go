package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	originalEnv := map[string]string{
		"NEXUS_APP_NAME":          os.Getenv("NEXUS_APP_NAME"),
		"NEXUS_APP_ENV":           os.Getenv("NEXUS_APP_ENV"),
		"NEXUS_APP_PORT":          os.Getenv("NEXUS_APP_PORT"),
		"NEXUS_DATABASE_HOST":     os.Getenv("NEXUS_DATABASE_HOST"),
		"NEXUS_DATABASE_PORT":     os.Getenv("NEXUS_DATABASE_PORT"),
		"NEXUS_DATABASE_PASSWORD": os.Getenv("NEXUS_DATABASE_PASSWORD"),
		"NEXUS_DATABASE_SSLMODE":  os.Getenv("NEXUS_DATABASE_SSLMODE"),
		"NEXUS_JWT_SECRET":        os.Getenv("NEXUS_JWT_SECRET"),
	}
	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "nexus", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "nexus", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, "nexus", cfg.JWT.Issuer)
		assert.Equal(t, 10, cfg.JWT.MaxRefreshCount)
		assert.Empty(t, cfg.HTTP.CORSAllowOrigins, "CORS origins must be opt-in")
	})

	t.Run("env vars override defaults", func(t *testing.T) {
		clearEnv()
		os.Setenv("NEXUS_APP_PORT", "9000")
		os.Setenv("NEXUS_DATABASE_HOST", "db.internal")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "db.internal", cfg.Database.Host)
	})

	t.Run("production requires a strong jwt secret", func(t *testing.T) {
		clearEnv()
		os.Setenv("NEXUS_APP_ENV", "production")
		os.Setenv("NEXUS_DATABASE_PASSWORD", "secret")
		os.Setenv("NEXUS_DATABASE_SSLMODE", "require")
		os.Setenv("NEXUS_JWT_SECRET", "short")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})

	t.Run("production rejects disabled ssl", func(t *testing.T) {
		clearEnv()
		os.Setenv("NEXUS_APP_ENV", "production")
		os.Setenv("NEXUS_DATABASE_PASSWORD", "secret")
		os.Setenv("NEXUS_JWT_SECRET", "0123456789abcdef0123456789abcdef")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "nexus",
		Password: "p@ss/word",
		DBName:   "nexus",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.NotContains(t, dsn, "p@ss/word", "password must be URL-escaped")
}
