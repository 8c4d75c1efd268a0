package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Sentiment Analysis API", cfg.App.Name)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "unknown", cfg.App.InstanceID)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "HS256", cfg.JWT.Algorithm)
	assert.Equal(t, 30, cfg.JWT.ExpiryMinutes)
	assert.Equal(t, "models/sentiment_model.json", cfg.Model.Path)
	assert.Equal(t, 50.0, cfg.RateLimit.GeneralRPS)
	assert.Equal(t, 100, cfg.RateLimit.GeneralBurst)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("INSTANCE_ID", "api-2")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_EXPIRY_MINUTES", "15")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("MODEL_PATH", "/opt/models/model.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "api-2", cfg.App.InstanceID)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 15, cfg.JWT.ExpiryMinutes)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "/opt/models/model.json", cfg.Model.Path)
}

func TestDatabaseDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "app",
		Password: "secret",
		DBName:   "sentiment",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=app password=secret dbname=sentiment sslmode=disable",
		db.DSN())
}
