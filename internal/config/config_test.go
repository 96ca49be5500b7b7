package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("DATABASE_URL", "postgres://localhost/kryva")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("KAFKA_BROKERS", "localhost:9092")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "kryva", cfg.MongoDatabase)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 5*time.Minute, cfg.RecentLoginWindow)
	assert.Equal(t, 3*time.Second, cfg.SuccessMessageTTL)
	assert.Equal(t, 60, cfg.RateLimitRequests)
	assert.False(t, cfg.TracingEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_ADDR", "8081")
	t.Setenv("RECENT_LOGIN_WINDOW", "10m")
	t.Setenv("RATE_LIMIT_REQUESTS", "5")
	t.Setenv("TRACING_ENABLED", "TRUE")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Minute, cfg.RecentLoginWindow)
	assert.Equal(t, 5, cfg.RateLimitRequests)
	assert.True(t, cfg.TracingEnabled)
}

func TestLoad_Errors(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET", "")
	t.Setenv("RATE_LIMIT_REQUESTS", "many")
	t.Setenv("SUCCESS_MESSAGE_TTL", "soon")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "RATE_LIMIT_REQUESTS")
	assert.Contains(t, err.Error(), "SUCCESS_MESSAGE_TTL")
}

func TestFixPort(t *testing.T) {
	assert.Equal(t, ":8080", fixPort("8080"))
	assert.Equal(t, "0.0.0.0:8080", fixPort("0.0.0.0:8080"))
	assert.Equal(t, "", fixPort(""))
}
