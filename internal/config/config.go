// Package config reads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// ───── Infrastructure ─────
	MongoURI      string
	MongoDatabase string
	DatabaseURL   string
	RedisAddr     string
	KafkaBrokers  string

	// ───── Runtime ─────
	HTTPAddr       string
	ObsHTTPAddr    string
	ServiceName    string
	LogLevel       string
	RequestTimeout time.Duration

	// ───── JWT Security ─────
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	// ───── Account ─────
	RecentLoginWindow time.Duration
	SuccessMessageTTL time.Duration

	// ───── Rate Limiting ─────
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// ───── Observability ─────
	TracingEnabled bool
	JaegerURL      string
}

// LoadDotEnv loads .env from the working directory when present. Variables
// already set in the environment win.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// Load reads the configuration. Every missing or malformed variable is
// reported in the returned error.
func Load() (Config, error) {
	e := &env{}
	cfg := Config{
		// Infra
		MongoURI:      e.mustEnv("MONGO_URI"),
		MongoDatabase: e.getEnv("MONGO_DATABASE", "kryva"),
		DatabaseURL:   e.mustEnv("DATABASE_URL"),
		RedisAddr:     e.mustEnv("REDIS_ADDR"),
		KafkaBrokers:  e.mustEnv("KAFKA_BROKERS"),

		// Runtime
		HTTPAddr:       fixPort(e.getEnv("HTTP_ADDR", ":8080")),
		ObsHTTPAddr:    fixPort(e.getEnv("OBS_HTTP_ADDR", ":9090")),
		ServiceName:    e.getEnv("SERVICE_NAME", "kryva-account"),
		LogLevel:       e.getEnv("LOG_LEVEL", "info"),
		RequestTimeout: e.getEnvDuration("REQUEST_TIMEOUT", 15*time.Second),

		// JWT
		JWTSecret:   e.mustEnv("JWT_SECRET"),
		JWTIssuer:   e.getEnv("JWT_ISSUER", "kryva-auth"),
		JWTAudience: e.getEnv("JWT_AUDIENCE", "kryva-clients"),

		// Account
		RecentLoginWindow: e.getEnvDuration("RECENT_LOGIN_WINDOW", 5*time.Minute),
		SuccessMessageTTL: e.getEnvDuration("SUCCESS_MESSAGE_TTL", 3*time.Second),

		// Rate limiting
		RateLimitRequests: e.getEnvInt("RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow:   e.getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),

		// Observability
		TracingEnabled: e.getEnvBool("TRACING_ENABLED", false),
		JaegerURL:      e.getEnv("JAEGER_URL", "http://jaeger:14268/api/traces"),
	}
	return cfg, errors.Join(e.errs...)
}

func fixPort(port string) string {
	if port != "" && !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}

type env struct {
	errs []error
}

func (e *env) mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		e.errs = append(e.errs, fmt.Errorf("missing required env: %s", k))
	}
	return v
}

func (e *env) getEnv(k, d string) string {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	return v
}

func (e *env) getEnvInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("invalid int env %s: %w", k, err))
		return d
	}
	return i
}

func (e *env) getEnvBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	return strings.ToLower(v) == "true"
}

func (e *env) getEnvDuration(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}

	dur, err := time.ParseDuration(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("invalid duration env %s: %w", k, err))
		return d
	}
	return dur
}
