package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"logistics/internal/adapters/out/backend"
	"logistics/internal/core/application/notification"
	"logistics/internal/pkg/errs"

	"github.com/joho/godotenv"
)

// Session persistence backends.
const (
	SessionBackendFile     = "file"
	SessionBackendRedis    = "redis"
	SessionBackendPostgres = "postgres"
)

// DefaultAgentID names the session slot used when AGENT_ID is unset.
const DefaultAgentID = "default"

type Config struct {
	HTTPPort string

	BackendURL       string
	BackendTimeout   time.Duration
	BackendJWTSecret string

	SessionBackend string
	SessionFileDir string
	AgentID        string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	ToastTTL time.Duration
	LogLevel string
}

// LoadConfig reads the environment after loading the given .env files. Missing files
// are skipped; with no files given, ".env" is tried.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var parseErrs []error
	duration := func(key string, fallback time.Duration) time.Duration {
		raw := getEnv(key, "")
		if raw == "" {
			return fallback
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause(key, err))
			return fallback
		}
		return d
	}
	integer := func(key string, fallback int) int {
		raw := getEnv(key, "")
		if raw == "" {
			return fallback
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause(key, err))
			return fallback
		}
		return n
	}

	cfg := Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		BackendURL:       getEnv("BACKEND_URL", "http://localhost:3000"),
		BackendTimeout:   duration("BACKEND_TIMEOUT", backend.DefaultTimeout),
		BackendJWTSecret: getEnv("BACKEND_JWT_SECRET", ""),
		SessionBackend:   strings.ToLower(getEnv("SESSION_BACKEND", SessionBackendFile)),
		SessionFileDir:   getEnv("SESSION_FILE_DIR", ""),
		AgentID:          getEnv("AGENT_ID", DefaultAgentID),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          integer("REDIS_DB", 0),
		DBHost:           getEnv("DB_HOST", ""),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", ""),
		DBPassword:       getEnv("DB_PASSWORD", ""),
		DBName:           getEnv("DB_NAME", ""),
		DBSslMode:        getEnv("DB_SSLMODE", "disable"),
		ToastTTL:         duration("TOAST_TTL", notification.DefaultTTL),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}

	if err := errors.Join(append(parseErrs, cfg.Validate())...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that have no usable default.
func (c Config) Validate() error {
	var problems []error
	if strings.TrimSpace(c.BackendURL) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("BACKEND_URL"))
	}
	if strings.TrimSpace(c.AgentID) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("AGENT_ID"))
	}
	switch c.SessionBackend {
	case SessionBackendFile, SessionBackendRedis, SessionBackendPostgres:
	default:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"SESSION_BACKEND",
			fmt.Errorf("%q is not one of file, redis, postgres", c.SessionBackend),
		))
	}
	return errors.Join(problems...)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}
