package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"logistics/cmd"
	"logistics/internal/adapters/out/backend"
	"logistics/internal/core/application/notification"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HTTP_PORT", "BACKEND_URL", "BACKEND_TIMEOUT", "BACKEND_JWT_SECRET", "SESSION_BACKEND",
	"SESSION_FILE_DIR", "AGENT_ID", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "DB_HOST",
	"DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "TOAST_TTL", "LOG_LEVEL",
}

// clearEnv blanks every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "http://localhost:3000", cfg.BackendURL)
	assert.Equal(t, backend.DefaultTimeout, cfg.BackendTimeout)
	assert.Equal(t, cmd.SessionBackendFile, cfg.SessionBackend)
	assert.Equal(t, cmd.DefaultAgentID, cfg.AgentID)
	assert.Equal(t, notification.DefaultTTL, cfg.ToastTTL)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	clearEnv(t)
	for _, k := range configKeys {
		require.NoError(t, os.Unsetenv(k))
	}

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"BACKEND_URL=https://api.example.com\n"+
			"BACKEND_TIMEOUT=3s\n"+
			"SESSION_BACKEND=Redis\n"+
			"REDIS_DB=2\n"+
			"TOAST_TTL=1500ms\n"+
			"AGENT_ID=kiosk-1\n",
	), 0o600))

	cfg, err := cmd.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.BackendURL)
	assert.Equal(t, 3*time.Second, cfg.BackendTimeout)
	assert.Equal(t, cmd.SessionBackendRedis, cfg.SessionBackend)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 1500*time.Millisecond, cfg.ToastTTL)
	assert.Equal(t, "kiosk-1", cfg.AgentID)
}

func TestLoadConfig_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("BACKEND_TIMEOUT", "soon")
	t.Setenv("REDIS_DB", "two")
	t.Setenv("SESSION_BACKEND", "etcd")

	_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "BACKEND_TIMEOUT")
	assert.Contains(t, err.Error(), "REDIS_DB")
	assert.Contains(t, err.Error(), "SESSION_BACKEND")
}
