package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(
		"JWT_SECRET=dotenv-secret\nPUBSUB_DRIVER=redis\nSSE_KEEPALIVE=5s\nDRAIN_MODE=true\n",
	), 0o600))

	t.Setenv("JWT_SECRET", "")
	t.Setenv("PUBSUB_DRIVER", "")
	t.Setenv("SSE_KEEPALIVE", "")
	t.Setenv("DRAIN_MODE", "")

	cfg, err := Load(dir, "1.2.3")
	require.NoError(t, err)

	require.Equal(t, "dotenv-secret", cfg.JWTSecret)
	require.Equal(t, "redis", cfg.PubSubDriver)
	require.Equal(t, 5*time.Second, cfg.SSEKeepAlive)
	require.Equal(t, "agora", cfg.MongoDatabase)
	require.Equal(t, "1.2.3", cfg.Version)

	require.Equal(t, []byte("dotenv-secret"), JWT_SECRET)
	require.True(t, DRAIN_MODE)
	require.Equal(t, "1.2.3", VERSION)
}

func TestLoadWithoutDotEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("PUBSUB_DRIVER", "local")
	t.Setenv("SSE_KEEPALIVE", "30s")

	cfg, err := Load(t.TempDir(), "dev")
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.JWTSecret)
	require.Equal(t, 30*time.Second, cfg.SSEKeepAlive)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PUBSUB_DRIVER", "kafka")
	t.Setenv("SSE_KEEPALIVE", "30s")

	_, err := Load(t.TempDir(), "dev")
	require.ErrorContains(t, err, "PUBSUB_DRIVER")
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("PUBSUB_DRIVER", "local")
	t.Setenv("SSE_KEEPALIVE", "30s")

	_, err := Load(t.TempDir(), "dev")
	require.Error(t, err)
}
