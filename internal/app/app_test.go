package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/auto-dns/docker-indicator/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFailsWhenDaemonUnreachable(t *testing.T) {
	t.Setenv("DOCKER_HOST", "")
	t.Setenv("DOCKER_TLS_VERIFY", "")
	t.Setenv("DOCKER_CERT_PATH", "")
	t.Setenv("DOCKER_API_VERSION", "")

	cfg := &config.Config{
		App: config.AppConfig{
			ID:              "docker-indicator-test",
			Name:            "Docker Indicator",
			ShutdownTimeout: time.Second,
			MenuSlots:       4,
		},
		Docker: config.DockerConfig{Host: "unix://" + filepath.Join(t.TempDir(), "docker.sock")},
		Notify: config.NotifyConfig{Backend: config.NotifyBackendNone},
	}

	app, err := New(cfg, zerolog.Nop())

	require.Error(t, err)
	assert.Nil(t, app)
	assert.Contains(t, err.Error(), "failed to connect to docker daemon")
}
