package notify

import (
	"fmt"
	"strings"

	"github.com/auto-dns/docker-indicator/internal/config"
	"github.com/rs/zerolog"
)

// NewBackend builds the configured backend. A D-Bus backend that cannot reach
// the session bus falls back to beeep.
func NewBackend(cfg *config.NotifyConfig, appName string, logger zerolog.Logger) (Backend, error) {
	switch strings.ToLower(cfg.Backend) {
	case config.NotifyBackendDBus:
		b, err := NewDBusBackend(appName)
		if err != nil {
			logger.Warn().Err(err).Msg("D-Bus notifications unavailable, falling back to beeep")
			return NewBeeepBackend(appName), nil
		}
		return b, nil
	case config.NotifyBackendBeeep:
		return NewBeeepBackend(appName), nil
	case config.NotifyBackendNone:
		return NewLogBackend(logger), nil
	}
	return nil, fmt.Errorf("unsupported notify backend %q", cfg.Backend)
}
