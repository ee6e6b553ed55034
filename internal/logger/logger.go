package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/auto-dns/docker-indicator/internal/config"
	"github.com/rs/zerolog"
)

// SetupLogger builds the process logger writing human-readable lines to out.
// An unknown level falls back to INFO.
func SetupLogger(cfg *config.LoggingConfig, out io.Writer) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown-host"
	}

	return zerolog.New(consoleWriter).
		Level(level).
		With().
		Timestamp().
		Caller().
		Str("service", "docker_indicator").
		Str("host", hostname).
		Logger()
}
