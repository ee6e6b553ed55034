package app

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/auto-dns/docker-indicator/internal/assets"
	"github.com/auto-dns/docker-indicator/internal/config"
	"github.com/auto-dns/docker-indicator/internal/core"
	"github.com/auto-dns/docker-indicator/internal/notify"
	"github.com/auto-dns/docker-indicator/internal/tray"
	"github.com/docker/docker/api/types/system"
	dockerCli "github.com/docker/docker/client"
	"github.com/rs/zerolog"
)

const connectTimeout = 5 * time.Second

type App struct {
	cfg          *config.Config
	dockerClient *dockerCli.Client
	notifier     *notify.Emitter
	tray         *tray.Tray
	engine       *core.Engine
	logger       zerolog.Logger
}

// New creates a new App by wiring up all dependencies. Failing to reach the
// Docker daemon is fatal.
func New(cfg *config.Config, logger zerolog.Logger) (*App, error) {
	opts := []dockerCli.Opt{dockerCli.FromEnv, dockerCli.WithAPIVersionNegotiation()}
	if cfg.Docker.Host != "" {
		opts = append(opts, dockerCli.WithHost(cfg.Docker.Host))
	}
	dockerClient, err := dockerCli.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	info, err := dockerClient.Info(ctx)
	if err != nil {
		_ = dockerClient.Close()
		return nil, fmt.Errorf("failed to connect to docker daemon: %w", err)
	}
	logDaemonInfo(logger, info)

	iconPath := cfg.Notify.Icon
	if iconPath == "" {
		if iconPath, err = assets.WriteIcon(cfg.App.ID); err != nil {
			logger.Warn().Err(err).Msg("Notifications will have no icon")
		}
	}

	backend, err := notify.NewBackend(&cfg.Notify, cfg.App.ID, logger)
	if err != nil {
		_ = dockerClient.Close()
		return nil, err
	}
	emitter := notify.NewEmitter(backend, cfg.App.Name, iconPath, logger.With().Str("component", "notify").Logger())

	t := tray.New(cfg.App.Name, assets.Icon, cfg.App.MenuSlots, logger.With().Str("component", "tray").Logger())
	engine := core.NewEngine(logger, &cfg.App, dockerClient, t, emitter, t.Quit)

	return &App{
		cfg:          cfg,
		dockerClient: dockerClient,
		notifier:     emitter,
		tray:         t,
		engine:       engine,
		logger:       logger,
	}, nil
}

func logDaemonInfo(logger zerolog.Logger, info system.Info) {
	logger.Info().Msg("Connected to Docker daemon")
	logger.Info().
		Str("name", info.Name).
		Str("server_version", info.ServerVersion).
		Str("os", info.OperatingSystem).
		Str("kernel", info.KernelVersion).
		Str("arch", info.Architecture).
		Int("containers", info.Containers).
		Int("running", info.ContainersRunning).
		Int("paused", info.ContainersPaused).
		Int("stopped", info.ContainersStopped).
		Int("images", info.Images).
		Msg("Docker daemon info")
}

// Run shows the tray and blocks until the user quits or ctx is cancelled.
// It must be called from the main goroutine.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("Application starting")

	engineErr := make(chan error, 1)
	var started atomic.Bool
	a.tray.Run(a.engine, func() {
		started.Store(true)
		go func() { engineErr <- a.engine.Run(ctx) }()
	}, func() {
		a.logger.Info().Msg("Tray exiting")
		a.engine.RequestQuit()
	})

	if !started.Load() {
		return nil
	}
	select {
	case err := <-engineErr:
		return err
	case <-time.After(2 * a.cfg.App.ShutdownTimeout):
		a.logger.Warn().Msg("Engine did not stop in time")
		return nil
	}
}

func (a *App) Close() error {
	var firstErr error
	if a.notifier != nil {
		if err := a.notifier.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close notifier: %w", err)
		}
	}
	if a.dockerClient != nil {
		if err := a.dockerClient.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close docker client: %w", err)
		}
	}
	return firstErr
}
