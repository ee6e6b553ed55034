package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/auto-dns/docker-indicator/internal/config"
	"github.com/auto-dns/docker-indicator/internal/dispatch"
	"github.com/auto-dns/docker-indicator/internal/domain"
	"github.com/auto-dns/docker-indicator/internal/event"
	"github.com/auto-dns/docker-indicator/internal/menu"
	"github.com/rs/zerolog"
)

// Engine coordinates the event listener, the UI loop and the reconciler.
type Engine struct {
	logger     zerolog.Logger
	cfg        *config.AppConfig
	loop       *dispatch.Loop
	listener   *event.Listener
	reconciler *Reconciler
	notifier   Notifier
	onQuit     func()

	// ctx is set by Run before any task executes and only read on the loop.
	ctx      context.Context
	quitOnce sync.Once
}

// NewEngine wires the components together. onQuit is invoked on the UI loop
// once shutdown has finished, typically to stop the tray.
func NewEngine(logger zerolog.Logger, cfg *config.AppConfig, cli DockerClient, view View, notifier Notifier, onQuit func()) *Engine {
	e := &Engine{
		logger:   logger,
		cfg:      cfg,
		loop:     dispatch.NewLoop(logger.With().Str("component", "ui_loop").Logger()),
		notifier: notifier,
		onQuit:   onQuit,
		ctx:      context.Background(),
	}

	m := menu.New(nil, []menu.Item{
		{Kind: menu.KindAction, Label: "Stop all", Tooltip: "Stop all running containers", Handler: e.StopAll},
		{Kind: menu.KindAction, Label: "Refresh", Tooltip: "Reload the container list", Handler: e.Refresh},
		{Kind: menu.KindAction, Label: "About", Tooltip: fmt.Sprintf("About %s", cfg.Name), Handler: e.About},
		{Kind: menu.KindAction, Label: "Quit", Tooltip: fmt.Sprintf("Quit %s", cfg.Name), Handler: e.Quit},
	})
	e.reconciler = NewReconciler(cli, m, view, notifier, logger.With().Str("component", "reconciler").Logger())

	dispatcher := dispatch.New(e.loop, e.HandleEvent)
	e.listener = event.NewListener(cli, dispatcher.Forward, logger.With().Str("component", "listener").Logger())

	return e
}

// Actions returns the static entries shown after the separator.
func (e *Engine) Actions() []menu.Item {
	return e.reconciler.Menu().Trailing()
}

// Post schedules fn on the UI loop.
func (e *Engine) Post(fn func()) error {
	return e.loop.Post(fn)
}

// Run performs the initial reconciliation, starts the listener goroutine and
// then runs the UI loop on the calling goroutine until Quit. Cancelling ctx
// requests the same shutdown as the Quit entry.
func (e *Engine) Run(ctx context.Context) error {
	e.logger.Info().Msg("Starting engine")
	e.ctx = context.WithoutCancel(ctx)

	if err := e.loop.Post(e.Refresh); err != nil {
		return err
	}

	go func() {
		_ = e.listener.Run(e.ctx)
	}()

	go func() {
		select {
		case <-ctx.Done():
			e.logger.Info().Msg("Context cancelled, quitting")
			e.RequestQuit()
		case <-e.loop.Done():
		}
	}()

	return e.loop.Run(context.Background())
}

// HandleEvent runs on the UI loop for every event the listener accepted.
func (e *Engine) HandleEvent(ev domain.RawEvent) {
	e.logger.Debug().Str("status", string(ev.Status)).Str("container", ev.Name()).Msg("Handling docker event")
	e.reconcile(&ev)
}

func (e *Engine) Refresh() {
	e.reconcile(nil)
}

func (e *Engine) reconcile(ev *domain.RawEvent) {
	if err := e.reconciler.Reconcile(e.ctx, ev); err != nil {
		e.logger.Error().Err(err).Msg("Reconciliation failed")
	}
}

func (e *Engine) StopAll() {
	e.reconciler.StopAll(e.ctx)
}

func (e *Engine) About() {
	text := fmt.Sprintf("%s %s", e.cfg.Name, e.cfg.Version)
	if err := e.notifier.Message(text); err != nil {
		e.logger.Warn().Err(err).Msg("Failed to show about notification")
	}
}

// Quit shuts the engine down. It runs on the UI loop.
func (e *Engine) Quit() {
	e.quitOnce.Do(func() {
		e.Shutdown(e.cfg.ShutdownTimeout)
		if e.onQuit != nil {
			e.onQuit()
		}
	})
}

// RequestQuit schedules Quit from any goroutine. If the loop is already gone
// the shutdown runs inline.
func (e *Engine) RequestQuit() {
	if err := e.loop.Post(e.Quit); err != nil {
		e.Quit()
	}
}

// Shutdown sets the listener's termination flag and waits up to timeout for it
// to exit, then closes the UI loop. It reports whether the listener was joined.
// A listener parked on a quiet stream is abandoned; it cannot hold the process.
func (e *Engine) Shutdown(timeout time.Duration) bool {
	e.logger.Info().Msg("Shutting down...")
	e.listener.Terminate()

	joined := true
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-e.listener.Done():
		e.logger.Debug().Msg("Listener exited")
	case <-timer.C:
		joined = false
		e.logger.Warn().Dur("timeout", timeout).Msg("Listener did not exit in time, continuing shutdown")
	}

	e.loop.Close()
	return joined
}

// Listener exposes the event listener, mainly for diagnostics.
func (e *Engine) Listener() *event.Listener {
	return e.listener
}
