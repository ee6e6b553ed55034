package event

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/auto-dns/docker-indicator/internal/domain"
	"github.com/docker/docker/api/types/events"
	"github.com/docker/docker/api/types/filters"
	"github.com/rs/zerolog"
)

// Listener reads the daemon event stream for the lifetime of the application,
// drops uninteresting records and forwards the rest. It never touches UI state.
type Listener struct {
	logger  zerolog.Logger
	cli     dockerClient
	forward ForwardFunc

	started    atomic.Bool
	terminated atomic.Bool
	done       chan struct{}
	err        error
}

func NewListener(cli dockerClient, forward ForwardFunc, logger zerolog.Logger) *Listener {
	return &Listener{
		logger:  logger,
		cli:     cli,
		forward: forward,
		done:    make(chan struct{}),
	}
}

// Run blocks until the stream fails, forwarding fails, or a record arrives after
// Terminate was called. It is meant to be the body of a dedicated goroutine.
func (l *Listener) Run(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	defer close(l.done)

	l.err = l.run(ctx)
	if l.err != nil {
		l.logger.Error().Err(l.err).Msg("Docker event listener stopped")
	} else {
		l.logger.Info().Msg("Docker event listener terminated")
	}
	return l.err
}

func (l *Listener) run(ctx context.Context) error {
	l.logger.Debug().Msg("Docker event listener started")

	// Server-side narrowing only; the local filter stays authoritative.
	options := events.ListOptions{
		Filters: filters.NewArgs(filters.Arg("type", string(events.ContainerEventType))),
	}
	msgCh, errCh := l.cli.Events(ctx, options)

	for {
		select {
		case err, ok := <-errCh:
			if l.Terminated() {
				return nil
			}
			if !ok {
				return NewStreamError(nil)
			}
			return NewStreamError(err)
		case msg, ok := <-msgCh:
			if l.Terminated() {
				return nil
			}
			if !ok {
				return NewStreamError(nil)
			}

			ev := fromEventsMessage(msg)
			l.logger.Debug().Str("type", ev.Type).Str("status", string(ev.Status)).Str("name", ev.Name()).Msg("Docker event")

			if !domain.IsInteresting(ev) {
				continue
			}
			if err := l.forward(ev); err != nil {
				return fmt.Errorf("forwarding %s event for %q: %w", ev.Status, ev.Name(), err)
			}
		}
	}
}

// Terminate asks the listener to stop. The flag is only observed between
// received records, so a quiet stream keeps the goroutine parked.
func (l *Listener) Terminate() {
	l.terminated.Store(true)
}

func (l *Listener) Terminated() bool {
	return l.terminated.Load()
}

// Done is closed once Run has returned.
func (l *Listener) Done() <-chan struct{} {
	return l.done
}

// Err returns the reason Run returned. Only valid after Done is closed.
func (l *Listener) Err() error {
	return l.err
}
