// Package notify posts desktop notifications about container transitions.
package notify

import (
	"fmt"

	"github.com/auto-dns/docker-indicator/internal/domain"
	"github.com/rs/zerolog"
)

// Backend shows a notification. Implementations keep at most one notification
// from this process on screen: each Show replaces the previous one.
type Backend interface {
	Show(title, body, icon string) error
	Close() error
}

// Emitter formats transition messages and hands them to a Backend.
type Emitter struct {
	logger  zerolog.Logger
	backend Backend
	title   string
	icon    string
}

func NewEmitter(backend Backend, title, icon string, logger zerolog.Logger) *Emitter {
	return &Emitter{
		logger:  logger,
		backend: backend,
		title:   title,
		icon:    icon,
	}
}

// TransitionText returns the notification body for ev, or false when the
// event's status is not a start/stop transition.
func TransitionText(ev domain.RawEvent) (string, bool) {
	switch ev.Status {
	case domain.StatusStart:
		return fmt.Sprintf("Container \"%s\" has been started", ev.Name()), true
	case domain.StatusStop:
		return fmt.Sprintf("Container \"%s\" has been stopped", ev.Name()), true
	}
	return "", false
}

// Transition shows a notification for start/stop events and reports whether
// one was shown.
func (e *Emitter) Transition(ev domain.RawEvent) (bool, error) {
	text, ok := TransitionText(ev)
	if !ok {
		return false, nil
	}
	if err := e.Message(text); err != nil {
		return false, err
	}
	return true, nil
}

// Message shows an arbitrary line of text under the application title.
func (e *Emitter) Message(text string) error {
	e.logger.Debug().Str("body", text).Msg("Showing notification")
	if err := e.backend.Show(e.title, text, e.icon); err != nil {
		return fmt.Errorf("showing notification: %w", err)
	}
	return nil
}

func (e *Emitter) Close() error {
	return e.backend.Close()
}
