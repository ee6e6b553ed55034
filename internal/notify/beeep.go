package notify

import (
	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"
)

// BeeepBackend is the portable fallback. beeep cannot replace a notification
// in place, so rapid transitions may stack on platforms that do not coalesce.
type BeeepBackend struct {
	notify func(title, body, icon string) error
}

func NewBeeepBackend(appName string) *BeeepBackend {
	beeep.AppName = appName
	return &BeeepBackend{
		notify: func(title, body, icon string) error {
			return beeep.Notify(title, body, icon)
		},
	}
}

func (b *BeeepBackend) Show(title, body, icon string) error {
	return b.notify(title, body, icon)
}

func (b *BeeepBackend) Close() error { return nil }

// LogBackend only logs; used when notifications are disabled.
type LogBackend struct {
	logger zerolog.Logger
}

func NewLogBackend(logger zerolog.Logger) *LogBackend {
	return &LogBackend{logger: logger}
}

func (b *LogBackend) Show(title, body, _ string) error {
	b.logger.Info().Str("title", title).Msg(body)
	return nil
}

func (b *LogBackend) Close() error { return nil }
