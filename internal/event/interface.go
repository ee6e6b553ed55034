package event

import (
	"context"

	"github.com/auto-dns/docker-indicator/internal/domain"
	"github.com/docker/docker/api/types/events"
)

type dockerClient interface {
	Events(ctx context.Context, options events.ListOptions) (<-chan events.Message, <-chan error)
}

// ForwardFunc hands an accepted event over to the UI side. A non-nil error is
// fatal to the listener.
type ForwardFunc func(domain.RawEvent) error
