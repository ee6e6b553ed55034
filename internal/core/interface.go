package core

import (
	"context"

	"github.com/auto-dns/docker-indicator/internal/domain"
	"github.com/auto-dns/docker-indicator/internal/menu"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/events"
)

// dockerClient is the query/control half of the daemon connection, used only
// from the UI loop.
type dockerClient interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error
}

// DockerClient is everything the engine needs from the daemon: the event stream
// for the listener plus the query/control calls for the UI loop.
type DockerClient interface {
	dockerClient
	Events(ctx context.Context, options events.ListOptions) (<-chan events.Message, <-chan error)
}

// View renders the container section of the menu.
type View interface {
	Render(containers []menu.Item)
}

type Notifier interface {
	Transition(ev domain.RawEvent) (bool, error)
	Message(text string) error
}
