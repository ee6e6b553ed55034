package core

import (
	"context"
	"fmt"

	"github.com/auto-dns/docker-indicator/internal/domain"
	"github.com/auto-dns/docker-indicator/internal/util"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
)

// Toggle starts or stops the container depending on its live state. The
// resulting state change comes back through the event stream.
func (r *Reconciler) Toggle(ctx context.Context, ref domain.ContainerRef) {
	logger := r.logger.With().Str("container", ref.Name).Str("id", ref.ID).Logger()

	current, err := r.inspect(ctx, ref.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to look up container")
		return
	}
	if current == nil {
		logger.Info().Msg("Container no longer exists")
		return
	}

	if current.IsRunning {
		logger.Info().Msg("Stopping container")
		if err := r.cli.ContainerStop(ctx, ref.ID, container.StopOptions{}); err != nil {
			logger.Error().Err(err).Msg("Failed to stop container")
		}
		return
	}

	logger.Info().Msg("Starting container")
	if err := r.cli.ContainerStart(ctx, ref.ID, container.StartOptions{}); err != nil {
		logger.Error().Err(err).Msg("Failed to start container")
	}
}

// StopAll stops every running container, skipping over individual failures.
func (r *Reconciler) StopAll(ctx context.Context) {
	running, err := r.listContainers(ctx, false)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to list running containers")
		return
	}
	for _, ref := range util.Map(running, domain.ContainerSummary.Ref) {
		r.logger.Info().Str("container", ref.Name).Msg("Stopping container")
		if err := r.cli.ContainerStop(ctx, ref.ID, container.StopOptions{}); err != nil {
			r.logger.Error().Err(err).Str("container", ref.Name).Msg("Failed to stop container")
		}
	}
}

// inspect returns the live summary of a single container, or nil if it is gone.
func (r *Reconciler) inspect(ctx context.Context, id string) (*domain.ContainerSummary, error) {
	containers, err := r.cli.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg("id", id)),
	})
	if err != nil {
		return nil, fmt.Errorf("listing container %s: %w", id, err)
	}
	matches := util.Filter(util.Map(containers, fromContainerSummary), func(s domain.ContainerSummary) bool {
		return s.ID == id
	})
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}
