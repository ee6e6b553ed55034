package core

import (
	"context"
	"fmt"

	"github.com/auto-dns/docker-indicator/internal/domain"
	"github.com/auto-dns/docker-indicator/internal/menu"
	"github.com/auto-dns/docker-indicator/internal/util"
	"github.com/docker/docker/api/types/container"
	"github.com/rs/zerolog"
)

type reconcileState int

const (
	stateIdle reconcileState = iota
	stateReconciling
)

// Reconciler owns the container section of the menu. It must only be used
// from the UI loop.
type Reconciler struct {
	logger   zerolog.Logger
	cli      dockerClient
	menu     *menu.Menu
	view     View
	notifier Notifier
	state    reconcileState
}

func NewReconciler(cli dockerClient, m *menu.Menu, view View, notifier Notifier, logger zerolog.Logger) *Reconciler {
	return &Reconciler{
		logger:   logger,
		cli:      cli,
		menu:     m,
		view:     view,
		notifier: notifier,
	}
}

// Reconcile rebuilds the container entries from a fresh snapshot of all
// containers. ev is the event that triggered it, or nil for a refresh.
//
// The rebuild is destructive: entries are not diffed against the previous
// snapshot, so back-to-back events simply reconcile to the same state again.
func (r *Reconciler) Reconcile(ctx context.Context, ev *domain.RawEvent) error {
	if r.state == stateReconciling {
		return ErrReentrantReconcile
	}
	r.state = stateReconciling
	defer func() { r.state = stateIdle }()

	summaries, listErr := r.listContainers(ctx, true)

	if ev != nil {
		if _, err := r.notifier.Transition(*ev); err != nil {
			r.logger.Warn().Err(err).Str("container", ev.Name()).Msg("Failed to show notification")
		}
	}

	if listErr != nil {
		// Keep the last known entries rather than showing an empty menu.
		return listErr
	}

	r.menu.RemoveContainers()

	for _, s := range summaries {
		ref := s.Ref()
		r.menu.InsertOrdered(menu.Item{
			Label:     s.Name,
			Tooltip:   shortID(s.ID),
			Checked:   s.IsRunning,
			Container: ref,
			Handler:   func() { r.Toggle(ctx, ref) },
		})
	}

	r.logger.Debug().Int("containers", len(summaries)).Msg("Container menu reconciled")
	r.view.Render(r.menu.Containers())
	return nil
}

// Menu exposes the underlying model for inspection.
func (r *Reconciler) Menu() *menu.Menu {
	return r.menu
}

func (r *Reconciler) listContainers(ctx context.Context, all bool) ([]domain.ContainerSummary, error) {
	containers, err := r.cli.ContainerList(ctx, container.ListOptions{All: all})
	if err != nil {
		return nil, fmt.Errorf("listing containers: %w", err)
	}
	return util.Map(containers, fromContainerSummary), nil
}
