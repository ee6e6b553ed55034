package core

import (
	"context"
	"errors"
	"sync"

	"github.com/auto-dns/docker-indicator/internal/domain"
	"github.com/auto-dns/docker-indicator/internal/menu"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/events"
)

type fakeContainer struct {
	id      string
	name    string
	running bool
}

type fakeDocker struct {
	mu         sync.Mutex
	containers []fakeContainer
	listErr    error
	stopErr    map[string]error
	started    []string
	stopped    []string
	lists      []container.ListOptions

	msgCh chan events.Message
	errCh chan error
}

func newFakeDocker(containers ...fakeContainer) *fakeDocker {
	return &fakeDocker{
		containers: containers,
		stopErr:    map[string]error{},
		msgCh:      make(chan events.Message),
		errCh:      make(chan error, 1),
	}
}

func (f *fakeDocker) ContainerList(_ context.Context, options container.ListOptions) ([]container.Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, options)
	if f.listErr != nil {
		return nil, f.listErr
	}
	ids := options.Filters.Get("id")
	var out []container.Summary
	for _, c := range f.containers {
		if !options.All && !c.running {
			continue
		}
		if len(ids) > 0 && ids[0] != c.id {
			continue
		}
		state := "exited"
		if c.running {
			state = "running"
		}
		out = append(out, container.Summary{ID: c.id, Names: []string{"/" + c.name}, State: state})
	}
	return out, nil
}

func (f *fakeDocker) ContainerStart(_ context.Context, id string, _ container.StartOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = append(f.started, id)
	return f.set(id, true)
}

func (f *fakeDocker) ContainerStop(_ context.Context, id string, _ container.StopOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = append(f.stopped, id)
	if err := f.stopErr[id]; err != nil {
		return err
	}
	return f.set(id, false)
}

func (f *fakeDocker) set(id string, running bool) error {
	for i := range f.containers {
		if f.containers[i].id == id {
			f.containers[i].running = running
			return nil
		}
	}
	return errors.New("no such container: " + id)
}

func (f *fakeDocker) Events(_ context.Context, _ events.ListOptions) (<-chan events.Message, <-chan error) {
	return f.msgCh, f.errCh
}

func (f *fakeDocker) add(c fakeContainer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.containers = append(f.containers, c)
}

func (f *fakeDocker) remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.containers[:0]
	for _, c := range f.containers {
		if c.id != id {
			kept = append(kept, c)
		}
	}
	f.containers = kept
}

func (f *fakeDocker) setRunning(id string, running bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_ = f.set(id, running)
}

type fakeView struct {
	mu      sync.Mutex
	renders [][]menu.Item
}

func (v *fakeView) Render(items []menu.Item) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.renders = append(v.renders, items)
}

func (v *fakeView) last() []menu.Item {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.renders) == 0 {
		return nil
	}
	return v.renders[len(v.renders)-1]
}

type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *fakeNotifier) Transition(ev domain.RawEvent) (bool, error) {
	switch ev.Status {
	case domain.StatusStart:
		return true, n.Message(`Container "` + ev.Name() + `" has been started`)
	case domain.StatusStop:
		return true, n.Message(`Container "` + ev.Name() + `" has been stopped`)
	}
	return false, nil
}

func (n *fakeNotifier) Message(text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, text)
	return nil
}

func (n *fakeNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

type entry struct {
	label   string
	checked bool
}

func entries(items []menu.Item) []entry {
	out := make([]entry, len(items))
	for i, it := range items {
		out[i] = entry{it.Label, it.Checked}
	}
	return out
}
