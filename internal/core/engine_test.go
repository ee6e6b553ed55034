package core

import (
	"context"
	"testing"
	"time"

	"github.com/auto-dns/docker-indicator/internal/config"
	"github.com/docker/docker/api/types/events"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(cli *fakeDocker, timeout time.Duration) (*Engine, *fakeView, *fakeNotifier, chan struct{}) {
	view := &fakeView{}
	notifier := &fakeNotifier{}
	quit := make(chan struct{})
	cfg := &config.AppConfig{Name: "Docker Indicator", Version: "0.1.0", ShutdownTimeout: timeout}
	e := NewEngine(zerolog.Nop(), cfg, cli, view, notifier, func() { close(quit) })
	return e, view, notifier, quit
}

// waitIdle waits for every task queued before it to finish.
func waitIdle(t *testing.T, e *Engine) {
	t.Helper()
	done := make(chan struct{})
	require.NoError(t, e.Post(func() { close(done) }))
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ui loop stalled")
	}
}

func containerMessage(action events.Action, id, name string) events.Message {
	return events.Message{
		Type:   events.ContainerEventType,
		Action: action,
		Actor:  events.Actor{ID: id, Attributes: map[string]string{"name": name}},
	}
}

// deliver pushes msg through the listener and waits until any resulting work
// on the UI loop has finished. The trailing filtered record guarantees the
// listener is done forwarding msg before the loop is drained.
func deliver(t *testing.T, cli *fakeDocker, e *Engine, msg events.Message) {
	t.Helper()
	cli.msgCh <- msg
	cli.msgCh <- containerMessage("exec_start: true", "", "")
	waitIdle(t, e)
}

// sendAfterTerminate delivers one record once the termination flag is set.
func sendAfterTerminate(cli *fakeDocker, e *Engine) {
	go func() {
		for !e.Listener().Terminated() {
			time.Sleep(time.Millisecond)
		}
		cli.msgCh <- containerMessage("start", "3", "db")
	}()
}

func TestEngineActions(t *testing.T) {
	e, _, _, _ := newTestEngine(newFakeDocker(), time.Second)
	labels := []string{}
	for _, it := range e.Actions() {
		labels = append(labels, it.Label)
	}
	assert.Equal(t, []string{"Stop all", "Refresh", "About", "Quit"}, labels)
}

func TestEngineEndToEnd(t *testing.T) {
	cli := newFakeDocker(
		fakeContainer{id: "1", name: "web", running: true},
		fakeContainer{id: "2", name: "api", running: true},
		fakeContainer{id: "3", name: "db", running: true},
	)
	e, view, notifier, quit := newTestEngine(cli, time.Second)

	runErr := make(chan error, 1)
	go func() { runErr <- e.Run(context.Background()) }()

	// The listener is running once it accepts a message.
	deliver(t, cli, e, containerMessage("exec_start: sh", "1", "web"))
	assert.Equal(t, []entry{{"api", true}, {"db", true}, {"web", true}}, entries(view.last()))

	cli.setRunning("3", false)
	deliver(t, cli, e, containerMessage("stop", "3", "db"))
	assert.Equal(t, []entry{{"api", true}, {"db", false}, {"web", true}}, entries(view.last()))
	assert.Equal(t, []string{`Container "db" has been stopped`}, notifier.all())

	cli.add(fakeContainer{id: "4", name: "cache", running: true})
	deliver(t, cli, e, containerMessage("create", "4", "cache"))
	assert.Equal(t, []entry{{"api", true}, {"cache", true}, {"db", false}, {"web", true}}, entries(view.last()))

	renders := len(view.renders)
	deliver(t, cli, e, containerMessage("pause", "4", "cache"))
	assert.Len(t, view.renders, renders, "filtered events do not reconcile")

	// Quit from the menu: the listener is parked, so the flag is observed on
	// the next record.
	sendAfterTerminate(cli, e)
	require.NoError(t, e.Post(e.Actions()[3].Activate))

	select {
	case <-quit:
	case <-time.After(2 * time.Second):
		t.Fatal("quit callback not invoked")
	}
	require.NoError(t, <-runErr)
	<-e.Listener().Done()
	assert.NoError(t, e.Listener().Err())
}

func TestEngineAboutAndRefresh(t *testing.T) {
	cli := newFakeDocker(fakeContainer{id: "1", name: "web"})
	e, view, notifier, _ := newTestEngine(cli, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = e.Run(ctx) }()
	waitIdle(t, e)

	require.NoError(t, e.Post(e.About))
	require.NoError(t, e.Post(e.Refresh))
	waitIdle(t, e)

	assert.Equal(t, []string{"Docker Indicator 0.1.0"}, notifier.all())
	assert.Len(t, view.renders, 2)
}

func TestShutdownDoesNotWaitForQuietListener(t *testing.T) {
	cli := newFakeDocker()
	e, _, _, quit := newTestEngine(cli, 50*time.Millisecond)

	runErr := make(chan error, 1)
	go func() { runErr <- e.Run(context.Background()) }()
	waitIdle(t, e)

	start := time.Now()
	e.RequestQuit()

	select {
	case <-quit:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown blocked on the listener")
	}
	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	assert.Less(t, elapsed, time.Second)
	require.NoError(t, <-runErr)

	select {
	case <-e.Listener().Done():
		t.Fatal("listener should still be parked on the stream")
	default:
	}
	assert.True(t, e.Listener().Terminated())
}

func TestShutdownJoinsListener(t *testing.T) {
	cli := newFakeDocker()
	e, _, _, _ := newTestEngine(cli, time.Second)
	go func() { _ = e.Run(context.Background()) }()
	cli.msgCh <- containerMessage("pause", "1", "x")

	sendAfterTerminate(cli, e)
	assert.True(t, e.Shutdown(time.Second))
}

func TestContextCancelQuits(t *testing.T) {
	cli := newFakeDocker()
	e, _, _, quit := newTestEngine(cli, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	runErr := make(chan error, 1)
	go func() { runErr <- e.Run(ctx) }()
	waitIdle(t, e)
	cancel()

	select {
	case <-quit:
	case <-time.After(2 * time.Second):
		t.Fatal("cancel did not quit")
	}
	assert.NoError(t, <-runErr)
}
