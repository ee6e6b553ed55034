// Package dispatch provides the single-goroutine execution context that owns
// all menu state, and the dispatcher that hands listener events over to it.
package dispatch

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

var ErrLoopClosed = errors.New("ui loop closed")

// Loop runs posted tasks one at a time, in posting order, on the goroutine that
// called Run. Tasks never run concurrently with each other.
type Loop struct {
	logger zerolog.Logger

	mu     sync.Mutex
	queue  []func()
	closed bool
	wake   chan struct{}
	done   chan struct{}
}

func NewLoop(logger zerolog.Logger) *Loop {
	return &Loop{
		logger: logger,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Post schedules task to run later on the loop. It never blocks and is safe to
// call from any goroutine, including from inside a running task.
func (l *Loop) Post(task func()) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrLoopClosed
	}
	l.queue = append(l.queue, task)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return nil
}

// Run executes tasks until ctx is done or Close is called. Tasks still queued
// at that point are discarded.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	for {
		task, ok := l.next()
		if !ok {
			return nil
		}
		if task != nil {
			l.runTask(task)
			continue
		}

		select {
		case <-l.wake:
		case <-ctx.Done():
			l.Close()
			return ctx.Err()
		}
	}
}

// next pops the oldest task. It returns ok=false once the loop is closed.
func (l *Loop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil, false
	}
	if len(l.queue) == 0 {
		return nil, true
	}
	task := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return task, true
}

func (l *Loop) runTask(task func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error().Interface("panic", r).Msg("UI task panicked")
		}
	}()
	task()
}

// Close stops the loop. Further posts fail with ErrLoopClosed.
func (l *Loop) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.queue = nil
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
