package dispatch

import (
	"github.com/auto-dns/docker-indicator/internal/domain"
)

// Dispatcher moves accepted events from the listener goroutine onto the loop.
// Each event is handled exactly once, in forwarding order; nothing is coalesced.
type Dispatcher struct {
	loop    *Loop
	handler func(domain.RawEvent)
}

func New(loop *Loop, handler func(domain.RawEvent)) *Dispatcher {
	return &Dispatcher{loop: loop, handler: handler}
}

// Forward satisfies event.ForwardFunc.
func (d *Dispatcher) Forward(ev domain.RawEvent) error {
	return d.loop.Post(func() {
		d.handler(ev)
	})
}
