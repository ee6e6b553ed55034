package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInteresting(t *testing.T) {
	tests := []struct {
		name  string
		event RawEvent
		want  bool
	}{
		{name: "create", event: RawEvent{Type: "container", Status: "create"}, want: true},
		{name: "start", event: RawEvent{Type: "container", Status: "start"}, want: true},
		{name: "stop", event: RawEvent{Type: "container", Status: "stop"}, want: true},
		{name: "die", event: RawEvent{Type: "container", Status: "die"}, want: true},
		{name: "destroy", event: RawEvent{Type: "container", Status: "destroy"}, want: true},
		{name: "pause is noise", event: RawEvent{Type: "container", Status: "pause"}, want: false},
		{name: "exec is noise", event: RawEvent{Type: "container", Status: "exec_start: sh"}, want: false},
		{name: "network event", event: RawEvent{Type: "network", Status: "start"}, want: false},
		{name: "image event", event: RawEvent{Type: "image", Status: "destroy"}, want: false},
		{name: "missing type", event: RawEvent{Status: "start"}, want: false},
		{name: "missing status", event: RawEvent{Type: "container"}, want: false},
		{name: "case sensitive", event: RawEvent{Type: "Container", Status: "start"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInteresting(tt.event))
		})
	}
}

func TestStatusIsTransition(t *testing.T) {
	assert.True(t, StatusStart.IsTransition())
	assert.True(t, StatusStop.IsTransition())
	assert.False(t, StatusCreate.IsTransition())
	assert.False(t, StatusDie.IsTransition())
	assert.False(t, StatusDestroy.IsTransition())
}

func TestRawEventName(t *testing.T) {
	e := RawEvent{Attributes: map[string]string{"name": "db", "image": "postgres"}}
	assert.Equal(t, "db", e.Name())
	assert.Equal(t, "", RawEvent{}.Name())
}
