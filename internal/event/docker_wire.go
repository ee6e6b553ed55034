package event

import (
	"github.com/auto-dns/docker-indicator/internal/domain"
	"github.com/docker/docker/api/types/events"
)

func fromEventsMessage(msg events.Message) domain.RawEvent {
	attrs := make(map[string]string, len(msg.Actor.Attributes))
	for k, v := range msg.Actor.Attributes {
		attrs[k] = v
	}
	return domain.RawEvent{
		Type:       string(msg.Type),
		Status:     domain.Status(msg.Action),
		ID:         msg.Actor.ID,
		Attributes: attrs,
	}
}
