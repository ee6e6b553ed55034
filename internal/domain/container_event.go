package domain

// Status is the lifecycle tag carried by a daemon event. The vocabulary is open;
// only the constants below are acted upon.
type Status string

const (
	StatusCreate  Status = "create"
	StatusStart   Status = "start"
	StatusStop    Status = "stop"
	StatusDie     Status = "die"
	StatusDestroy Status = "destroy"
)

// EventTypeContainer is the only event type the indicator cares about.
const EventTypeContainer = "container"

func (s Status) IsInteresting() bool {
	switch s {
	case StatusCreate,
		StatusStart,
		StatusStop,
		StatusDie,
		StatusDestroy:
		return true
	}
	return false
}

// IsTransition reports whether the status warrants a desktop notification.
func (s Status) IsTransition() bool {
	return s == StatusStart || s == StatusStop
}

// RawEvent is a single record read from the daemon event stream.
type RawEvent struct {
	Type       string
	Status     Status
	ID         string
	Attributes map[string]string
}

// Name returns the human-readable container name from the event attributes.
func (e RawEvent) Name() string {
	return e.Attributes["name"]
}

// IsInteresting is the listener's filter: container events with a status in the
// fixed set of interesting statuses.
func IsInteresting(e RawEvent) bool {
	return e.Type == EventTypeContainer && e.Status.IsInteresting()
}
