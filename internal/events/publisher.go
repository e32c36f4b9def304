package events

import (
	"time"
)

// Event types published on the job lifecycle feed.
const (
	EventJobCreated    = "created"
	EventJobAssigned   = "assigned"
	EventJobStatus     = "status"
	EventJobPartLogged = "part_logged"
)

// Event is one job lifecycle notification.
type Event struct {
	Type       string    `json:"type"`
	JobID      string    `json:"job_id"`
	Status     string    `json:"status,omitempty"`
	MechanicID string    `json:"mechanic_id,omitempty"`
	PartID     string    `json:"part_id,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Publisher emits job lifecycle events. Publishing is best-effort: failures
// are logged by implementations and never fail the request that raised the
// event.
type Publisher interface {
	Publish(event Event)
	Close()
}

// NoopPublisher discards all events. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(Event) {}
func (NoopPublisher) Close()        {}
