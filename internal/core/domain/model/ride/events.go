package ride

import "time"

// EventType names a ride mutation. It doubles as the message routing key.
type EventType string

const (
	EventCreated  EventType = "ride.created"
	EventEdited   EventType = "ride.edited"
	EventStarted  EventType = "ride.started"
	EventFinished EventType = "ride.finished"
	EventRemoved  EventType = "ride.removed"
)

// Event records one successful mutation together with the ride as it was
// right after it.
type Event struct {
	Type       EventType
	Ride       Snapshot
	OccurredAt time.Time
}
