package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"rides/internal/core/domain/model/ride"

	amqp "github.com/rabbitmq/amqp091-go"
)

type rideBody struct {
	ID          string  `json:"id"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Distance    float64 `json:"distance"`
	Fare        float64 `json:"fare"`
	State       string  `json:"state"`
}

type eventBody struct {
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	Ride       rideBody  `json:"ride"`
}

// newPublishing encodes e as a persistent JSON message routed by its type.
func newPublishing(e ride.Event) (string, amqp.Publishing, error) {
	body, err := json.Marshal(eventBody{
		EventType:  string(e.Type),
		OccurredAt: e.OccurredAt,
		Ride: rideBody{
			ID:          e.Ride.ID.String(),
			Origin:      e.Ride.Origin,
			Destination: e.Ride.Destination,
			Distance:    e.Ride.Distance,
			Fare:        e.Ride.Fare,
			State:       e.Ride.State.String(),
		},
	})
	if err != nil {
		return "", amqp.Publishing{}, fmt.Errorf("marshal %s event: %w", e.Type, err)
	}

	return string(e.Type), amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         string(e.Type),
		Timestamp:    e.OccurredAt,
		Body:         body,
	}, nil
}
