package ride

import (
	"errors"
	"time"

	"rides/internal/core/domain/model/kernel"
	"rides/internal/pkg/errs"
)

// ErrRideIsNotConstructed is returned when a Ride was not created through NewRide or RestoreRide.
var ErrRideIsNotConstructed = errors.New("Ride must be created via NewRide or RestoreRide constructor")

// Ride is the aggregate root of the ride lifecycle.
//
// Ride follows these invariants:
//   - id is valid and never changes
//   - fare equals Fare(distance) after every write
//   - state only moves Requested -> InProgress -> Finished
//   - every guard runs before any field is written, so a failed call leaves the ride untouched
//
// Each successful mutation appends an Event that the application layer
// publishes once the change is committed.
type Ride struct {
	// id is the unique identifier of the ride
	id kernel.UUID

	// origin and destination are free-text locations
	origin      string
	destination string

	// distance drives fare
	distance float64

	// fare is derived from distance and never set directly
	fare float64

	// state is the current lifecycle position
	state State

	// events are the mutations not yet published
	events []Event

	// isConstructed ensures the ride was created via a constructor
	isConstructed bool
}

// Snapshot is an immutable copy of a ride's fields.
type Snapshot struct {
	ID          kernel.UUID
	Origin      string
	Destination string
	Distance    float64
	Fare        float64
	State       State
}

// NewRide creates a Requested ride and records EventCreated.
//
// Parameters:
//   - id: unique identifier (must be valid)
//   - origin, destination: non-empty free text
//   - distance: any value; negative and zero distances are accepted as-is
//
// Example:
//
//	r, err := ride.NewRide(kernel.NewUUID(), "A", "B", 10)
//	// r.Fare() == 26.65, r.State() == ride.Requested
func NewRide(id kernel.UUID, origin string, destination string, distance float64) (*Ride, error) {
	r := &Ride{
		state:         Requested,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrigin(origin),
		r.setDestination(destination),
	); err != nil {
		return nil, err
	}
	r.setDistance(distance)

	r.record(EventCreated)
	return r, nil
}

// RestoreRide rebuilds a ride loaded from storage. The fare is recomputed
// from distance rather than trusted, and no event is recorded.
func RestoreRide(id kernel.UUID, origin string, destination string, distance float64, state State) (*Ride, error) {
	r := &Ride{isConstructed: true}

	if err := errors.Join(
		r.setID(id),
		r.setOrigin(origin),
		r.setDestination(destination),
		state.Validate(),
	); err != nil {
		return nil, err
	}
	r.setDistance(distance)
	r.state = state

	return r, nil
}

// Validate ensures the ride was built by a constructor.
func (r *Ride) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRideIsNotConstructed
	}
	return nil
}

// IsEqual compares rides by identifier.
func (r *Ride) IsEqual(other *Ride) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the ride's unique identifier.
func (r *Ride) ID() kernel.UUID {
	return r.id
}

// Origin returns where the ride starts.
func (r *Ride) Origin() string {
	return r.origin
}

// Destination returns where the ride ends.
func (r *Ride) Destination() string {
	return r.destination
}

// Distance returns the ride distance.
func (r *Ride) Distance() float64 {
	return r.distance
}

// Fare returns the fare derived from Distance.
func (r *Ride) Fare() float64 {
	return r.fare
}

// State returns the current lifecycle state.
func (r *Ride) State() State {
	return r.state
}

// Snapshot copies the ride's current fields.
func (r *Ride) Snapshot() Snapshot {
	return Snapshot{
		ID:          r.id,
		Origin:      r.origin,
		Destination: r.destination,
		Distance:    r.distance,
		Fare:        r.fare,
		State:       r.state,
	}
}

// Edit overwrites the provided fields while the ride is Requested or InProgress.
//
// A nil pointer leaves its field unchanged. An empty origin or destination
// and a distance of exactly 0 count as not provided, so a ride's distance
// can never be edited to 0. A written distance also recomputes the fare.
//
// Returns *errs.StateIsInvalidError from Finished, with no field written.
func (r *Ride) Edit(origin *string, destination *string, distance *float64) error {
	if err := r.state.ValidateEdit(); err != nil {
		return err
	}

	if origin != nil && *origin != "" {
		r.origin = *origin
	}
	if destination != nil && *destination != "" {
		r.destination = *destination
	}
	if distance != nil && *distance != 0 {
		r.setDistance(*distance)
	}

	r.record(EventEdited)
	return nil
}

// Start moves a Requested ride to InProgress.
func (r *Ride) Start() error {
	next, err := r.state.Start()
	if err != nil {
		return err
	}

	r.state = next
	r.record(EventStarted)
	return nil
}

// Finish moves an InProgress ride to Finished, its final state.
func (r *Ride) Finish() error {
	next, err := r.state.Finish()
	if err != nil {
		return err
	}

	r.state = next
	r.record(EventFinished)
	return nil
}

// Remove checks that the ride may be deleted and records EventRemoved.
// Deleting it from storage is up to the repository.
func (r *Ride) Remove() error {
	if err := r.state.ValidateRemove(); err != nil {
		return err
	}

	r.record(EventRemoved)
	return nil
}

// DomainEvents returns the events recorded since construction or the last ClearDomainEvents.
func (r *Ride) DomainEvents() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// ClearDomainEvents drops recorded events once they have been published.
func (r *Ride) ClearDomainEvents() {
	r.events = nil
}

func (r *Ride) record(t EventType) {
	r.events = append(r.events, Event{
		Type:       t,
		Ride:       r.Snapshot(),
		OccurredAt: time.Now().UTC(),
	})
}

func (r *Ride) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Ride) setOrigin(origin string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	r.origin = origin
	return nil
}

func (r *Ride) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	r.destination = destination
	return nil
}

func (r *Ride) setDistance(distance float64) {
	r.distance = distance
	r.fare = Fare(distance)
}
