package memory

import (
	"fmt"
	"slices"

	"rides/internal/core/domain/model/kernel"
	"rides/internal/core/domain/model/ride"
	"rides/internal/pkg/errs"
)

// store is the ordered ride collection. It keeps snapshots, never the
// aggregates handed in by callers, so a caller mutating its *ride.Ride
// cannot change stored state without going through Update.
type store []ride.Snapshot

func (s store) clone() store {
	return slices.Clone(s)
}

func (s store) index(id kernel.UUID) int {
	return slices.IndexFunc(s, func(snap ride.Snapshot) bool {
		return snap.ID.IsEqual(id)
	})
}

func (s store) get(id kernel.UUID) (*ride.Ride, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	i := s.index(id)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("ride", id.String())
	}
	return restore(s[i])
}

func (s store) list(keep func(ride.Snapshot) bool) ([]*ride.Ride, error) {
	rides := make([]*ride.Ride, 0, len(s))
	for _, snap := range s {
		if !keep(snap) {
			continue
		}
		r, err := restore(snap)
		if err != nil {
			return nil, err
		}
		rides = append(rides, r)
	}
	return rides, nil
}

func (s store) countByState() map[ride.State]int {
	counts := make(map[ride.State]int, len(ride.States()))
	for _, snap := range s {
		counts[snap.State]++
	}
	return counts
}

func (s *store) add(r *ride.Ride) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if s.index(r.ID()) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause("ride", fmt.Errorf("id %s already exists", r.ID()))
	}

	*s = append(*s, r.Snapshot())
	return nil
}

func (s *store) update(r *ride.Ride) error {
	if err := r.Validate(); err != nil {
		return err
	}

	i := s.index(r.ID())
	if i < 0 {
		return errs.NewObjectNotFoundError("ride", r.ID().String())
	}
	(*s)[i] = r.Snapshot()
	return nil
}

func (s *store) remove(r *ride.Ride) error {
	if err := r.Validate(); err != nil {
		return err
	}

	i := s.index(r.ID())
	if i < 0 {
		return errs.NewObjectNotFoundError("ride", r.ID().String())
	}
	*s = slices.Delete(*s, i, i+1)
	return nil
}

func restore(snap ride.Snapshot) (*ride.Ride, error) {
	return ride.RestoreRide(snap.ID, snap.Origin, snap.Destination, snap.Distance, snap.State)
}

func all(ride.Snapshot) bool { return true }

func inState(state ride.State) func(ride.Snapshot) bool {
	return func(snap ride.Snapshot) bool { return snap.State == state }
}
