// Package ride provides the Ride aggregate: a transport request from an
// origin to a destination whose fare derives from its distance.
//
// The package includes:
//   - Ride: the aggregate root holding identity, route, distance, fare and state
//   - State: the state machine gating every mutation
//   - Fare: the tariff turning a distance into a fare
//   - Event: the record of each successful mutation, published after commit
//
// Key business rules:
//   - A ride is created Requested and moves Requested -> InProgress -> Finished
//   - Route and distance can be edited while Requested or InProgress
//   - Only Requested rides can be removed
//   - Fare always equals Fare(distance)
package ride
