package ride

import (
	"fmt"
	"unicode/utf8"

	"rides/internal/pkg/errs"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// State is the lifecycle position of a ride.
//
// State transitions:
//
//	Requested ──start──> InProgress ──finish──> Finished
//
// Finished is terminal. Edits are allowed in Requested and InProgress,
// removal only in Requested.
type State int

const (
	// Unknown catches uninitialized State values.
	Unknown State = iota

	// Requested is the state of every newly created ride.
	Requested

	// InProgress rides have been started and not yet finished.
	InProgress

	// Finished rides accept no further transitions or edits.
	Finished
)

// Operation names used in StateIsInvalidError.
const (
	OperationEdit   = "edit"
	OperationStart  = "start"
	OperationFinish = "finish"
	OperationRemove = "remove"
)

var stateLabels = map[State]string{
	Requested:  "Requested",
	InProgress: "InProgress",
	Finished:   "Finished",
}

// States lists the valid states in lifecycle order.
func States() []State {
	return []State{Requested, InProgress, Finished}
}

// String returns the serialized label: "Requested", "InProgress" or "Finished".
// Invalid values render as "Unknown".
func (s State) String() string {
	if label, ok := stateLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// Validate rejects Unknown and out-of-range values, e.g. ones read from storage.
func (s State) Validate() error {
	if _, ok := stateLabels[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// IsFinal reports whether no transition leaves s.
func (s State) IsFinal() bool {
	return s == Finished
}

// ValidateEdit allows edits in Requested and InProgress.
func (s State) ValidateEdit() error {
	if s != Requested && s != InProgress {
		return errs.NewStateIsInvalidError(OperationEdit, s.String())
	}
	return nil
}

// ValidateRemove allows removal in Requested only.
func (s State) ValidateRemove() error {
	if s != Requested {
		return errs.NewStateIsInvalidError(OperationRemove, s.String())
	}
	return nil
}

// Start returns InProgress when s is Requested.
//
// Returns:
//   - (InProgress, nil) on a valid transition
//   - (Unknown, *errs.StateIsInvalidError) from any other state
func (s State) Start() (State, error) {
	if s != Requested {
		return Unknown, errs.NewStateIsInvalidError(OperationStart, s.String())
	}
	return InProgress, nil
}

// Finish returns Finished when s is InProgress.
//
// Returns:
//   - (Finished, nil) on a valid transition
//   - (Unknown, *errs.StateIsInvalidError) from any other state
func (s State) Finish() (State, error) {
	if s != InProgress {
		return Unknown, errs.NewStateIsInvalidError(OperationFinish, s.String())
	}
	return Finished, nil
}

// ParseState maps an exact label back to its State.
func ParseState(label string) (State, bool) {
	for state, l := range stateLabels {
		if l == label {
			return state, true
		}
	}
	return Unknown, false
}

// ParseStateFilter resolves a caller-supplied list filter.
//
// The filter is capitalized (first character title-cased, the rest
// lower-cased) and then compared literally with the labels. Any casing of
// "requested" or "finished" matches, while "inprogress" in any casing
// becomes "Inprogress" and matches nothing. ok is false when no state matches.
func ParseStateFilter(filter string) (State, bool) {
	return ParseState(capitalize(filter))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	// Casers are stateful; build fresh ones per call.
	return cases.Title(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}
