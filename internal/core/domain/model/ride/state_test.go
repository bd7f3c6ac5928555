package ride_test

import (
	"fmt"
	"testing"

	"rides/internal/core/domain/model/ride"
	"rides/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Constants(t *testing.T) {
	assert.Equal(t, 0, int(ride.Unknown))
	assert.Equal(t, 1, int(ride.Requested))
	assert.Equal(t, 2, int(ride.InProgress))
	assert.Equal(t, 3, int(ride.Finished))
	assert.Equal(t, []ride.State{ride.Requested, ride.InProgress, ride.Finished}, ride.States())
}

func TestState_String(t *testing.T) {
	t.Run("should return labels for valid states", func(t *testing.T) {
		assert.Equal(t, "Requested", ride.Requested.String())
		assert.Equal(t, "InProgress", ride.InProgress.String())
		assert.Equal(t, "Finished", ride.Finished.String())
	})

	t.Run("should return Unknown for invalid states", func(t *testing.T) {
		for _, s := range []ride.State{ride.Unknown, ride.State(-1), ride.State(4)} {
			assert.Equal(t, "Unknown", s.String())
		}
	})
}

func TestState_Validate(t *testing.T) {
	t.Run("should accept valid states", func(t *testing.T) {
		for _, s := range ride.States() {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should reject invalid states", func(t *testing.T) {
		for _, s := range []ride.State{ride.Unknown, ride.State(-1), ride.State(4), ride.State(99)} {
			t.Run(fmt.Sprintf("value %d", int(s)), func(t *testing.T) {
				err := s.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid state", int(s)))
			})
		}
	})
}

func TestState_Transitions(t *testing.T) {
	testCases := []struct {
		name    string
		from    ride.State
		apply   func(ride.State) (ride.State, error)
		want    ride.State
		wantErr bool
	}{
		{"start from Requested", ride.Requested, ride.State.Start, ride.InProgress, false},
		{"start from InProgress", ride.InProgress, ride.State.Start, ride.Unknown, true},
		{"start from Finished", ride.Finished, ride.State.Start, ride.Unknown, true},
		{"start from Unknown", ride.Unknown, ride.State.Start, ride.Unknown, true},
		{"finish from InProgress", ride.InProgress, ride.State.Finish, ride.Finished, false},
		{"finish from Requested", ride.Requested, ride.State.Finish, ride.Unknown, true},
		{"finish from Finished", ride.Finished, ride.State.Finish, ride.Unknown, true},
		{"finish from Unknown", ride.Unknown, ride.State.Finish, ride.Unknown, true},
	}

	for _, tc := range testCases {
		t.Run("should handle "+tc.name, func(t *testing.T) {
			got, err := tc.apply(tc.from)

			assert.Equal(t, tc.want, got)
			if tc.wantErr {
				require.ErrorIs(t, err, errs.ErrStateIsInvalid)
				var stateErr *errs.StateIsInvalidError
				require.ErrorAs(t, err, &stateErr)
				assert.Equal(t, tc.from.String(), stateErr.State)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestState_Guards(t *testing.T) {
	t.Run("should allow edits before the ride is finished", func(t *testing.T) {
		require.NoError(t, ride.Requested.ValidateEdit())
		require.NoError(t, ride.InProgress.ValidateEdit())
		require.ErrorIs(t, ride.Finished.ValidateEdit(), errs.ErrStateIsInvalid)
		require.ErrorIs(t, ride.Unknown.ValidateEdit(), errs.ErrStateIsInvalid)
	})

	t.Run("should allow removal only while requested", func(t *testing.T) {
		require.NoError(t, ride.Requested.ValidateRemove())
		require.ErrorIs(t, ride.InProgress.ValidateRemove(), errs.ErrStateIsInvalid)
		require.ErrorIs(t, ride.Finished.ValidateRemove(), errs.ErrStateIsInvalid)
	})

	t.Run("should name the rejected operation", func(t *testing.T) {
		err := ride.Finished.ValidateEdit()
		assert.EqualError(t, err, "state is invalid: cannot edit while in state Finished")
	})

	t.Run("should mark only Finished as final", func(t *testing.T) {
		assert.False(t, ride.Requested.IsFinal())
		assert.False(t, ride.InProgress.IsFinal())
		assert.True(t, ride.Finished.IsFinal())
	})
}

func TestParseStateFilter(t *testing.T) {
	testCases := []struct {
		filter string
		want   ride.State
		ok     bool
	}{
		{"Requested", ride.Requested, true},
		{"requested", ride.Requested, true},
		{"REQUESTED", ride.Requested, true},
		{"rEqUeStEd", ride.Requested, true},
		{"finished", ride.Finished, true},
		{"FINISHED", ride.Finished, true},
		{"InProgress", ride.Unknown, false},
		{"inprogress", ride.Unknown, false},
		{"Inprogress", ride.Unknown, false},
		{"requested ", ride.Unknown, false},
		{"", ride.Unknown, false},
		{"Unknown", ride.Unknown, false},
		{"cancelled", ride.Unknown, false},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should resolve %q", tc.filter), func(t *testing.T) {
			got, ok := ride.ParseStateFilter(tc.filter)

			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseState(t *testing.T) {
	for _, s := range ride.States() {
		got, ok := ride.ParseState(s.String())
		require.True(t, ok)
		assert.Equal(t, s, got)
	}

	_, ok := ride.ParseState("requested")
	assert.False(t, ok)
}
