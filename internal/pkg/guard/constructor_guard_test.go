package guard_test

import (
	"errors"
	"testing"

	"rides/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("ride command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValue(t *testing.T) {
	type fareQuote struct {
		distance float64
		guard    guard.ConstructorGuard
	}
	errQuoteNotConstructed := errors.New("fareQuote must be created via newFareQuote")

	newFareQuote := func(distance float64) fareQuote {
		return fareQuote{distance: distance, guard: guard.NewConstructorGuard()}
	}

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		q := newFareQuote(3)
		require.NoError(t, q.guard.Validate(errQuoteNotConstructed))
		assert.InDelta(t, 3.0, q.distance, 0)
	})

	t.Run("copies_keep_guard_state", func(t *testing.T) {
		q := newFareQuote(3)
		cp := q
		require.NoError(t, cp.guard.Validate(errQuoteNotConstructed))
	})

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var q fareQuote
		assert.Equal(t, errQuoteNotConstructed, q.guard.Validate(errQuoteNotConstructed))
	})
}
