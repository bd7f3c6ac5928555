package errs_test

import (
	"errors"
	"testing"

	"rides/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("ride", "123")

		assert.Equal(t, "ride", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("ride", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: ride, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("ID with newlines stays on one line", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("ride", "abc\ndef")
		assert.Equal(t, "object not found: abc def", err.Error())
	})
}

func TestStateIsInvalidError(t *testing.T) {
	t.Run("NewStateIsInvalidError", func(t *testing.T) {
		err := errs.NewStateIsInvalidError("start", "Finished")

		assert.Equal(t, "start", err.Operation)
		assert.Equal(t, "Finished", err.State)
		require.NoError(t, err.Cause)
		assert.Equal(t, "state is invalid: cannot start while in state Finished", err.Error())
		assert.Equal(t, errs.ErrStateIsInvalid, err.Unwrap())
	})

	t.Run("NewStateIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("already finished")
		err := errs.NewStateIsInvalidErrorWithCause("edit", "Finished", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"state is invalid: cannot edit while in state Finished (cause: already finished)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("distance")

		assert.Equal(t, "distance", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: distance", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("state", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: state (cause: invalid format)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("origin")

		assert.Equal(t, "origin", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: origin", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("empty string")
		err := errs.NewValueIsRequiredErrorWithCause("destination", cause)

		assert.Equal(t, "value is required: destination (cause: empty string)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "state is invalid", errs.ErrStateIsInvalid.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("ride", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewStateIsInvalidError("finish", "Requested"), errs.ErrStateIsInvalid)
	require.ErrorIs(t, errs.NewValueIsInvalidError("distance"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsRequiredError("origin"), errs.ErrValueIsRequired)

	var stateErr *errs.StateIsInvalidError
	wrapped := errors.Join(errors.New("other"), errs.NewStateIsInvalidError("remove", "InProgress"))
	require.ErrorAs(t, wrapped, &stateErr)
	assert.Equal(t, "remove", stateErr.Operation)
	assert.Equal(t, "InProgress", stateErr.State)
}
