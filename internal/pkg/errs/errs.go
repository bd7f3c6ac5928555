package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrObjectNotFound marks lookups that matched nothing.
	ErrObjectNotFound = errors.New("object not found")

	// ErrStateIsInvalid marks operations rejected by an entity's current state.
	ErrStateIsInvalid = errors.New("state is invalid")

	// ErrValueIsInvalid marks values that failed validation.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsRequired marks missing mandatory values.
	ErrValueIsRequired = errors.New("value is required")
)

// ObjectNotFoundError reports that no object with the given ID exists.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// StateIsInvalidError reports that Operation is not allowed while an entity is in State.
type StateIsInvalidError struct {
	Operation string
	State     string
	Cause     error
}

// NewStateIsInvalidError creates a StateIsInvalidError without a cause.
func NewStateIsInvalidError(operation string, state string) *StateIsInvalidError {
	return &StateIsInvalidError{
		Operation: operation,
		State:     state,
	}
}

// NewStateIsInvalidErrorWithCause creates a StateIsInvalidError wrapping cause.
func NewStateIsInvalidErrorWithCause(operation string, state string, cause error) *StateIsInvalidError {
	return &StateIsInvalidError{
		Operation: operation,
		State:     state,
		Cause:     cause,
	}
}

func (e *StateIsInvalidError) Error() string {
	msg := fmt.Sprintf("%s: cannot %s while in state %s", ErrStateIsInvalid, e.Operation, e.State)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *StateIsInvalidError) Unwrap() error {
	return ErrStateIsInvalid
}

// ValueIsInvalidError reports that the named parameter holds an invalid value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError reports that the named parameter was not supplied.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// sanitize keeps caller-supplied values on a single line.
func sanitize(v any) string {
	s := fmt.Sprintf("%s", v)
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
