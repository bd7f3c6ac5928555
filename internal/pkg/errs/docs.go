// Package errs provides the error kinds shared by the ride service.
//
// Each kind pairs a sentinel error with a struct type carrying details:
//   - ObjectNotFoundError (ErrObjectNotFound): a lookup by ID matched nothing
//   - StateIsInvalidError (ErrStateIsInvalid): an operation is not allowed in the current state
//   - ValueIsInvalidError (ErrValueIsInvalid): a value failed validation
//   - ValueIsRequiredError (ErrValueIsRequired): a mandatory value is missing
//
// The struct types unwrap to their sentinel, so callers classify errors with
// errors.Is and read the details with errors.As.
package errs
