// Package errs provides standardized error types for the delivery tracking service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed or missing input
//   - ObjectNotFoundError: an identifier that does not resolve to a stored record
//   - InvalidStateError: a lifecycle action that is illegal for the current state
//   - VersionIsInvalidError: an optimistic concurrency conflict
//   - StorageError: a persistence failure, propagated unchanged to the caller
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// InvalidStateError and StorageError unwrap to both their sentinel and their
// cause, so errors.Is matches the generic kind as well as the specific one.
package errs
