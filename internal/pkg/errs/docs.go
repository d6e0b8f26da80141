// Package errs provides standardized error types for the shootdesk application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ConflictError: For uniqueness conflicts (duplicate slug, duplicate checksum)
//   - ConcurrencyConflictError: For stale optimistic-concurrency versions
//   - QuotaExceededError: For counters that would overflow their configured limit
//   - InvalidOperationError: For operations not permitted in the object's current state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// throughout the application. The HTTP adapter maps each sentinel to a status
// code in one place, so nothing below the API edge knows about HTTP.
package errs
