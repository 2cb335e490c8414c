// Package errs provides standardized error types for the restaurant service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value breaks a domain rule
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - ObjectNotFoundError: an object cannot be found by its identifier
//   - InvalidReferenceError: identifiers point to objects that do not exist
//   - InvalidStateError: the current state of an object forbids the operation
//   - ObjectIsReferencedError: an object cannot be removed while still in use
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies it
//
// Adapters classify failures with errors.Is against the sentinels and use
// errors.As to reach the details (for example the allowed next states carried
// by InvalidStateError).
package errs
