// Package errs provides standardized error types for the logistics portal.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two families of errors:
//   - Value errors raised by domain constructors: ValueIsRequiredError,
//     ValueIsInvalidError, ValueIsOutOfRangeError and ObjectNotFoundError
//   - Workflow errors reported to the user: AuthError, ValidationError,
//     ReferenceLoadError, SubmissionError, plus BackendError for raw non-2xx answers
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is and errors.As reach the sentinel and the cause
//
// Workflow errors keep the backend's raw text as their message, since that text is
// what the portal shows to the user.
package errs
