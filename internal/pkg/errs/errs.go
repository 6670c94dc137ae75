package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")

	ErrAuth             = errors.New("authentication failed")
	ErrValidation       = errors.New("validation failed")
	ErrReferenceLoad    = errors.New("reference data could not be loaded")
	ErrSubmission       = errors.New("submission rejected")
	ErrBackend          = errors.New("backend request failed")
	ErrForbidden        = errors.New("operation requires admin role")
	ErrNotAuthenticated = errors.New("not authenticated")
)

// sanitize keeps error messages on a single line.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

// ObjectNotFoundError reports a missing entity.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that failed a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// BackendError is a non-2xx answer from the logistics backend. Message is the raw
// response text, trimmed.
type BackendError struct {
	StatusCode int
	Message    string
}

func NewBackendError(statusCode int, message string) *BackendError {
	return &BackendError{StatusCode: statusCode, Message: strings.TrimSpace(message)}
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %d", ErrBackend, e.StatusCode)
	}
	return e.Message
}

func (e *BackendError) Unwrap() error {
	return ErrBackend
}

func chain(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}

// userMessage prefers the backend's raw text over the fallback.
func userMessage(cause error, fallback string) string {
	var be *BackendError
	if errors.As(cause, &be) && be.Message != "" {
		return be.Message
	}
	if cause != nil && cause.Error() != "" {
		return cause.Error()
	}
	return fallback
}

// AuthError is returned when the backend rejects credentials.
type AuthError struct {
	Message string
	Cause   error
}

func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}

func NewAuthErrorWithCause(cause error, fallback string) *AuthError {
	return &AuthError{Message: userMessage(cause, fallback), Cause: cause}
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() []error {
	return chain(ErrAuth, e.Cause)
}

// ValidationError carries a user-facing message. Client-detected ones use a fixed
// localized text; backend-reported ones carry the backend text in Message and the
// response in Cause.
type ValidationError struct {
	Message string
	Cause   error
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func NewValidationErrorWithCause(cause error, fallback string) *ValidationError {
	return &ValidationError{Message: userMessage(cause, fallback), Cause: cause}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() []error {
	return chain(ErrValidation, e.Cause)
}

// ReferenceLoadError means at least one catalog fetch failed; Message is the first
// failure encountered.
type ReferenceLoadError struct {
	Message string
	Cause   error
}

func NewReferenceLoadError(cause error, fallback string) *ReferenceLoadError {
	return &ReferenceLoadError{Message: userMessage(cause, fallback), Cause: cause}
}

func (e *ReferenceLoadError) Error() string {
	return e.Message
}

func (e *ReferenceLoadError) Unwrap() []error {
	return chain(ErrReferenceLoad, e.Cause)
}

// SubmissionError means the backend rejected a create or a status patch.
type SubmissionError struct {
	Message string
	Cause   error
}

func NewSubmissionError(cause error, fallback string) *SubmissionError {
	return &SubmissionError{Message: userMessage(cause, fallback), Cause: cause}
}

func (e *SubmissionError) Error() string {
	return e.Message
}

func (e *SubmissionError) Unwrap() []error {
	return chain(ErrSubmission, e.Cause)
}
