package vsapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError represents a single error returned by the VirtStack API.
type APIError struct {
	Code   int    `json:"code"   yaml:"code"`
	Title  string `json:"title"  yaml:"title"`
	Detail string `json:"detail" yaml:"detail"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (code: %d)", e.Title, e.Detail, e.Code)
}

// ResponseError represents the error envelope returned by the API.
type ResponseError struct {
	StatusCode int        `json:"-"      yaml:"-"`
	Errors     []APIError `json:"errors" yaml:"errors"`
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}

	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	return fmt.Sprintf("multiple errors: %v", e.Errors)
}

// FirstError returns the first error or nil.
func (e *ResponseError) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// ParseResponseError parses an error envelope from JSON.
func ParseResponseError(statusCode int, data []byte) *ResponseError {
	errResp := ResponseError{StatusCode: statusCode}
	_ = json.Unmarshal(data, &errResp)

	return &errResp
}

// AuthConfigError reports that an operation declared a credential requirement
// the configured client cannot satisfy. It is not retryable; the caller must
// reconfigure the client.
type AuthConfigError struct {
	Missing []CredentialKind
}

// Error implements the error interface.
func (e *AuthConfigError) Error() string {
	kinds := make([]string, len(e.Missing))
	for i, kind := range e.Missing {
		kinds[i] = string(kind)
	}

	return fmt.Sprintf("missing credentials: %s", strings.Join(kinds, ", "))
}

// NotFoundError reports that a fetch-by-key scan found no entry matching the
// key. It is not retryable for the same key unless the entity is created
// remotely in the meantime.
type NotFoundError struct {
	Resource string
	Key      string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// UnrecognizedStateError reports a value outside the vocabulary this client
// understands, typically a new enum value introduced server-side. It signals
// a forward-compatibility gap and is never silently coerced.
type UnrecognizedStateError struct {
	Field string
	Value string
}

// Error implements the error interface.
func (e *UnrecognizedStateError) Error() string {
	return fmt.Sprintf("unrecognized %s value %q", e.Field, e.Value)
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired   = errors.New("config is required")
	ErrEndpointRequired = errors.New("API endpoint is required")
	ErrNoItems          = errors.New("sequence is empty")
	ErrIndexOutOfRange  = errors.New("index out of range")
)

// IsNotFound checks if the error is a fetch-by-key miss.
func IsNotFound(err error) bool {
	notFound := &NotFoundError{}

	return errors.As(err, &notFound)
}

// IsAuthConfig checks if the error is a credential configuration failure.
func IsAuthConfig(err error) bool {
	authErr := &AuthConfigError{}

	return errors.As(err, &authErr)
}

// IsUnrecognizedState checks if the error is a forward-compatibility decoding
// failure.
func IsUnrecognizedState(err error) bool {
	stateErr := &UnrecognizedStateError{}

	return errors.As(err, &stateErr)
}
