package voice

import (
	"errors"
	"fmt"
)

// Error is the base library failure. Validator and registry misuse
// surface as *Error; every vendor failure refines it.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// ProviderError attributes a failure to a vendor. Its message is
// prefixed with the vendor id in brackets.
type ProviderError struct {
	Provider string
	Message  string
	Cause    error
}

// NewProviderError creates a ProviderError. cause may be nil for
// failures detected locally before any vendor call.
func NewProviderError(provider, message string, cause error) *ProviderError {
	return &ProviderError{Provider: provider, Message: message, Cause: cause}
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// As lets errors.As match a ProviderError against the base *Error kind.
func (e *ProviderError) As(target any) bool {
	if t, ok := target.(**Error); ok {
		*t = &Error{Message: e.Error()}
		return true
	}
	return false
}

// NotFoundError is raised when the vendor reports 404 for a known
// resource and id.
type NotFoundError struct {
	ProviderError
	Resource string
	ID       string
}

func NewNotFoundError(provider, resource, id string) *NotFoundError {
	return &NotFoundError{
		ProviderError: ProviderError{
			Provider: provider,
			Message:  fmt.Sprintf("%s not found: %s", resource, id),
		},
		Resource: resource,
		ID:       id,
	}
}

func (e *NotFoundError) Unwrap() error {
	return &e.ProviderError
}

const authenticationMessage = "Authentication failed. Check your API key."

// AuthenticationError is raised when the vendor reports 401.
type AuthenticationError struct {
	ProviderError
}

func NewAuthenticationError(provider string) *AuthenticationError {
	return &AuthenticationError{
		ProviderError: ProviderError{Provider: provider, Message: authenticationMessage},
	}
}

func (e *AuthenticationError) Unwrap() error {
	return &e.ProviderError
}

// IsNotFound reports whether err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsAuthentication reports whether err is or wraps an AuthenticationError.
func IsAuthentication(err error) bool {
	var ae *AuthenticationError
	return errors.As(err, &ae)
}

// AsProviderError returns the ProviderError carried by err, if any.
// NotFoundError and AuthenticationError yield their embedded ProviderError.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

type statusCoder interface {
	StatusCode() int
}

type statuser interface {
	Status() int
}

// StatusCode returns the HTTP status exposed by err through a
// StatusCode() method, or 0.
func StatusCode(err error) int {
	var sc statusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return 0
}

// Status returns the HTTP status exposed by err through a Status()
// method, or 0.
func Status(err error) int {
	var s statuser
	if errors.As(err, &s) {
		return s.Status()
	}
	return 0
}
