package errors

import (
	"fmt"
	"net/http"
)

// DuplicateEmailError signals a signup attempt with an email that is already registered.
type DuplicateEmailError struct {
	Email string
}

// NewDuplicateEmail creates a new duplicate email error
func NewDuplicateEmail(email string) *DuplicateEmailError {
	return &DuplicateEmailError{Email: email}
}

// Error implements the error interface
func (e *DuplicateEmailError) Error() string {
	return "user already exists"
}

// HTTPStatus returns the HTTP status code for this error
func (e *DuplicateEmailError) HTTPStatus() int {
	return http.StatusBadRequest
}

// InvalidCredentialsError signals a login attempt with a wrong password.
type InvalidCredentialsError struct{}

// NewInvalidCredentials creates a new invalid credentials error
func NewInvalidCredentials() *InvalidCredentialsError {
	return &InvalidCredentialsError{}
}

// Error implements the error interface
func (e *InvalidCredentialsError) Error() string {
	return "invalid credentials"
}

// HTTPStatus returns the HTTP status code for this error
func (e *InvalidCredentialsError) HTTPStatus() int {
	return http.StatusUnauthorized
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// NewNotFound creates a new not found error
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// HTTPStatus returns the HTTP status code for this error
func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// RecommendationError wraps a remote-call or parse failure from the
// recommendation API. The underlying failure is never retried.
type RecommendationError struct {
	Message string
	Err     error
}

// NewRecommendation creates a new recommendation error
func NewRecommendation(message string, err error) *RecommendationError {
	return &RecommendationError{Message: message, Err: err}
}

// Error implements the error interface
func (e *RecommendationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *RecommendationError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status code for this error
func (e *RecommendationError) HTTPStatus() int {
	return http.StatusBadGateway
}

// ValidationError represents a validation failure with field-level details
type ValidationError struct {
	Field   string
	Message string
}

// NewValidation creates a new validation error
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// HTTPStatus returns the HTTP status code for this error
func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

// HTTPStatuser is implemented by errors that map themselves to an HTTP status.
type HTTPStatuser interface {
	HTTPStatus() int
}
