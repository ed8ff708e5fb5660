package domain

import "fmt"

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Error codes
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeInvalidTransition = "INVALID_TRANSITION"
	ErrCodeCooldownActive    = "COOLDOWN_ACTIVE"
	ErrCodeTooManyAttempts   = "TOO_MANY_ATTEMPTS"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeConflict          = "CONFLICT"
	ErrCodeCollaborator      = "COLLABORATOR_ERROR"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

// Error constructors

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string) error {
	return &DomainError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError creates a new validation error
func NewValidationError(msg string) error {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// NewInvalidTransitionError reports a registration step attempted out of order
func NewInvalidTransitionError(from, to string) error {
	return &DomainError{
		Code:    ErrCodeInvalidTransition,
		Message: fmt.Sprintf("cannot move from %s to %s", from, to),
	}
}

// NewCooldownActiveError is returned when an OTP resend arrives before the
// cooldown has elapsed
func NewCooldownActiveError(secondsLeft int) error {
	return &DomainError{
		Code:    ErrCodeCooldownActive,
		Message: fmt.Sprintf("Please wait %d seconds before requesting a new code", secondsLeft),
	}
}

// NewTooManyAttemptsError is returned when the configured verification
// attempt limit is exhausted
func NewTooManyAttemptsError() error {
	return &DomainError{
		Code:    ErrCodeTooManyAttempts,
		Message: "Too many incorrect codes. Please request a new one.",
	}
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError() error {
	return &DomainError{
		Code:    ErrCodeUnauthorized,
		Message: "Authentication required",
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(msg string) error {
	return &DomainError{
		Code:    ErrCodeConflict,
		Message: msg,
	}
}

// NewCollaboratorError wraps a failure from an external service (commerce
// backend, SMS provider) with the message the caller should surface
func NewCollaboratorError(msg string, err error) error {
	return &DomainError{
		Code:    ErrCodeCollaborator,
		Message: msg,
		Err:     err,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(err error) error {
	return &DomainError{
		Code:    ErrCodeInternal,
		Message: "An internal error occurred",
		Err:     err,
	}
}

// Helper functions to check error types

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeNotFound
	}
	return false
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeValidation
	}
	return false
}

// IsInvalidTransition checks if the error is an invalid transition error
func IsInvalidTransition(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeInvalidTransition
	}
	return false
}

// IsCooldownActive checks if the error is a cooldown error
func IsCooldownActive(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeCooldownActive
	}
	return false
}

// IsTooManyAttempts checks if the error is an attempt limit error
func IsTooManyAttempts(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeTooManyAttempts
	}
	return false
}

// IsUnauthorized checks if the error is an unauthorized error
func IsUnauthorized(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeUnauthorized
	}
	return false
}

// IsConflict checks if the error is a conflict error
func IsConflict(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeConflict
	}
	return false
}

// IsCollaborator checks if the error came from an external service
func IsCollaborator(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeCollaborator
	}
	return false
}

// GetErrorCode extracts the error code from a domain error
func GetErrorCode(err error) string {
	if de, ok := err.(*DomainError); ok {
		return de.Code
	}
	return ErrCodeInternal
}
