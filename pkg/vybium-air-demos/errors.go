package vybiumairdemos

import "fmt"

// ErrorCode represents a vybium-air-demos error code
type ErrorCode int

const (
	// ErrUnknown represents an unknown error
	ErrUnknown ErrorCode = iota

	// ErrInvalidConfig represents an invalid configuration error
	ErrInvalidConfig

	// ErrMalformedTrace represents a trace with the wrong shape
	ErrMalformedTrace

	// ErrConstraintViolation represents a trace that breaks its AIR
	ErrConstraintViolation

	// ErrProofGeneration represents a proof generation error
	ErrProofGeneration

	// ErrProofVerification represents a proof verification error
	ErrProofVerification

	// ErrInvalidInput represents an invalid input error
	ErrInvalidInput
)

// DemoError represents a vybium-air-demos error
type DemoError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error returns the error message
func (e *DemoError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vybium-air-demos error [%d]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("vybium-air-demos error [%d]: %s", e.Code, e.Message)
}

// Unwrap returns the cause of the error
func (e *DemoError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error
func (e *DemoError) Is(target error) bool {
	t, ok := target.(*DemoError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
