package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by ContractError values. They allow a caller that
// recovers from a fault to classify it with errors.Is.
var (
	// ErrDivisionByZero is the cause of every fault raised for a zero divisor
	// or a zero modulus.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInexact is the cause of faults raised when Exact rounding meets a
	// non-zero remainder.
	ErrInexact = errors.New("rounding mode Exact requires an exact result")
	// ErrLength is the cause of faults raised for slice length mismatches.
	ErrLength = errors.New("invalid slice lengths")
	// ErrNegative is the cause of faults raised when a Natural result would
	// be negative.
	ErrNegative = errors.New("result would be negative")
	// ErrDomain is the cause of faults raised for out-of-range arguments
	// (invalid base, digit, exponent, shift or width).
	ErrDomain = errors.New("argument out of range")
)

// ContractError describes a caller-contract violation. It is never returned;
// it is the value passed to panic at the point of violation.
type ContractError struct {
	// Op is the name of the operation whose contract was violated.
	Op string
	// Message explains the violation.
	Message string
	// Cause is one of the sentinel errors of this package.
	Cause error
}

// Error returns a formatted message describing the violation.
//
// Returns:
//   - string: The error message string.
func (e ContractError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Cause, e.Message)
}

// Unwrap returns the sentinel cause, allowing errors.Is on recovered values.
func (e ContractError) Unwrap() error { return e.Cause }

// Contract builds a ContractError for op with the given cause and a formatted
// message.
//
// Parameters:
//   - op: The operation name, e.g. "limb.SubToOut".
//   - cause: One of the sentinel errors (ErrLength, ErrDivisionByZero, ...).
//   - format: A format string (see fmt.Sprintf); may be empty.
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - ContractError: the value to pass to panic.
func Contract(op string, cause error, format string, a ...any) ContractError {
	msg := format
	if len(a) > 0 {
		msg = fmt.Sprintf(format, a...)
	}
	return ContractError{Op: op, Message: msg, Cause: cause}
}

// PanicDivisionByZero raises the fault for a zero divisor or modulus.
func PanicDivisionByZero(op string) {
	panic(ContractError{Op: op, Cause: ErrDivisionByZero})
}

// PanicInexact raises the fault for Exact rounding of an inexact result.
func PanicInexact(op string) {
	panic(ContractError{Op: op, Cause: ErrInexact})
}

// ParseError represents a failure to parse textual input (a rounding mode,
// a number, a threshold profile). It is an ordinary recoverable error.
type ParseError struct {
	// Input is the text that could not be parsed.
	Input string
	// Reason explains why parsing failed.
	Reason string
}

// Error returns a formatted message describing the parse failure.
//
// Returns:
//   - string: The error message string.
func (e ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

// ConfigError represents an invalid configuration value, such as a threshold
// below its allowed minimum.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContractError reports whether v, typically the result of recover(), is a
// ContractError whose cause matches target. A nil target matches any cause.
func IsContractError(v any, target error) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	var ce ContractError
	if !errors.As(err, &ce) {
		return false
	}
	return target == nil || errors.Is(ce, target)
}
