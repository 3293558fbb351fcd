// Package apperrors defines the error taxonomy of the arithmetic engine,
// separating caller-contract violations (raised as panics carrying a
// ContractError) from recoverable conditions such as parse failures.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types implement the Unwrap() method to support errors.Is() and errors.As().
package apperrors
