package golocale

import (
	"errors"
	"fmt"
)

var errNoStore = errors.New("no durable store configured")

// InvalidInputError indicates a caller passed an empty or unusable argument.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// StoreError indicates a durable store operation failure.
type StoreError struct {
	Op    string // The store operation that failed ("fetch", "exists", "insert")
	Cause error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store error (%s): %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("store error (%s)", e.Op)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a cache operation failure.
type CacheError struct {
	Op    string
	Cause error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error (%s): %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("cache error (%s)", e.Op)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// ProviderError indicates a suggestion provider failure (API error, rate limit, etc.).
type ProviderError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// CountMismatchError indicates a provider returned a different number of
// suggestions than requested.
type CountMismatchError struct {
	Expected int
	Got      int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("suggestion count mismatch: expected %d, got %d", e.Expected, e.Got)
}
