package core

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies errors for handling decisions.
type ErrorCategory string

const (
	ErrCatValidation ErrorCategory = "validation" // Invalid input
	ErrCatPool       ErrorCategory = "pool"       // Pool preparation failure: fatal for the whole batch
	ErrCatInvocation ErrorCategory = "invocation" // One worker's turn failed: contained to its section
	ErrCatExtraction ErrorCategory = "extraction" // Malformed trace: degrades to placeholder text
	ErrCatInternal   ErrorCategory = "internal"   // Unexpected internal error
)

// DomainError is a structured error from the coordination engine.
type DomainError struct {
	Category  ErrorCategory
	Code      string
	Message   string
	Retryable bool
	Cause     error
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s (%v)", e.Category, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Category, e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches on category and code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Category == t.Category && e.Code == t.Code
}

// WithCause wraps an underlying error.
func (e *DomainError) WithCause(cause error) *DomainError {
	e.Cause = cause
	return e
}

// ErrValidation creates a validation error.
func ErrValidation(code, message string) *DomainError {
	return &DomainError{Category: ErrCatValidation, Code: code, Message: message}
}

// ErrPool creates a pool preparation error. Pool errors abort the whole
// batch and surface through the fallback template.
func ErrPool(code, message string) *DomainError {
	return &DomainError{Category: ErrCatPool, Code: code, Message: message}
}

// ErrInvocation creates a per-worker invocation error. Always contained.
func ErrInvocation(message string) *DomainError {
	return &DomainError{
		Category:  ErrCatInvocation,
		Code:      CodeWorkerFailed,
		Message:   message,
		Retryable: true,
	}
}

// ErrExtraction creates a trace extraction error.
func ErrExtraction(message string) *DomainError {
	return &DomainError{Category: ErrCatExtraction, Code: CodeTraceMalformed, Message: message}
}

// GetCategory extracts the error category, ErrCatInternal when unknown.
func GetCategory(err error) ErrorCategory {
	var domErr *DomainError
	if errors.As(err, &domErr) {
		return domErr.Category
	}
	return ErrCatInternal
}

// GetCode extracts the error code, empty when unknown.
func GetCode(err error) string {
	var domErr *DomainError
	if errors.As(err, &domErr) {
		return domErr.Code
	}
	return ""
}

// IsCategory checks if an error belongs to a category.
func IsCategory(err error, cat ErrorCategory) bool {
	return GetCategory(err) == cat
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	var domErr *DomainError
	if errors.As(err, &domErr) {
		return domErr.Retryable
	}
	return false
}

// Predefined error codes
const (
	CodeEmptyQuery       = "EMPTY_QUERY"
	CodeInvalidMode      = "INVALID_MODE"
	CodeWorkerFailed     = "WORKER_FAILED"
	CodeTraceMalformed   = "TRACE_MALFORMED"
	CodeConstructFailed  = "CONSTRUCT_FAILED"
	CodeCapabilityRepair = "CAPABILITY_REPAIR_FAILED"
	CodeRuntimeMissing   = "RUNTIME_MISSING"
)

// MaxQueryLength is the maximum allowed query length.
const MaxQueryLength = 100000
