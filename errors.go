package kson

import (
	"fmt"

	"github.com/pkg/errors"
)

// Core error definitions
var (
	// Parsing errors
	ErrInvalidJSON   = errors.New("invalid JSON format")
	ErrDepthLimit    = errors.New("depth limit exceeded")
	ErrDuplicateKey  = errors.New("duplicate object key")
	ErrInvalidNumber = errors.New("invalid number")

	// Data model errors
	ErrNotArray        = errors.New("json is not an array")
	ErrNotObject       = errors.New("json is not an object")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotConvertible  = errors.New("value is not convertible to json")

	// Conversion errors
	ErrConversion = errors.New("conversion failed")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
)

// JsonsError represents a failed operation on the data model or the serializer
type JsonsError struct {
	Op      string `json:"op"`      // Operation that failed
	Message string `json:"message"` // Human-readable error message
	Err     error  `json:"err"`     // Underlying error
}

func (e *JsonsError) Error() string {
	return fmt.Sprintf("JSON %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support
func (e *JsonsError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling
func (e *JsonsError) Is(target error) bool {
	if target == nil {
		return false
	}

	if targetErr, ok := target.(*JsonsError); ok {
		return e.Op == targetErr.Op && e.Err == targetErr.Err
	}

	return errors.Is(e.Err, target)
}

// ParseError reports malformed JSON text together with the 1-based position
// of the offending character.
type ParseError struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Message string `json:"message"`
	Err     error  `json:"err"` // ErrInvalidJSON, ErrDepthLimit, ErrDuplicateKey or a read error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("JSON parsing error at line %d, column %d: %s", e.Row, e.Col, e.Message)
}

// Unwrap returns the underlying error for error chain support
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConversionError reports a value that cannot be represented as the requested kind
type ConversionError struct {
	From    string `json:"from"`
	To      Kind   `json:"to"`
	Message string `json:"message"`
	Err     error  `json:"err"`
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("cannot convert %s to %s", e.From, e.To)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns the underlying error for error chain support
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Is matches ErrConversion as well as the wrapped cause
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion || (e.Err != nil && errors.Is(e.Err, target))
}

// internalError signals a broken parser invariant. It is raised with panic,
// never returned, because no input can legitimately trigger it.
type internalError string

func (e internalError) Error() string {
	return "internal error: " + string(e)
}

// newOperationError creates a JsonsError for operation failures
func newOperationError(operation, message string, err error) error {
	return &JsonsError{
		Op:      operation,
		Message: message,
		Err:     err,
	}
}

// newConversionError creates a ConversionError naming both kinds
func newConversionError(value any, to Kind, cause error) error {
	e := &ConversionError{
		From: kindName(value),
		To:   to,
		Err:  cause,
	}
	if cause != nil {
		e.Message = errors.Cause(cause).Error()
	}
	return e
}

// IsParseError reports whether err carries a parse position
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsConversionError reports whether err is a failed value conversion
func IsConversionError(err error) bool {
	return errors.Is(err, ErrConversion)
}
