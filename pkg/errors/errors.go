// Package errors provides custom error types for the gazetteer system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the gazetteer system
var (
	// ErrNotFound indicates that a referenced place, position, or id was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidMerge indicates that a merge request was rejected before any mutation
	ErrInvalidMerge = errors.New("invalid merge")

	// ErrMalformedRecord indicates that a candidate record is missing a required field
	ErrMalformedRecord = errors.New("malformed record")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedSource indicates that no adapter handles the requested gazetteer
	ErrUnsupportedSource = errors.New("unsupported source")

	// ErrRateLimited indicates that an external service rate limit has been exceeded
	ErrRateLimited = errors.New("rate limited")

	// ErrNotImplemented indicates that a feature is not yet implemented
	ErrNotImplemented = errors.New("not implemented")
)

// NotFoundError represents an error when a place, display position, or id
// cannot be resolved against the local gazetteer.
type NotFoundError struct {
	Resource string // "place", "position", "source"
	Ref      string // the position or id that failed to resolve
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.Ref)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, ref string) *NotFoundError {
	return &NotFoundError{Resource: resource, Ref: ref}
}

// InvalidMergeError represents a merge request rejected before any mutation
// occurred, such as merging a place into itself.
type InvalidMergeError struct {
	Source string
	Target string
	Reason string
}

// Error implements the error interface
func (e *InvalidMergeError) Error() string {
	return fmt.Sprintf("cannot merge %s into %s: %s", e.Source, e.Target, e.Reason)
}

// Is implements errors.Is support
func (e *InvalidMergeError) Is(target error) bool {
	return target == ErrInvalidMerge
}

// NewInvalidMergeError creates a new InvalidMergeError
func NewInvalidMergeError(source, target, reason string) *InvalidMergeError {
	return &InvalidMergeError{Source: source, Target: target, Reason: reason}
}

// MalformedRecordError represents a candidate record rejected before any
// entity was created, such as a name with neither an attested form nor a
// romanized form.
type MalformedRecordError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *MalformedRecordError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed record field %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed record: %s", e.Reason)
}

// Is implements errors.Is support
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// NewMalformedRecordError creates a new MalformedRecordError
func NewMalformedRecordError(field, reason string) *MalformedRecordError {
	return &MalformedRecordError{Field: field, Reason: reason}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// SearchParameterError represents a search parameter rejected by an
// external gazetteer adapter.
type SearchParameterError struct {
	Source  string
	Message string
}

// Error implements the error interface
func (e *SearchParameterError) Error() string {
	return fmt.Sprintf("gazetteer %q: %s", e.Source, e.Message)
}

// Is implements errors.Is support
func (e *SearchParameterError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewSearchParameterError creates a new SearchParameterError
func NewSearchParameterError(source, message string) *SearchParameterError {
	return &SearchParameterError{Source: source, Message: message}
}

// APIError represents an error from an external gazetteer API
type APIError struct {
	Source     string // Source ID as string
	StatusCode int
	Message    string
	Endpoint   string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error from %s (status %d): %s", e.Source, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error from %s: %s", e.Source, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *APIError) Is(target error) bool {
	if e.StatusCode == 429 {
		return target == ErrRateLimited
	}
	return false
}

// NewAPIError creates a new APIError
func NewAPIError(source string, statusCode int, message string) *APIError {
	return &APIError{
		Source:     source,
		StatusCode: statusCode,
		Message:    message,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", "rss", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "delete", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidMerge checks if an error is an invalid merge error
func IsInvalidMerge(err error) bool {
	return errors.Is(err, ErrInvalidMerge)
}

// IsMalformedRecord checks if an error is a malformed record error
func IsMalformedRecord(err error) bool {
	return errors.Is(err, ErrMalformedRecord)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsRateLimited checks if an error is a rate limit error
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapAPI wraps an error as an APIError
func WrapAPI(source string, statusCode int, err error) error {
	if err == nil {
		return nil
	}
	return &APIError{
		Source:     source,
		StatusCode: statusCode,
		Message:    err.Error(),
		Err:        err,
	}
}
