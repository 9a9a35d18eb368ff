// Package errors provides custom error types for the authormatch system.
// These errors enable programmatic error checking and a single user-facing
// message at the top of a reconciliation run.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the authormatch system
var (
	// ErrEmptyTemplate indicates the template file yielded zero parsed rows
	ErrEmptyTemplate = errors.New("template file is empty")

	// ErrNoValidData indicates all data files yielded zero usable rows
	ErrNoValidData = errors.New("no valid data rows")

	// ErrNoOutput indicates the matching phase produced zero output rows
	ErrNoOutput = errors.New("no output rows produced")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
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
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing delimited input
type ParseError struct {
	Format  string // "csv", "tsv"
	File    string
	Line    int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s file %s at line %d: %s", e.Format, e.File, e.Line, e.Message)
	}
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
	Operation string // "read", "write", "create", "open", "close"
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

// ExportError represents a failure while serializing the result set
type ExportError struct {
	Format string // "csv", "xlsx", "html"
	Path   string
	Err    error
}

// Error implements the error interface
func (e *ExportError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("export error writing %s to %s: %v", e.Format, e.Path, e.Err)
	}
	return fmt.Sprintf("export error writing %s: %v", e.Format, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError
func NewExportError(format, path string, err error) *ExportError {
	return &ExportError{Format: format, Path: path, Err: err}
}

// ReconcileError represents a terminal failure of a reconciliation run.
// It carries which phase failed so the CLI can report one message and stop.
type ReconcileError struct {
	Phase string // "template", "data", "match", "export"
	Err   error
}

// Error implements the error interface
func (e *ReconcileError) Error() string {
	return fmt.Sprintf("reconciliation failed during %s phase: %v", e.Phase, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ReconcileError) Unwrap() error {
	return e.Err
}

// NewReconcileError creates a new ReconcileError
func NewReconcileError(phase string, err error) *ReconcileError {
	return &ReconcileError{Phase: phase, Err: err}
}

// Helper functions for error checking

// IsEmptyTemplate checks if an error signals an empty template file
func IsEmptyTemplate(err error) bool {
	return errors.Is(err, ErrEmptyTemplate)
}

// IsNoValidData checks if an error signals an unusable data-file set
func IsNoValidData(err error) bool {
	return errors.Is(err, ErrNoValidData)
}

// IsNoOutput checks if an error signals an empty result set
func IsNoOutput(err error) bool {
	return errors.Is(err, ErrNoOutput)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Helper wrapping functions for common patterns

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

// WrapExport wraps an error as an ExportError
func WrapExport(format, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewExportError(format, path, err)
}
