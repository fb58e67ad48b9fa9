package errors

import (
	"fmt"
)

// ParseError represents a definition document parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures definition validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StorageError reports a failed read or write against a layout state store.
type StorageError struct {
	Key string
	Op  string
	Err error
}

// NewStorageError constructs a StorageError for the given key and operation ("get" or "set").
func NewStorageError(key, op string, err error) error {
	return &StorageError{Key: key, Op: op, Err: err}
}

func (e *StorageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("storage error: %s %q: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the root error.
func (e *StorageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DefinitionError indicates a role or preset definition that could not be registered.
type DefinitionError struct {
	Kind    string
	Name    string
	Message string
	Err     error
}

// NewDefinitionError constructs a DefinitionError for a role or preset.
func NewDefinitionError(kind, name string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &DefinitionError{Kind: kind, Name: name, Message: message, Err: err}
}

func (e *DefinitionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Name != "" {
		return fmt.Sprintf("definition error [%s %s]: %s", e.Kind, e.Name, e.Message)
	}
	return fmt.Sprintf("definition error [%s]: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying error.
func (e *DefinitionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
