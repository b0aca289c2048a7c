// Package errors defines the error types returned at tinct's boundaries: the
// settings file and host appearance sources. Theme resolution itself never
// fails.
package errors

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ParseError reports a settings file that could not be read or decoded.
type ParseError struct {
	Path string
	// Line is 1-based, or 0 when the decoder did not report a position.
	Line int
	Err  error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	return &ParseError{Path: path, Line: line, Err: err}
}

// Format returns the settings format implied by the file extension.
func (e *ParseError) Format() string {
	if e == nil {
		return ""
	}
	switch strings.ToLower(filepath.Ext(e.Path)) {
	case ".toml":
		return "toml"
	default:
		return "yaml"
	}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	location := e.Path
	if e.Line > 0 {
		location = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return fmt.Sprintf("read %s settings %s: %v", e.Format(), location, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a setting whose value is not allowed.
type ValidationError struct {
	// Field is the dotted settings key, e.g. log.level.
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
	if e.Field == "" {
		return "invalid settings: " + e.Message
	}
	return fmt.Sprintf("invalid setting %q: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SourceError reports a failure to query or watch a host appearance source.
type SourceError struct {
	Source string
	Op     string
	Err    error
}

// NewSourceError constructs a SourceError for the named source and operation.
func NewSourceError(source, op string, err error) error {
	return &SourceError{Source: source, Op: op, Err: err}
}

func (e *SourceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op == "" {
		return fmt.Sprintf("appearance source %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("appearance source %s: %s: %v", e.Source, e.Op, e.Err)
}

func (e *SourceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsSettingsError reports whether err came from reading or validating the
// settings file.
func IsSettingsError(err error) bool {
	var parseErr *ParseError
	var validationErr *ValidationError
	return errors.As(err, &parseErr) || errors.As(err, &validationErr)
}
