package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInput indicates the input document could not be read, parsed or converted.
	ErrInput = errors.New("input error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrTemplate indicates a template failed to parse or execute.
	ErrTemplate = errors.New("template error")

	// ErrWrite indicates a generated file could not be written.
	ErrWrite = errors.New("write error")
)

// InputError represents a failure to load the source OpenAPI document.
// This includes unreadable files, parse failures and unsupported versions.
type InputError struct {
	// Source is the file path, URL or "<bytes>" identifier of the document
	Source string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *InputError) Error() string {
	msg := "input error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *InputError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *InputError) Is(target error) bool {
	return target == ErrInput
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, unknown emitters
// and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// TemplateError represents a template that failed to parse or render.
type TemplateError struct {
	// Template is the template file name, e.g. "api.tmpl"
	Template string
	// Target is the output file the template was rendering, if known
	Target string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *TemplateError) Error() string {
	msg := "template error"
	if e.Template != "" {
		msg += " in " + e.Template
	}
	if e.Target != "" {
		msg += " (rendering " + e.Target + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *TemplateError) Is(target error) bool {
	return target == ErrTemplate
}

// WriteError represents a failure to write a generated file to disk.
type WriteError struct {
	// Path is the destination file or directory
	Path string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *WriteError) Error() string {
	msg := "write error"
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}
