package intl

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSchemaInference indicates the probe rendering for a locale/option
// pair could not be decomposed into typed parts.
var ErrSchemaInference = errors.New("intl: cannot infer format schema")

// ErrNotFound indicates a name was absent from a lookup table.
var ErrNotFound = errors.New("intl: name not found")

// ErrNoMatch indicates input text did not match a format pattern.
var ErrNoMatch = errors.New("intl: input does not match format")

// ErrUnparseable indicates every candidate format was tried and none
// produced a value.
var ErrUnparseable = errors.New("intl: unparseable input")

// ErrUnsupportedOptions indicates an option set the formatting
// facility cannot honor.
var ErrUnsupportedOptions = errors.New("intl: unsupported options")

// SchemaInferenceError reports which probe fields never surfaced in
// the rendered output.
type SchemaInferenceError struct {
	Locale   string
	Rendered string
	Missing  []string
}

func (e *SchemaInferenceError) Error() string {
	if len(e.Missing) == 0 {
		return fmt.Sprintf("intl: cannot infer format schema for %q from %q", e.Locale, e.Rendered)
	}
	return fmt.Sprintf("intl: cannot infer format schema for %q from %q: missing %s",
		e.Locale, e.Rendered, strings.Join(e.Missing, ", "))
}

func (e *SchemaInferenceError) Unwrap() error { return ErrSchemaInference }

// NotFoundError reports a failed lookup against a named table.
type NotFoundError struct {
	Name   string
	Table  string
	Locale string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("intl: %q not found in %s table for %q", e.Name, e.Table, e.Locale)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NoMatchError reports the pattern an input failed to satisfy.
type NoMatchError struct {
	Input string
	Expr  string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("intl: %q does not match %s", e.Input, e.Expr)
}

func (e *NoMatchError) Unwrap() error { return ErrNoMatch }

// UnparseableError reports input rejected by every candidate format.
type UnparseableError struct {
	Input string
}

func (e *UnparseableError) Error() string {
	return fmt.Sprintf("intl: unparseable input %q", e.Input)
}

func (e *UnparseableError) Unwrap() error { return ErrUnparseable }

// UnsupportedOptionsError reports why an option set was rejected.
type UnsupportedOptionsError struct {
	Reason string
}

func (e *UnsupportedOptionsError) Error() string {
	return "intl: unsupported options: " + e.Reason
}

func (e *UnsupportedOptionsError) Unwrap() error { return ErrUnsupportedOptions }
