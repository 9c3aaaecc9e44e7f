package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrConflict indicates a duplicate entry within one scope
	// (field, map key, status code, content type, parameter, security name, path+method).
	ErrConflict = errors.New("conflict")

	// ErrTagConflict indicates a tagged union whose tag collides with a field or with its content key.
	ErrTagConflict = errors.New("tag conflict")

	// ErrShape indicates a shape that the receiving builder cannot describe.
	ErrShape = errors.New("unsupported shape")

	// ErrRegistry indicates a schema registry failure.
	ErrRegistry = errors.New("registry error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrUnreachable is returned by placeholders that should never be invoked.
	ErrUnreachable = errors.New("unreachable")
)

// ConflictError represents a duplicate entry inside a single builder session.
type ConflictError struct {
	// Kind names what was duplicated: "field", "status code", "content type", ...
	Kind string
	// Scope optionally names the enclosing element (e.g., "GET /users").
	Scope string
	// Key is the duplicated value
	Key string
	// Message overrides the default description
	Message string
}

// Error returns a human-readable error message.
func (e *ConflictError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("duplicate entry for %s %s", e.Kind, e.Key)
	}
	if e.Scope != "" {
		msg += " in " + e.Scope
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// TagConflictError reports a tagged union whose tag name is unusable.
type TagConflictError struct {
	// Tag is the tag field name
	Tag string
	// Content is the content field name for adjacently tagged unions
	Content string
	// Variant is the offending variant, if any
	Variant string
	// Field is the record field that collides with the tag, if any
	Field string
}

// Error returns a human-readable error message.
func (e *TagConflictError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("tag conflict: variant %s has a field named like the tag %q", e.Variant, e.Tag)
	}
	return fmt.Sprintf("tag conflict: adjacent tag and content must differ (both %q)", e.Tag)
}

// Is reports whether target matches this error type.
func (e *TagConflictError) Is(target error) bool {
	return target == ErrTagConflict
}

// ShapeError represents a shape that cannot be handled at this point of the walk.
type ShapeError struct {
	// Adapter names the component that rejected the shape (e.g., "flatten")
	Adapter string
	// Got describes the rejected shape, e.g. "a sequence"
	Got string
	// Message describes the failure
	Message string
}

// Error returns a human-readable error message.
func (e *ShapeError) Error() string {
	msg := e.Message
	if e.Got != "" {
		msg += fmt.Sprintf(" (got %s)", e.Got)
	}
	if e.Adapter != "" {
		return e.Adapter + ": " + msg
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}

// RegistryErrorKind classifies registry failures.
type RegistryErrorKind int

const (
	// RegistryConflict means two definition sites claimed one schema name.
	RegistryConflict RegistryErrorKind = iota + 1
	// RegistryStillShared means finalization happened while a handle was outstanding.
	RegistryStillShared
	// RegistryPending means a name was reserved but never defined.
	RegistryPending
	// RegistryFinalized means the registry was used after finalization.
	RegistryFinalized
)

// RegistryError represents a failure of the schema registry.
type RegistryError struct {
	Kind RegistryErrorKind
	// Name is the schema name involved, if any
	Name string
	// Site is the definition site of the registered schema
	Site string
	// OtherSite is the conflicting definition site
	OtherSite string
	// Outstanding is the number of shared handles still alive
	Outstanding int
}

// Error returns a human-readable error message.
func (e *RegistryError) Error() string {
	switch e.Kind {
	case RegistryConflict:
		return fmt.Sprintf("registry error: conflicting definitions for schema %s (%s and %s)", e.Name, e.Site, e.OtherSite)
	case RegistryStillShared:
		return fmt.Sprintf("registry error: cannot finalize while %d handle(s) are still shared", e.Outstanding)
	case RegistryPending:
		return fmt.Sprintf("registry error: schema %s was reserved at %s but never defined", e.Name, e.Site)
	case RegistryFinalized:
		return "registry error: registry already finalized"
	default:
		return "registry error"
	}
}

// Is reports whether target matches this error type.
func (e *RegistryError) Is(target error) bool {
	return target == ErrRegistry
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
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
