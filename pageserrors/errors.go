package pageserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrDuplicateRestItem indicates the same rest pattern was configured twice.
	ErrDuplicateRestItem = errors.New("duplicate rest item")

	// ErrMeta indicates a directory metadata file could not be parsed.
	ErrMeta = errors.New("metadata error")

	// ErrNavEntry indicates a navigation entry could not be resolved.
	ErrNavEntry = errors.New("navigation entry error")

	// ErrPhase indicates a build hook ran out of order or more than once.
	ErrPhase = errors.New("phase order error")

	// ErrPrune indicates a filesystem failure while pruning unreferenced files.
	ErrPrune = errors.New("prune error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// DuplicateRestItemError is returned when a rest pattern occurs twice in a
// single navigation configuration. It is always fatal.
type DuplicateRestItemError struct {
	// Pattern is the rest entry as written in the configuration (e.g. "... | flat | *.md")
	Pattern string
	// Source is the configuration file the pattern was found in
	Source string
}

// Error returns a human-readable error message.
func (e *DuplicateRestItemError) Error() string {
	msg := fmt.Sprintf("duplicate rest item %q", e.Pattern)
	if e.Source != "" {
		msg += " in " + e.Source
	}
	return msg + ": each rest pattern may only be used once"
}

// Is reports whether target matches this error type.
func (e *DuplicateRestItemError) Is(target error) bool {
	return target == ErrDuplicateRestItem
}

// MetaError represents a directory metadata file that exists but cannot be
// decoded. A missing or unreadable file is never a MetaError.
type MetaError struct {
	// Path is the metadata file path
	Path string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *MetaError) Error() string {
	msg := "metadata error"
	if e.Path != "" {
		msg += " in " + e.Path
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
func (e *MetaError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *MetaError) Is(target error) bool {
	return target == ErrMeta
}

// NavEntryError represents a navigation entry that points at nothing.
// Only returned in strict mode; otherwise the condition is logged.
type NavEntryError struct {
	// Entry is the entry as written
	Entry string
	// Source is the file or directory the entry was declared in
	Source string
}

// Error returns a human-readable error message.
func (e *NavEntryError) Error() string {
	msg := fmt.Sprintf("navigation entry %q", e.Entry)
	if e.Source != "" {
		msg += " in " + e.Source
	}
	return msg + " does not point to an existing page or section"
}

// Is reports whether target matches this error type.
func (e *NavEntryError) Is(target error) bool {
	return target == ErrNavEntry
}

// PhaseError is returned when a lifecycle hook is invoked out of order.
type PhaseError struct {
	// Hook is the hook that was invoked
	Hook string
	// Current is the phase the build was in when Hook was invoked
	Current string
}

// Error returns a human-readable error message.
func (e *PhaseError) Error() string {
	return fmt.Sprintf("phase order error: %s cannot run after %s", e.Hook, e.Current)
}

// Is reports whether target matches this error type.
func (e *PhaseError) Is(target error) bool {
	return target == ErrPhase
}

// PruneError represents a filesystem failure while deleting an unreferenced
// file or an emptied directory. Deletions performed before the failure are
// not rolled back.
type PruneError struct {
	// Op is the failed operation: "walk", "remove" or "rmdir"
	Op string
	// Path is the file or directory involved
	Path string
	// Cause is the underlying error
	Cause error
}

// Error returns a human-readable error message.
func (e *PruneError) Error() string {
	msg := "prune error"
	if e.Op != "" {
		msg += " during " + e.Op
	}
	if e.Path != "" {
		msg += " of " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PruneError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PruneError) Is(target error) bool {
	return target == ErrPrune
}

// ConfigError represents an invalid configuration or input.
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
