// Package errors provides structured error reporting for the controls.
//
// Controls never fail their host on degenerate input; they clamp. What does
// surface is reported through a global [ErrorHandler]: configuration that can
// never render correctly ([ConfigError]), and panics recovered while painting.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates invalid widget or theme configuration.
	KindConfig
	// KindInit indicates an initialization error.
	KindInit
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindTheme indicates a theme file that could not be read or parsed.
	KindTheme
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindInit:
		return "init"
	case KindPanic:
		return "panic"
	case KindTheme:
		return "theme"
	default:
		return "unknown"
	}
}

// ControlError represents a structured error raised by a control.
type ControlError struct {
	// Op is the operation that failed (e.g., "widgets.FloatingLabelField.SetAlignment").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ControlError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ControlError) Unwrap() error {
	return e.Err
}

// ConfigError reports a configuration value a control cannot render.
type ConfigError struct {
	// Field is the configuration field name.
	Field string
	// Value is the rejected value, formatted for display.
	Value string
	// Reason explains what is accepted instead.
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "widgets.PageIndicator.Paint").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the controls.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ControlError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
