// Package errors provides structured error reporting for statehooks.
//
// Hooks never return errors to the widgets that use them. Faults raised
// inside builds, commit callbacks or initializers are reported to a single
// process-wide ErrorHandler instead.
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
	// KindInit indicates a late initializer failed with a genuine fault.
	KindInit
	// KindEffect indicates a commit callback failed.
	KindEffect
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindBuild indicates a build-time widget error.
	KindBuild
	// KindConfig indicates a configuration load or apply failure.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindEffect:
		return "effect"
	case KindPanic:
		return "panic"
	case KindBuild:
		return "build"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Error is a structured error reported by the framework or a hook.
type Error struct {
	// Op is the operation that failed (e.g. "hooks.LateInitialization").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Hook is the id of the hook instance involved, if any.
	Hook string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Hook != "" {
		return fmt.Sprintf("%s [%s] hook=%s: %v", e.Op, e.Kind, e.Hook, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g. "core.commit").
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

// BuildError represents a failure during widget build.
type BuildError struct {
	// Widget is the type name of the widget that failed.
	Widget string
	// Element is the element type (StatelessElement or StatefulElement).
	Element string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s.Build(): %v", e.Widget, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s.Build(): %v", e.Widget, e.Err)
	}
	return fmt.Sprintf("unknown error in %s.Build()", e.Widget)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the framework and hooks.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBuildError is called when a widget build fails.
	HandleBuildError(err *BuildError)
}
