package errors

import (
	"fmt"
	"io"
	"os"
	"time"
)

// LogHandler is an ErrorHandler that writes errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out overrides the destination. Nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs an Error as "op [kind] hook=id: err". Verbose output
// adds the report time and the stack trace when one was captured.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	w := h.out()
	fmt.Fprintf(w, "[hooks error] %s", err.Op)
	if err.Kind != KindUnknown {
		fmt.Fprintf(w, " [%s]", err.Kind)
	}
	if err.Hook != "" {
		fmt.Fprintf(w, " hook=%s", err.Hook)
	}
	fmt.Fprintf(w, ": %v\n", err.Err)
	if !h.Verbose {
		return
	}
	if !err.Timestamp.IsZero() {
		fmt.Fprintf(w, "  at %s\n", err.Timestamp.Format(time.RFC3339Nano))
	}
	if err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[hooks panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[hooks panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandleBuildError logs a BuildError.
func (h *LogHandler) HandleBuildError(err *BuildError) {
	if err == nil {
		return
	}
	w := h.out()
	fmt.Fprintf(w, "[hooks build] %s\n", err.Error())
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
