package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// handlerSlot boxes the installed handler so it can be swapped atomically
// from config reloads while hooks report on the UI thread.
type handlerSlot struct {
	h ErrorHandler
}

var current atomic.Pointer[handlerSlot]

func init() {
	current.Store(&handlerSlot{h: &LogHandler{}})
}

// SetHandler installs the global error handler. Pass nil to restore a
// terse LogHandler. Safe to call from any goroutine.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	current.Store(&handlerSlot{h: h})
}

// Handler returns the installed error handler.
func Handler() ErrorHandler {
	return current.Load().h
}

// Report sends an error to the installed handler, stamping it first.
func Report(err *Error) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandleError(err)
}

// ReportHook reports err as a failure of the hook instance id during op.
// A nil err is ignored.
func ReportHook(op string, kind ErrorKind, hook string, err error) {
	if err == nil {
		return
	}
	Report(&Error{Op: op, Kind: kind, Hook: hook, Err: err})
}

// ReportPanic sends a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandlePanic(err)
}

// ReportBuildError sends a failed build to the installed handler.
func ReportBuildError(err *BuildError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandleBuildError(err)
}

func stamp(ts *time.Time) {
	if ts.IsZero() {
		*ts = time.Now()
	}
}

// Recover reports a panic in progress. Use it deferred:
//
//	defer errors.Recover("core.commit")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// RecoverWithCallback is like Recover but also hands the panic value to
// callback after reporting it.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
		if callback != nil {
			callback(r)
		}
	}
}

func reportRecovered(op string, r any) {
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
	})
}

// CaptureStack returns the caller's stack, one "function\n\tfile:line"
// entry per frame. Frames inside the runtime (panic machinery, goexit)
// are left out so traces start at hook or widget code.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(2, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") {
			sb.WriteString(frame.Function)
			sb.WriteString("\n\t")
			sb.WriteString(frame.File)
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(frame.Line))
			sb.WriteByte('\n')
		}
		if !more {
			break
		}
	}
	return sb.String()
}
