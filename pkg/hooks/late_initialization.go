package hooks

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/go-drift/statehooks/pkg/core"
	"github.com/go-drift/statehooks/pkg/errors"
)

// ErrNotReady is returned by an Initializer that cannot produce a value
// yet. It is not a failure: the attempt is discarded without a report and
// retried on a later build.
var ErrNotReady = stderrors.New("hooks: not ready")

// Initializer produces the value a late-initialized hook starts with.
// Return ErrNotReady (or use NotReady) to postpone initialization. Any
// other error, or a panic, is reported as a fault and also postpones it.
// ctx is cancelled when the owning state is disposed.
type Initializer[T any] func(ctx context.Context) (T, error)

// NotReady returns the zero value and ErrNotReady.
func NotReady[T any]() (T, error) {
	var zero T
	return zero, ErrNotReady
}

// LateInitializationOptions configures a LateInitialization.
type LateInitializationOptions[T any] struct {
	// SetState receives the initializer's value on success.
	SetState func(T)
	// Deferred runs the initializer on a background goroutine and applies
	// its result on the UI thread. At most one attempt is in flight.
	Deferred bool
}

// LateInitializationProps are the inputs a LateInitialization reads on
// every build.
type LateInitializationProps[T any] struct {
	// Initializer is attempted from the build's commit while the hook is
	// not initialized.
	Initializer Initializer[T]
	// Initialized marks the state as initialized from outside. Once seen
	// true it is latched; passing false later has no effect.
	Initialized bool
	// Keys limits attempts to builds whose keys differ from those of the
	// previous attempt. Without keys every build attempts.
	Keys []any
}

// LateInitialization performs a one-time initialization that may not be
// possible on the first build, for example seeding a selection from a list
// that is still loading. Each build offers the initializer a chance; the
// first success calls SetState and latches the hook as initialized.
//
//	func (s *pickerState) InitState() {
//	    s.selected = core.NewManaged(s, "")
//	    s.init = hooks.NewLateInitialization(s, hooks.LateInitializationOptions[string]{
//	        SetState: s.selected.Set,
//	    })
//	}
//
//	func (s *pickerState) Build(ctx core.BuildContext) core.Widget {
//	    items := ctx.Widget().(Picker).Items
//	    s.init.Use(hooks.LateInitializationProps[string]{
//	        Initializer: func(context.Context) (string, error) {
//	            if len(items) == 0 {
//	                return hooks.NotReady[string]()
//	            }
//	            return items[0], nil
//	        },
//	    })
//	    ...
//	}
type LateInitialization[T any] struct {
	base     *core.StateBase
	id       identity
	setState *Latest[func(T)]
	deferred bool

	didInitialize bool
	external      bool
	attempted     bool
	keys          []any
	inFlight      bool
}

// NewLateInitialization creates a LateInitialization owned by host.
func NewLateInitialization[T any](host core.StateHost, opts LateInitializationOptions[T]) *LateInitialization[T] {
	return &LateInitialization[T]{
		base:     host.Base(),
		id:       newIdentity("late_initialization"),
		setState: NewLatest(opts.SetState),
		deferred: opts.Deferred,
	}
}

// SetStateFunc replaces the function receiving the initialized value.
func (l *LateInitialization[T]) SetStateFunc(fn func(T)) {
	l.setState.Observe(fn)
}

// Use reads this build's props and reports whether the hook is
// initialized.
func (l *LateInitialization[T]) Use(props LateInitializationProps[T]) bool {
	l.external = props.Initialized
	initializer := props.Initializer
	external := props.Initialized
	keys := props.Keys
	l.base.OnCommit(func() {
		l.commit(initializer, external, keys)
	})
	return l.Initialized()
}

// Initialized reports whether the hook is initialized, either from outside
// or by a successful initializer.
func (l *LateInitialization[T]) Initialized() bool {
	return l.external || l.didInitialize
}

// markInitialized latches the hook without running the initializer. State
// compositions call it when their value is set directly, so a deferred
// result still in flight is dropped when it lands.
func (l *LateInitialization[T]) markInitialized() {
	l.didInitialize = true
}

func (l *LateInitialization[T]) commit(initializer Initializer[T], external bool, keys []any) {
	if external {
		l.didInitialize = true
	}
	if l.didInitialize || l.inFlight || initializer == nil {
		return
	}
	if l.attempted && len(keys) > 0 && sameKeys(l.keys, keys) {
		return
	}
	l.attempted = true
	l.keys = keys

	if l.deferred {
		l.inFlight = l.base.Go(func(ctx context.Context) func() {
			out := invoke(ctx, initializer)
			return func() {
				l.inFlight = false
				l.settle(out)
			}
		})
		if l.inFlight {
			return
		}
	}
	l.settle(invoke(l.base.Context(), initializer))
}

// outcome is the result of one initializer call.
type outcome[T any] struct {
	value     T
	err       error
	recovered any
	stack     string
	cancelled bool
}

func invoke[T any](ctx context.Context, initializer Initializer[T]) (out outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			out.recovered = r
			out.stack = errors.CaptureStack()
		}
	}()
	out.value, out.err = initializer(ctx)
	out.cancelled = ctx.Err() != nil
	return out
}

func (l *LateInitialization[T]) settle(out outcome[T]) {
	if l.didInitialize || l.base.IsDisposed() {
		return
	}
	switch {
	case out.recovered != nil:
		errors.ReportPanic(&errors.PanicError{
			Op:         "hooks.LateInitialization",
			Value:      out.recovered,
			StackTrace: out.stack,
			Timestamp:  time.Now(),
		})
		l.id.emitFailed(fmt.Errorf("panic: %v", out.recovered))
		return
	case out.err != nil:
		if stderrors.Is(out.err, ErrNotReady) || out.cancelled {
			return
		}
		errors.ReportHook("hooks.LateInitialization", errors.KindInit, l.id.ID(),
			fmt.Errorf("initializer failed: %w", out.err))
		l.id.emitFailed(out.err)
		return
	}

	if set := l.setState.Current(); set != nil {
		set(out.value)
	}
	l.base.SetState(func() {
		l.didInitialize = true
	})
	l.id.emitInitialized()
}

func sameKeys(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Same(a[i], b[i]) {
			return false
		}
	}
	return true
}
