package hooks

import (
	"context"

	"github.com/go-drift/statehooks/pkg/core"
)

// LateInitializationHelpers is returned from the late state hooks
// alongside the value.
type LateInitializationHelpers struct {
	// Initialized reports whether the state has been initialized.
	Initialized bool
}

// LateStateOptions configures LateInitializationState and
// LateInitializedState.
type LateStateOptions struct {
	// Deferred runs the initializer on a background goroutine.
	Deferred bool
}

// LateInitializationState is a state cell whose presence of a value means
// it is initialized. It starts with initial; while that is absent the
// initializer is offered every build until it returns a present value.
// Setting a present value directly also counts as initialization.
type LateInitializationState[T any] struct {
	state *core.Managed[Option[T]]
	late  *LateInitialization[Option[T]]
}

// NewLateInitializationState creates a LateInitializationState owned by
// host. A present initial value means the initializer is never called.
func NewLateInitializationState[T any](host core.StateHost, initial Option[T], opts LateStateOptions) *LateInitializationState[T] {
	state := core.NewManaged(host, initial)
	return &LateInitializationState[T]{
		state: state,
		late: NewLateInitialization(host, LateInitializationOptions[Option[T]]{
			SetState: state.Set,
			Deferred: opts.Deferred,
		}),
	}
}

// Use offers initializer a chance to run and returns the state, its setter
// and whether it is initialized. An initializer returning an absent value
// is treated as not ready.
func (s *LateInitializationState[T]) Use(initializer Initializer[Option[T]], keys ...any) (Option[T], func(Update[Option[T]]), LateInitializationHelpers) {
	var wrapped Initializer[Option[T]]
	if initializer != nil {
		wrapped = func(ctx context.Context) (Option[T], error) {
			v, err := initializer(ctx)
			if err != nil {
				return v, err
			}
			if !v.IsSome() {
				return v, ErrNotReady
			}
			return v, nil
		}
	}
	initialized := s.late.Use(LateInitializationProps[Option[T]]{
		Initializer: wrapped,
		Initialized: s.state.Value().IsSome(),
		Keys:        keys,
	})
	return s.state.Value(), s.Set, LateInitializationHelpers{Initialized: initialized}
}

// Value returns the current state.
func (s *LateInitializationState[T]) Value() Option[T] {
	return s.state.Value()
}

// Set applies u to the state. A present result counts as initialization.
func (s *LateInitializationState[T]) Set(u Update[Option[T]]) {
	s.state.Update(func(prev Option[T]) Option[T] {
		next := u.Apply(prev)
		if next.IsSome() {
			s.late.markInitialized()
		}
		return next
	})
}

// LateInitializedProps are the per-build inputs of LateInitializedState.
type LateInitializedProps struct {
	// Initialized overrides the hook's own flag. True disables the
	// initializer.
	Initialized bool
	// Keys limits attempts as in LateInitializationProps.
	Keys []any
}

// LateInitializedState is a state cell with its own initialized flag. The
// flag starts true when an initial value is given and is set by a
// successful initializer or by any direct Set.
type LateInitializedState[T any] struct {
	base        *core.StateBase
	value       T
	initialized bool
	late        *LateInitialization[T]
}

// NewLateInitializedState creates a LateInitializedState owned by host.
func NewLateInitializedState[T any](host core.StateHost, initial Option[T], opts LateStateOptions) *LateInitializedState[T] {
	s := &LateInitializedState[T]{
		base:        host.Base(),
		value:       initial.OrZero(),
		initialized: initial.IsSome(),
	}
	s.late = NewLateInitialization(host, LateInitializationOptions[T]{
		SetState: s.SetValue,
		Deferred: opts.Deferred,
	})
	return s
}

// Use offers initializer a chance to run and returns the state, its setter
// and whether it is initialized.
func (s *LateInitializedState[T]) Use(initializer Initializer[T], props LateInitializedProps) (T, func(Update[T]), LateInitializationHelpers) {
	initialized := s.late.Use(LateInitializationProps[T]{
		Initializer: initializer,
		Initialized: props.Initialized || s.initialized,
		Keys:        props.Keys,
	})
	return s.value, s.Set, LateInitializationHelpers{Initialized: initialized}
}

// Value returns the current state.
func (s *LateInitializedState[T]) Value() T {
	return s.value
}

// Initialized reports whether the state has been initialized.
func (s *LateInitializedState[T]) Initialized() bool {
	return s.initialized || s.late.Initialized()
}

// Set applies u and marks the state initialized.
func (s *LateInitializedState[T]) Set(u Update[T]) {
	s.base.SetState(func() {
		s.value = u.Apply(s.value)
		s.initialized = true
		s.late.markInitialized()
	})
}

// SetValue replaces the state with v and marks it initialized.
func (s *LateInitializedState[T]) SetValue(v T) {
	s.Set(Value(v))
}
