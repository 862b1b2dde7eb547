package core

import (
	"context"
	"sync"

	"github.com/go-drift/statehooks/pkg/errors"
)

// StateHost is satisfied by any struct that embeds StateBase.
// Hooks accept a StateHost so callers can pass s directly.
type StateHost interface {
	Base() *StateBase
}

// Base returns s. It lets embedding structs satisfy StateHost.
func (s *StateBase) Base() *StateBase { return s }

// StateBase provides common functionality for stateful widget states.
// Embed this struct in your state to eliminate boilerplate.
//
// Example:
//
//	type myState struct {
//	    core.StateBase
//	    count int
//	}
//
//	func (s *myState) InitState() {
//	    // No need to implement SetElement, SetState, Dispose, etc.
//	}
type StateBase struct {
	element   *StatefulElement
	disposers []func()
	commits   []func()
	disposed  bool
	ctx       context.Context
	cancel    context.CancelFunc
	mu        sync.Mutex
}

// SetElement stores the element reference for triggering rebuilds.
// This method is called automatically by the framework.
func (s *StateBase) SetElement(element *StatefulElement) {
	s.element = element
}

// Element returns the element associated with this state.
// Returns nil if the state has not been mounted.
func (s *StateBase) Element() *StatefulElement {
	return s.element
}

// SetState executes the given function and schedules a rebuild.
// Safe to call even after disposal (becomes a no-op).
//
// SetState is NOT thread-safe. It must only be called from the UI thread.
// To update state from a background goroutine, use Go or Dispatch.
func (s *StateBase) SetState(fn func()) {
	if s.IsDisposed() {
		return
	}
	if fn != nil {
		fn()
	}
	if s.element != nil {
		s.element.MarkNeedsBuild()
	}
}

// OnCommit registers fn to run once, after the build currently in progress
// has been committed (the element and all of its descendants rebuilt).
// Callbacks run in registration order. Call it from Build.
func (s *StateBase) OnCommit(fn func()) {
	if fn == nil || s.IsDisposed() {
		return
	}
	s.commits = append(s.commits, fn)
}

// commit drains and runs pending commit callbacks. A panicking callback is
// reported and does not prevent the remaining callbacks from running.
func (s *StateBase) commit() {
	pending := s.commits
	s.commits = nil
	for _, fn := range pending {
		if s.IsDisposed() {
			return
		}
		func() {
			defer errors.Recover("core.commit")
			fn()
		}()
	}
}

// Context returns a context that is cancelled when the state is disposed.
func (s *StateBase) Context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		if s.disposed {
			s.cancel()
		}
	}
	return s.ctx
}

// Dispatch schedules fn on the UI thread through the owning BuildOwner.
// Returns false when the state is not attached to an owner or has been
// disposed; fn is not run in that case.
func (s *StateBase) Dispatch(fn func()) bool {
	if fn == nil || s.IsDisposed() || s.element == nil || s.element.Owner() == nil {
		return false
	}
	s.element.Owner().Dispatch(func() {
		if s.IsDisposed() {
			return
		}
		fn()
	})
	return true
}

// Go runs work on a new goroutine with the state's context. The function
// work returns, if non-nil, is applied on the UI thread unless the state
// has been disposed by then. Go returns false, without starting work, when
// the state has no owner or is already disposed.
//
// Example:
//
//	s.Go(func(ctx context.Context) func() {
//	    user, err := fetchUser(ctx)
//	    return func() {
//	        s.SetState(func() { s.user, s.err = user, err })
//	    }
//	})
func (s *StateBase) Go(work func(ctx context.Context) func()) bool {
	if work == nil || s.IsDisposed() || s.element == nil || s.element.Owner() == nil {
		return false
	}
	owner := s.element.Owner()
	ctx := s.Context()
	owner.beginTask()
	go func() {
		var apply func()
		defer func() {
			owner.Dispatch(func() {
				if apply != nil && ctx.Err() == nil && !s.IsDisposed() {
					apply()
				}
			})
			owner.endTask()
		}()
		defer errors.Recover("core.StateBase.Go")
		apply = work(ctx)
	}()
	return true
}

// OnDispose registers a cleanup function to be called when the state is disposed.
// Returns an unregister function that can be called to remove the disposer.
// The cleanup function will only be called once.
func (s *StateBase) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		cleanup()
		return func() {}
	}

	index := len(s.disposers)
	s.disposers = append(s.disposers, cleanup)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if index < len(s.disposers) {
			s.disposers[index] = nil
		}
	}
}

// RunDisposers cancels the state's context and executes all registered
// disposers in reverse order. This is called automatically by Dispose().
func (s *StateBase) RunDisposers() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	disposers := s.disposers
	s.disposers = nil
	s.commits = nil
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	for i := len(disposers) - 1; i >= 0; i-- {
		if disposers[i] != nil {
			disposers[i]()
		}
	}
}

// Dispose cleans up resources. Override this method if you need custom cleanup,
// but always call s.RunDisposers() or s.StateBase.Dispose() in your override.
func (s *StateBase) Dispose() {
	s.RunDisposers()
}

// InitState is a no-op default implementation.
// Override this method to initialize your state.
func (s *StateBase) InitState() {}

// Build is a no-op default implementation that returns nil.
// Override this method to build your widget tree.
func (s *StateBase) Build(ctx BuildContext) Widget {
	return nil
}

// DidChangeDependencies is a no-op default implementation.
func (s *StateBase) DidChangeDependencies() {}

// DidUpdateWidget is a no-op default implementation.
// Override this method to respond to widget configuration changes.
func (s *StateBase) DidUpdateWidget(oldWidget StatefulWidget) {}

// IsDisposed returns true if this state has been disposed.
func (s *StateBase) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}
