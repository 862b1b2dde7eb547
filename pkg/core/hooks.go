package core

// UseController creates a controller and registers it for automatic disposal.
// The controller will be disposed when the state is disposed.
//
// Example:
//
//	func (s *myState) InitState() {
//	    s.poller = core.UseController(s, func() *Poller {
//	        return NewPoller(time.Second)
//	    })
//	}
func UseController[C Disposable](s StateHost, create func() C) C {
	base := s.Base()
	controller := create()
	base.OnDispose(func() {
		controller.Dispose()
	})
	return controller
}

// UseListenable subscribes to a listenable and triggers rebuilds.
// The subscription is automatically cleaned up when the state is disposed.
func UseListenable(s StateHost, listenable Listenable) {
	base := s.Base()
	unsub := listenable.AddListener(func() {
		base.SetState(nil)
	})
	base.OnDispose(unsub)
}

// Managed holds a value and triggers rebuilds when it changes.
// It is the state cell every hook in this module is built on.
//
// Managed is NOT thread-safe. It must only be accessed from the UI thread.
// To update from a background goroutine, use StateBase.Go:
//
//	s.Go(func(ctx context.Context) func() {
//	    result := doExpensiveWork(ctx)
//	    return func() { s.data.Set(result) }
//	})
//
// Example:
//
//	type myState struct {
//	    core.StateBase
//	    count *core.Managed[int]
//	}
//
//	func (s *myState) InitState() {
//	    s.count = core.NewManaged(s, 0)
//	}
type Managed[T any] struct {
	base  *StateBase
	value T
}

// NewManaged creates a new managed state value.
// Changes to this value will automatically trigger a rebuild.
func NewManaged[T any](s StateHost, initial T) *Managed[T] {
	return &Managed[T]{
		base:  s.Base(),
		value: initial,
	}
}

// Value returns the current value.
func (m *Managed[T]) Value() T {
	return m.value
}

// Set updates the value and triggers a rebuild.
// It does nothing once the owning state has been disposed.
func (m *Managed[T]) Set(value T) {
	m.base.SetState(func() {
		m.value = value
	})
}

// Update applies a transformation to the current value and triggers a rebuild.
func (m *Managed[T]) Update(transform func(T) T) {
	m.base.SetState(func() {
		m.value = transform(m.value)
	})
}
