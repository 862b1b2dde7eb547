package hooks

// Latest is a mutable cell holding the value seen by the most recent
// build. Writing to it never schedules a rebuild; it exists so commit
// callbacks and background continuations read the current callback instead
// of the one captured when they were registered.
//
//	func (s *formState) InitState() {
//	    s.onSubmit = hooks.NewLatest[func()](nil)
//	}
//
//	func (s *formState) Build(ctx core.BuildContext) core.Widget {
//	    s.onSubmit.Observe(ctx.Widget().(Form).OnSubmit)
//	    ...
//	}
type Latest[T any] struct {
	value T
}

// NewLatest returns a cell holding initial.
func NewLatest[T any](initial T) *Latest[T] {
	return &Latest[T]{value: initial}
}

// Observe stores v as the current value and returns the cell.
func (l *Latest[T]) Observe(v T) *Latest[T] {
	l.value = v
	return l
}

// Current returns the most recently observed value.
func (l *Latest[T]) Current() T {
	return l.value
}
