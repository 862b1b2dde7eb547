package hooks

import "github.com/go-drift/statehooks/pkg/core"

// ControllableOptions configures a Controllable.
type ControllableOptions[T any] struct {
	// Default seeds the internal value used while uncontrolled.
	Default Option[T]
	// Equal overrides change detection. Defaults to Same.
	Equal func(a, b T) bool
}

// ControllableProps are the inputs a Controllable reads on every build.
type ControllableProps[T any] struct {
	// Value is the controlled value. A present Value puts the hook in
	// controlled mode for this build.
	Value Option[T]
	// OnChange receives every new value, controlled or not.
	OnChange func(Option[T])
}

// Controllable merges an optional controlled value with internally owned
// state, the way form inputs accept either value+onChange or a default.
//
// The mode is decided on every build from whether Value is present, so a
// widget may switch between controlled and uncontrolled at any time.
//
//	type sliderState struct {
//	    core.StateBase
//	    level *hooks.Controllable[int]
//	}
//
//	func (s *sliderState) InitState() {
//	    w := s.Element().Widget().(Slider)
//	    s.level = hooks.NewControllable(s, hooks.ControllableOptions[int]{Default: w.Default})
//	}
//
//	func (s *sliderState) Build(ctx core.BuildContext) core.Widget {
//	    w := ctx.Widget().(Slider)
//	    level, setLevel := s.level.Use(hooks.ControllableProps[int]{Value: w.Value, OnChange: w.OnChange})
//	    ...
//	}
type Controllable[T any] struct {
	base     *core.StateBase
	id       identity
	same     func(a, b T) bool
	internal *core.Managed[Option[T]]
	onChange *Latest[func(Option[T])]

	// committed is the internal value seen by the last commit.
	committed  Option[T]
	controlled bool
	value      Option[T]
}

// NewControllable creates a Controllable owned by host.
func NewControllable[T any](host core.StateHost, opts ControllableOptions[T]) *Controllable[T] {
	return &Controllable[T]{
		base:      host.Base(),
		id:        newIdentity("controllable"),
		same:      equalOrSame(opts.Equal),
		internal:  core.NewManaged(host, opts.Default),
		onChange:  NewLatest[func(Option[T])](nil),
		committed: opts.Default,
	}
}

// Use reads this build's props and returns the exposed value and setter.
func (c *Controllable[T]) Use(props ControllableProps[T]) (Option[T], func(Update[Option[T]])) {
	c.onChange.Observe(props.OnChange)
	c.controlled = props.Value.IsSome()
	c.value = props.Value
	c.base.OnCommit(c.commit)
	return c.Value(), c.Set
}

// Value returns the value exposed by the last build.
func (c *Controllable[T]) Value() Option[T] {
	if c.controlled {
		return c.value
	}
	return c.internal.Value()
}

// Controlled reports the mode decided by the last build.
func (c *Controllable[T]) Controlled() bool {
	return c.controlled
}

// Set applies u. While controlled, the result is only reported through
// OnChange, and only if it differs from the controlled value. While
// uncontrolled, the internal value is replaced and OnChange fires from the
// following commit.
func (c *Controllable[T]) Set(u Update[Option[T]]) {
	if c.controlled {
		next := u.Apply(c.value)
		if !sameOption(c.same, next, c.value) {
			c.notify(next)
		}
		return
	}
	next := u.Apply(c.internal.Value())
	if sameOption(c.same, next, c.internal.Value()) {
		return
	}
	c.internal.Set(next)
}

func (c *Controllable[T]) commit() {
	current := c.internal.Value()
	if sameOption(c.same, current, c.committed) {
		return
	}
	c.committed = current
	c.notify(current)
}

func (c *Controllable[T]) notify(v Option[T]) {
	if fn := c.onChange.Current(); fn != nil {
		fn(v)
	}
	c.id.emitChanged()
}
