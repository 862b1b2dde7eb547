package hooks

// Update is the argument of every setter in this package. It is either a
// literal next value or a producer computing the next value from the
// previous one. The constructor picks the variant, so a literal whose type
// is itself a function is never mistaken for a producer.
type Update[T any] struct {
	value T
	fn    func(T) T
}

// Value returns an Update that replaces the state with v.
func Value[T any](v T) Update[T] {
	return Update[T]{value: v}
}

// Func returns an Update that computes the next state from the previous
// one.
func Func[T any](fn func(prev T) T) Update[T] {
	return Update[T]{fn: fn}
}

// IsFunc reports whether u is a producer.
func (u Update[T]) IsFunc() bool {
	return u.fn != nil
}

// Apply returns the state that follows prev.
func (u Update[T]) Apply(prev T) T {
	if u.fn != nil {
		return u.fn(prev)
	}
	return u.value
}

// Producer turns u into a plain function from previous to next state.
func Producer[T any](u Update[T]) func(T) T {
	return u.Apply
}
