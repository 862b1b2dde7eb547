package hooks

// Option holds a value that may be absent. The zero Option is absent.
//
// Hooks use Option wherever a value can be "not supplied": a controllable
// hook is controlled exactly when its Value is present.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// OrElse returns the value if present, otherwise fallback.
func (o Option[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// OrZero returns the value if present, otherwise the zero value of T.
func (o Option[T]) OrZero() T {
	return o.value
}

// sameOption compares two options, using same for present values.
func sameOption[T any](same func(a, b T) bool, a, b Option[T]) bool {
	if a.ok != b.ok {
		return false
	}
	if !a.ok {
		return true
	}
	return same(a.value, b.value)
}
