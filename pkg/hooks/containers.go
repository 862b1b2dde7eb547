package hooks

import (
	"iter"

	"github.com/go-drift/statehooks/pkg/core"
)

// MapState is a map held in widget state. Each mutation swaps in a new
// MapSnapshot and schedules a rebuild, so a snapshot read during a build
// never changes underneath it. Other widgets can follow the map by
// subscribing to Changes with core.UseListenable.
type MapState[K comparable, V any] struct {
	cell    *core.Managed[*MapSnapshot[K, V]]
	changes *core.Notifier
}

// NewMapState creates a MapState owned by host holding initial.
func NewMapState[K comparable, V any](host core.StateHost, initial ...Entry[K, V]) *MapState[K, V] {
	return &MapState[K, V]{
		cell:    core.NewManaged(host, NewMapSnapshot(initial...)),
		changes: core.UseController(host, core.NewNotifier),
	}
}

// Changes notifies after every mutation. Listeners are dropped when the
// owning state is disposed.
func (m *MapState[K, V]) Changes() core.Listenable {
	return m.changes
}

func (m *MapState[K, V]) update(fn func(*MapSnapshot[K, V]) *MapSnapshot[K, V]) {
	m.cell.Update(fn)
	m.changes.Notify()
}

// Snapshot returns the current snapshot.
func (m *MapState[K, V]) Snapshot() *MapSnapshot[K, V] {
	return m.cell.Value()
}

// Get returns the value stored under k.
func (m *MapState[K, V]) Get(k K) (V, bool) { return m.Snapshot().Get(k) }

// Has reports whether k is present.
func (m *MapState[K, V]) Has(k K) bool { return m.Snapshot().Has(k) }

// Len returns the number of entries.
func (m *MapState[K, V]) Len() int { return m.Snapshot().Len() }

// Keys iterates keys in insertion order.
func (m *MapState[K, V]) Keys() iter.Seq[K] { return m.Snapshot().Keys() }

// Values iterates values in insertion order.
func (m *MapState[K, V]) Values() iter.Seq[V] { return m.Snapshot().Values() }

// All iterates entries in insertion order.
func (m *MapState[K, V]) All() iter.Seq2[K, V] { return m.Snapshot().All() }

// ToSlice returns the entries in insertion order.
func (m *MapState[K, V]) ToSlice() []Entry[K, V] { return m.Snapshot().ToSlice() }

// Set stores v under k.
func (m *MapState[K, V]) Set(k K, v V) {
	m.update(func(s *MapSnapshot[K, V]) *MapSnapshot[K, V] { return s.With(k, v) })
}

// Delete removes k.
func (m *MapState[K, V]) Delete(k K) {
	m.update(func(s *MapSnapshot[K, V]) *MapSnapshot[K, V] { return s.Without(k) })
}

// Clear removes every entry.
func (m *MapState[K, V]) Clear() {
	m.update(func(s *MapSnapshot[K, V]) *MapSnapshot[K, V] { return s.Cleared() })
}

// Override replaces all entries with entries.
func (m *MapState[K, V]) Override(entries ...Entry[K, V]) {
	next := NewMapSnapshot(entries...)
	m.update(func(*MapSnapshot[K, V]) *MapSnapshot[K, V] { return next })
}

// SetState is a set held in widget state. It behaves like MapState.
type SetState[T comparable] struct {
	cell    *core.Managed[*SetSnapshot[T]]
	changes *core.Notifier
}

// NewSetState creates a SetState owned by host holding initial.
func NewSetState[T comparable](host core.StateHost, initial ...T) *SetState[T] {
	return &SetState[T]{
		cell:    core.NewManaged(host, NewSetSnapshot(initial...)),
		changes: core.UseController(host, core.NewNotifier),
	}
}

// Changes notifies after every mutation.
func (s *SetState[T]) Changes() core.Listenable {
	return s.changes
}

func (s *SetState[T]) update(fn func(*SetSnapshot[T]) *SetSnapshot[T]) {
	s.cell.Update(fn)
	s.changes.Notify()
}

// Snapshot returns the current snapshot.
func (s *SetState[T]) Snapshot() *SetSnapshot[T] {
	return s.cell.Value()
}

// Has reports whether v is a member.
func (s *SetState[T]) Has(v T) bool { return s.Snapshot().Has(v) }

// Len returns the number of members.
func (s *SetState[T]) Len() int { return s.Snapshot().Len() }

// Values iterates members in insertion order.
func (s *SetState[T]) Values() iter.Seq[T] { return s.Snapshot().Values() }

// ToSlice returns the members in insertion order.
func (s *SetState[T]) ToSlice() []T { return s.Snapshot().ToSlice() }

// Add inserts v.
func (s *SetState[T]) Add(v T) {
	s.update(func(snap *SetSnapshot[T]) *SetSnapshot[T] { return snap.With(v) })
}

// Delete removes v.
func (s *SetState[T]) Delete(v T) {
	s.update(func(snap *SetSnapshot[T]) *SetSnapshot[T] { return snap.Without(v) })
}

// Clear removes every member.
func (s *SetState[T]) Clear() {
	s.update(func(snap *SetSnapshot[T]) *SetSnapshot[T] { return snap.Cleared() })
}

// Override replaces all members with values.
func (s *SetState[T]) Override(values ...T) {
	next := NewSetSnapshot(values...)
	s.update(func(*SetSnapshot[T]) *SetSnapshot[T] { return next })
}
