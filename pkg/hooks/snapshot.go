package hooks

import (
	"iter"
	"slices"
)

// Entry is one key/value pair of a MapSnapshot.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// MapSnapshot is an immutable, insertion-ordered map. Every modifying
// method returns a new snapshot and leaves the receiver untouched. The zero
// value is an empty snapshot.
type MapSnapshot[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewMapSnapshot builds a snapshot from entries. Later entries overwrite
// earlier ones with the same key but keep the first key's position.
func NewMapSnapshot[K comparable, V any](entries ...Entry[K, V]) *MapSnapshot[K, V] {
	s := &MapSnapshot[K, V]{values: make(map[K]V, len(entries))}
	for _, e := range entries {
		if _, ok := s.values[e.Key]; !ok {
			s.keys = append(s.keys, e.Key)
		}
		s.values[e.Key] = e.Value
	}
	return s
}

// Len returns the number of entries.
func (s *MapSnapshot[K, V]) Len() int {
	return len(s.keys)
}

// Get returns the value stored under k.
func (s *MapSnapshot[K, V]) Get(k K) (V, bool) {
	v, ok := s.values[k]
	return v, ok
}

// Has reports whether k is present.
func (s *MapSnapshot[K, V]) Has(k K) bool {
	_, ok := s.values[k]
	return ok
}

// Keys iterates keys in insertion order.
func (s *MapSnapshot[K, V]) Keys() iter.Seq[K] {
	return slices.Values(s.keys)
}

// Values iterates values in key insertion order.
func (s *MapSnapshot[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, k := range s.keys {
			if !yield(s.values[k]) {
				return
			}
		}
	}
}

// All iterates key/value pairs in insertion order.
func (s *MapSnapshot[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range s.keys {
			if !yield(k, s.values[k]) {
				return
			}
		}
	}
}

// ToSlice returns the entries in insertion order.
func (s *MapSnapshot[K, V]) ToSlice() []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, Entry[K, V]{Key: k, Value: s.values[k]})
	}
	return out
}

// With returns a snapshot where k maps to v. An existing key keeps its
// position.
func (s *MapSnapshot[K, V]) With(k K, v V) *MapSnapshot[K, V] {
	next := s.clone()
	if _, ok := next.values[k]; !ok {
		next.keys = append(next.keys, k)
	}
	next.values[k] = v
	return next
}

// Without returns a snapshot without k.
func (s *MapSnapshot[K, V]) Without(k K) *MapSnapshot[K, V] {
	next := s.clone()
	if _, ok := next.values[k]; ok {
		delete(next.values, k)
		next.keys = slices.DeleteFunc(next.keys, func(key K) bool { return key == k })
	}
	return next
}

// Cleared returns an empty snapshot.
func (s *MapSnapshot[K, V]) Cleared() *MapSnapshot[K, V] {
	return NewMapSnapshot[K, V]()
}

func (s *MapSnapshot[K, V]) clone() *MapSnapshot[K, V] {
	next := &MapSnapshot[K, V]{
		keys:   slices.Clone(s.keys),
		values: make(map[K]V, len(s.values)+1),
	}
	for k, v := range s.values {
		next.values[k] = v
	}
	return next
}

// SetSnapshot is an immutable, insertion-ordered set.
type SetSnapshot[T comparable] struct {
	m *MapSnapshot[T, struct{}]
}

// NewSetSnapshot builds a snapshot from values, dropping duplicates.
func NewSetSnapshot[T comparable](values ...T) *SetSnapshot[T] {
	entries := make([]Entry[T, struct{}], len(values))
	for i, v := range values {
		entries[i] = Entry[T, struct{}]{Key: v}
	}
	return &SetSnapshot[T]{m: NewMapSnapshot(entries...)}
}

// Len returns the number of members.
func (s *SetSnapshot[T]) Len() int {
	return s.m.Len()
}

// Has reports whether v is a member.
func (s *SetSnapshot[T]) Has(v T) bool {
	return s.m.Has(v)
}

// Values iterates members in insertion order.
func (s *SetSnapshot[T]) Values() iter.Seq[T] {
	return s.m.Keys()
}

// ToSlice returns the members in insertion order.
func (s *SetSnapshot[T]) ToSlice() []T {
	return slices.Collect(s.m.Keys())
}

// With returns a snapshot including v.
func (s *SetSnapshot[T]) With(v T) *SetSnapshot[T] {
	return &SetSnapshot[T]{m: s.m.With(v, struct{}{})}
}

// Without returns a snapshot excluding v.
func (s *SetSnapshot[T]) Without(v T) *SetSnapshot[T] {
	return &SetSnapshot[T]{m: s.m.Without(v)}
}

// Cleared returns an empty snapshot.
func (s *SetSnapshot[T]) Cleared() *SetSnapshot[T] {
	return NewSetSnapshot[T]()
}
