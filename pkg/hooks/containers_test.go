package hooks

import (
	"slices"
	"testing"

	"github.com/go-drift/statehooks/pkg/core"
)

func TestMapSnapshot_PreservesInsertionOrder(t *testing.T) {
	s := NewMapSnapshot(
		Entry[string, int]{"b", 1},
		Entry[string, int]{"a", 2},
		Entry[string, int]{"b", 3},
	)

	if got := slices.Collect(s.Keys()); !slices.Equal(got, []string{"b", "a"}) {
		t.Errorf("expected [b a], got %v", got)
	}
	if v, _ := s.Get("b"); v != 3 {
		t.Errorf("expected later entry to win, got %d", v)
	}

	s = s.With("c", 4).With("a", 5)
	if got := slices.Collect(s.Values()); !slices.Equal(got, []int{3, 5, 4}) {
		t.Errorf("expected [3 5 4], got %v", got)
	}
}

func TestMapSnapshot_IsImmutable(t *testing.T) {
	base := NewMapSnapshot(Entry[string, int]{"a", 1})

	with := base.With("b", 2)
	without := base.Without("a")
	cleared := base.Cleared()

	if base.Len() != 1 || !base.Has("a") || base.Has("b") {
		t.Errorf("base snapshot changed: %v", base.ToSlice())
	}
	if with.Len() != 2 || without.Len() != 0 || cleared.Len() != 0 {
		t.Errorf("unexpected lengths %d/%d/%d", with.Len(), without.Len(), cleared.Len())
	}
}

func TestMapSnapshot_All(t *testing.T) {
	s := NewMapSnapshot(Entry[int, string]{1, "one"}, Entry[int, string]{2, "two"})

	var seen []string
	for k, v := range s.All() {
		seen = append(seen, v)
		if k == 1 {
			break
		}
	}
	if !slices.Equal(seen, []string{"one"}) {
		t.Errorf("expected early break after the first entry, got %v", seen)
	}
}

func TestMapSnapshot_ZeroValue(t *testing.T) {
	var s MapSnapshot[string, int]
	if s.Len() != 0 || s.Has("x") {
		t.Error("zero snapshot should be empty")
	}
	if next := s.With("x", 1); next.Len() != 1 {
		t.Errorf("expected With to work on a zero snapshot, got %d", next.Len())
	}
}

func TestSetSnapshot_DropsDuplicates(t *testing.T) {
	s := NewSetSnapshot(3, 1, 3, 2)
	if got := s.ToSlice(); !slices.Equal(got, []int{3, 1, 2}) {
		t.Errorf("expected [3 1 2], got %v", got)
	}
	if s.With(1) == s {
		t.Error("With must return a new snapshot")
	}
	if s.Without(3).Has(3) || !s.Has(3) {
		t.Error("Without must not touch the receiver")
	}
}

func mountMap(t *testing.T, initial ...Entry[string, int]) (*MapState[string, int], *harness, *[]*MapSnapshot[string, int]) {
	t.Helper()
	var m *MapState[string, int]
	var seen []*MapSnapshot[string, int]
	h := mountHook(t,
		func(host core.StateHost) { m = NewMapState(host, initial...) },
		func() { seen = append(seen, m.Snapshot()) },
	)
	return m, h, &seen
}

func TestMapState_SetAndGet(t *testing.T) {
	m, h, seen := mountMap(t)

	m.Set("a", 1)
	h.pump()

	if v, ok := m.Get("a"); !ok || v != 1 {
		t.Errorf("expected a=1, got %d/%v", v, ok)
	}
	if len(*seen) != 2 {
		t.Fatalf("expected a rebuild after Set, got %d builds", len(*seen))
	}
	if (*seen)[0] == (*seen)[1] {
		t.Error("expected a new snapshot after Set")
	}
	if (*seen)[0].Has("a") {
		t.Error("earlier snapshot must not observe the mutation")
	}
}

func TestMapState_ClearThenToSlice(t *testing.T) {
	m, h, _ := mountMap(t, Entry[string, int]{"a", 1}, Entry[string, int]{"b", 2})

	m.Clear()
	h.pump()

	if got := m.ToSlice(); len(got) != 0 {
		t.Errorf("expected no entries, got %v", got)
	}
}

func TestMapState_OverrideReplaces(t *testing.T) {
	m, h, _ := mountMap(t, Entry[string, int]{"a", 1}, Entry[string, int]{"b", 2})

	m.Override(Entry[string, int]{"c", 3})
	h.pump()

	if m.Has("a") || m.Has("b") {
		t.Error("Override must not merge with previous entries")
	}
	if got := m.ToSlice(); len(got) != 1 || got[0] != (Entry[string, int]{"c", 3}) {
		t.Errorf("expected [c=3], got %v", got)
	}
}

func TestMapState_DeleteKeepsOrder(t *testing.T) {
	m, h, _ := mountMap(t,
		Entry[string, int]{"a", 1},
		Entry[string, int]{"b", 2},
		Entry[string, int]{"c", 3},
	)

	m.Delete("b")
	m.Set("d", 4)
	h.pump()

	if got := slices.Collect(m.Keys()); !slices.Equal(got, []string{"a", "c", "d"}) {
		t.Errorf("expected [a c d], got %v", got)
	}
	if m.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", m.Len())
	}
}

func TestSetState_AddDeleteClear(t *testing.T) {
	var s *SetState[string]
	var builds int
	h := mountHook(t,
		func(host core.StateHost) { s = NewSetState(host, "x") },
		func() { builds++ },
	)

	s.Add("y")
	s.Add("x")
	h.pump()
	if got := s.ToSlice(); !slices.Equal(got, []string{"x", "y"}) {
		t.Errorf("expected [x y], got %v", got)
	}

	s.Delete("x")
	h.pump()
	if s.Has("x") || s.Len() != 1 {
		t.Errorf("expected [y], got %v", s.ToSlice())
	}

	s.Clear()
	h.pump()
	if got := s.ToSlice(); len(got) != 0 {
		t.Errorf("expected empty set, got %v", got)
	}

	s.Override("p", "q")
	h.pump()
	if got := slices.Collect(s.Values()); !slices.Equal(got, []string{"p", "q"}) {
		t.Errorf("expected [p q], got %v", got)
	}
	if builds != 5 {
		t.Errorf("expected a rebuild per pumped mutation batch, got %d builds", builds)
	}
}

func TestMapState_ChangesRebuildsSubscriber(t *testing.T) {
	m, h, _ := mountMap(t, Entry[string, int]{"a", 1})

	var seen []int
	consumer := mountHook(t,
		func(host core.StateHost) { core.UseListenable(host, m.Changes()) },
		func() { seen = append(seen, m.Len()) },
	)

	m.Set("b", 2)
	h.pump()
	consumer.pump()

	if !slices.Equal(seen, []int{1, 2}) {
		t.Errorf("expected the subscriber to rebuild with the new length, got %v", seen)
	}

	consumer.tester.Unmount()
	m.Delete("a")
	h.pump()
	if len(seen) != 2 {
		t.Errorf("unmounted subscriber must not rebuild, got %v", seen)
	}
}

func TestSetState_ChangesDroppedOnDispose(t *testing.T) {
	var s *SetState[int]
	h := mountHook(t,
		func(host core.StateHost) { s = NewSetState[int](host) },
		nil,
	)
	calls := 0
	s.Changes().AddListener(func() { calls++ })

	s.Add(1)
	if calls != 1 {
		t.Fatalf("expected one notification, got %d", calls)
	}

	h.tester.Unmount()
	s.Add(2)
	if calls != 1 {
		t.Errorf("expected no notifications after dispose, got %d", calls)
	}
}
