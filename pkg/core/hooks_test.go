package core

import "testing"

type mockDisposable struct {
	disposed bool
}

func (m *mockDisposable) Dispose() {
	m.disposed = true
}

func TestUseController(t *testing.T) {
	base := &StateBase{}

	controller := UseController(base, func() *mockDisposable {
		return &mockDisposable{}
	})

	if controller.disposed {
		t.Error("Controller should not be disposed initially")
	}

	base.Dispose()

	if !controller.disposed {
		t.Error("Controller should be disposed when StateBase is disposed")
	}
}

func TestUseListenable(t *testing.T) {
	state := &testState{}
	owner, _ := mountStateful(t, state)
	notifier := NewNotifier()

	UseListenable(state, notifier)

	if notifier.ListenerCount() != 1 {
		t.Errorf("Expected 1 listener, got %d", notifier.ListenerCount())
	}

	notifier.Notify()
	owner.FlushBuild()
	if state.builds != 2 {
		t.Errorf("Expected notification to trigger a rebuild, got %d builds", state.builds)
	}

	state.Dispose()

	if notifier.ListenerCount() != 0 {
		t.Errorf("Expected 0 listeners after dispose, got %d", notifier.ListenerCount())
	}
}

func TestNotifier_DisposeDropsListeners(t *testing.T) {
	base := &StateBase{}
	notifier := UseController(base, NewNotifier)
	calls := 0
	notifier.AddListener(func() { calls++ })

	base.Dispose()
	notifier.Notify()

	if calls != 0 || notifier.ListenerCount() != 0 {
		t.Errorf("expected no listeners after dispose, got %d calls, %d listeners", calls, notifier.ListenerCount())
	}
	unsub := notifier.AddListener(func() { calls++ })
	unsub()
	notifier.Notify()
	if calls != 0 {
		t.Error("listeners added after dispose must never be called")
	}
}

func TestNotifier_UnsubscribeIsIdempotent(t *testing.T) {
	notifier := NewNotifier()
	calls := 0
	unsub := notifier.AddListener(func() { calls++ })
	notifier.AddListener(func() { calls += 10 })

	notifier.Notify()
	unsub()
	unsub()
	notifier.Notify()

	if calls != 21 {
		t.Errorf("expected 21, got %d", calls)
	}
}

func TestManaged_Value(t *testing.T) {
	base := &StateBase{}
	state := NewManaged(base, 42)

	if state.Value() != 42 {
		t.Errorf("Expected 42, got %d", state.Value())
	}
}

func TestManaged_Set(t *testing.T) {
	base := &StateBase{}
	state := NewManaged(base, 0)

	state.Set(100)

	if state.Value() != 100 {
		t.Errorf("Expected 100, got %d", state.Value())
	}
}

func TestManaged_Update(t *testing.T) {
	base := &StateBase{}
	state := NewManaged(base, 10)

	state.Update(func(v int) int { return v * 2 })

	if state.Value() != 20 {
		t.Errorf("Expected 20, got %d", state.Value())
	}
}

func TestManaged_IgnoredAfterDispose(t *testing.T) {
	base := &StateBase{}
	state := NewManaged(base, "hello")
	base.Dispose()

	state.Set("world")

	if state.Value() != "hello" {
		t.Errorf("Expected 'hello', got '%s'", state.Value())
	}
}
