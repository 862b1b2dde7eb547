package hooks

import "testing"

func TestSetEventsEnabled(t *testing.T) {
	defer SetEventsEnabled(true)

	if !EventsEnabled() {
		t.Fatal("events should be enabled by default")
	}
	SetEventsEnabled(false)
	if EventsEnabled() {
		t.Error("expected events to be disabled")
	}

	// Emitting while disabled must be a no-op.
	id := newIdentity("controllable")
	id.emitChanged()
	id.emitStatus(StatusObserved, StatusEdited)
	id.emitInitialized()
}

func TestIdentityIsUnique(t *testing.T) {
	a, b := newIdentity("editable"), newIdentity("editable")
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("expected distinct ids, got %q and %q", a.ID(), b.ID())
	}
}
