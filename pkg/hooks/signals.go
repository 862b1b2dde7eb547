package hooks

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/zoobzio/capitan"
)

// Hook lifecycle signals. Subscribe with capitan.Hook to trace hooks in
// development builds.
var (
	// ControllableChanged is emitted when a controllable hook reports a new
	// value through its change callback.
	ControllableChanged = capitan.NewSignal(
		"hooks.controllable.changed",
		"Controllable value change reported",
	)

	// EditableStatusChanged is emitted when an editable hook moves between
	// the observed and edited states.
	EditableStatusChanged = capitan.NewSignal(
		"hooks.editable.status.changed",
		"Editable status transition",
	)

	// LateInitialized is emitted when a late initializer succeeds.
	LateInitialized = capitan.NewSignal(
		"hooks.late.initialized",
		"Late initialization completed",
	)

	// LateInitializationFailed is emitted when an initializer fails with
	// anything other than ErrNotReady.
	LateInitializationFailed = capitan.NewSignal(
		"hooks.late.failed",
		"Late initializer fault",
	)
)

// Field keys for hook events.
var (
	// KeyHookID is the unique id of the hook instance.
	KeyHookID = capitan.NewStringKey("hook_id")

	// KeyHookKind is the hook type, e.g. "controllable".
	KeyHookKind = capitan.NewStringKey("hook_kind")

	// KeyOldStatus is the editable status before a transition.
	KeyOldStatus = capitan.NewStringKey("old_status")

	// KeyNewStatus is the editable status after a transition.
	KeyNewStatus = capitan.NewStringKey("new_status")

	// KeyError is the error message of a failed initializer.
	KeyError = capitan.NewStringKey("error")
)

var eventsDisabled atomic.Bool

// SetEventsEnabled turns signal emission on or off for every hook.
// Emission is on by default.
func SetEventsEnabled(enabled bool) {
	eventsDisabled.Store(!enabled)
}

// EventsEnabled reports whether hooks emit signals.
func EventsEnabled() bool {
	return !eventsDisabled.Load()
}

// identity names one hook instance in events and error reports.
type identity struct {
	id   string
	kind string
}

func newIdentity(kind string) identity {
	return identity{id: uuid.NewString(), kind: kind}
}

// ID returns the instance id.
func (i identity) ID() string {
	return i.id
}

func (i identity) emitChanged() {
	if !EventsEnabled() {
		return
	}
	capitan.Emit(context.Background(), ControllableChanged,
		KeyHookID.Field(i.id),
		KeyHookKind.Field(i.kind),
	)
}

func (i identity) emitStatus(from, to EditableStatus) {
	if !EventsEnabled() || from == to {
		return
	}
	capitan.Emit(context.Background(), EditableStatusChanged,
		KeyHookID.Field(i.id),
		KeyHookKind.Field(i.kind),
		KeyOldStatus.Field(from.String()),
		KeyNewStatus.Field(to.String()),
	)
}

func (i identity) emitInitialized() {
	if !EventsEnabled() {
		return
	}
	capitan.Emit(context.Background(), LateInitialized,
		KeyHookID.Field(i.id),
		KeyHookKind.Field(i.kind),
	)
}

func (i identity) emitFailed(err error) {
	if !EventsEnabled() {
		return
	}
	capitan.Emit(context.Background(), LateInitializationFailed,
		KeyHookID.Field(i.id),
		KeyHookKind.Field(i.kind),
		KeyError.Field(err.Error()),
	)
}
