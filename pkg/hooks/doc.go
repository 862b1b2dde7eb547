// Package hooks provides reusable state primitives for stateful widgets.
//
// Hooks are objects created once in InitState and fed fresh inputs on
// every build through their Use method. Each hook owns its state cells for
// the lifetime of the widget's state and schedules rebuilds through the
// embedded core.StateBase. Work that must observe a committed build (firing
// a change callback once per change, following a new observed value,
// attempting an initializer) runs in commit callbacks, never during Build.
//
// # Hooks
//
//   - Latest: a cell holding the newest value of a callback without
//     triggering rebuilds.
//   - Controllable: merges an optional controlled value with internal state.
//   - Editable: a value that follows an observed value until edited.
//   - LateInitialization: retries an initializer each build until it
//     succeeds, then latches.
//   - LateInitializationState and LateInitializedState: a state cell
//     combined with LateInitialization.
//   - MapState and SetState: containers whose mutations replace an
//     immutable snapshot.
//
// # Updates
//
// Every setter takes an Update, built with Value for a literal or Func for
// a producer of the next value from the previous one.
//
// # Events
//
// Hooks emit capitan signals (ControllableChanged, EditableStatusChanged,
// LateInitialized, LateInitializationFailed) tagged with a per-instance
// id. Disable them with SetEventsEnabled(false).
package hooks
