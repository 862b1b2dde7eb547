package testing

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/go-drift/statehooks/pkg/core"
)

// DefaultSettleTimeout bounds PumpAndSettle when callers pass zero.
const DefaultSettleTimeout = 2 * time.Second

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: framework did not settle")

// HookTester drives a widget tree through the same dispatch, build and
// commit phases as a running app, one frame per Pump.
type HookTester struct {
	buildOwner *core.BuildOwner
	root       core.Element
	frames     int
}

// NewHookTester creates a tester with its own BuildOwner.
// Call Cleanup() when done, or use NewHookTesterWithT() instead.
func NewHookTester() *HookTester {
	return &HookTester{
		buildOwner: core.NewBuildOwner(),
	}
}

// NewHookTesterWithT creates a tester that unmounts its tree via t.Cleanup().
// This is the recommended constructor for tests.
func NewHookTesterWithT(t *testing.T) *HookTester {
	tester := NewHookTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the mounted tree, disposing every state in it.
func (t *HookTester) Cleanup() {
	t.Unmount()
}

// Owner returns the tester's BuildOwner.
func (t *HookTester) Owner() *core.BuildOwner {
	return t.buildOwner
}

// PumpWidget mounts widget as the root and runs one frame. A widget of the
// same type and key as the current root updates it in place, like a parent
// rebuilding with new configuration; anything else replaces the tree.
func (t *HookTester) PumpWidget(widget core.Widget) error {
	if t.root != nil && sameSlot(t.root.Widget(), widget) {
		t.root.Update(widget)
		return t.Pump()
	}
	t.Unmount()
	t.root = core.MountRoot(widget, t.buildOwner)
	return t.Pump()
}

// Pump runs a single frame: drain the dispatch queue, then flush builds
// (each build commits as it completes).
func (t *HookTester) Pump() error {
	t.frames++
	t.buildOwner.FlushDispatch()
	t.buildOwner.FlushBuild()
	return nil
}

// PumpAndSettle runs frames until the framework is idle, waiting for
// background tasks started with StateBase.Go between frames. Returns
// ErrSettleTimeout if work is still pending after timeout.
func (t *HookTester) PumpAndSettle(timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultSettleTimeout
	}
	deadline := time.Now().Add(timeout)
	for {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.buildOwner.NeedsWork() {
			return nil
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return ErrSettleTimeout
		}
		if t.buildOwner.PendingTasks() > 0 {
			t.buildOwner.WaitForTask(remaining)
		}
	}
}

// Dispatch queues fn for the next frame, as a background goroutine would.
func (t *HookTester) Dispatch(fn func()) {
	t.buildOwner.Dispatch(fn)
}

// Frames returns the number of frames pumped so far.
func (t *HookTester) Frames() int {
	return t.frames
}

// RootElement returns the root element of the mounted tree.
func (t *HookTester) RootElement() core.Element {
	return t.root
}

// Unmount tears down the mounted tree.
func (t *HookTester) Unmount() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
}

func sameSlot(a, b core.Widget) bool {
	if a == nil || b == nil {
		return false
	}
	return reflect.TypeOf(a) == reflect.TypeOf(b) && reflect.DeepEqual(a.Key(), b.Key())
}
