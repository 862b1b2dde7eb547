package testing

import (
	"context"
	"testing"
	"time"

	"github.com/go-drift/statehooks/pkg/core"
)

type probe struct {
	core.StatefulBase
	label string
	state **probeState
}

func (p probe) CreateState() core.State {
	s := &probeState{}
	if p.state != nil {
		*p.state = s
	}
	return s
}

type probeState struct {
	core.StateBase
	labels []string
}

func (s *probeState) Build(ctx core.BuildContext) core.Widget {
	s.labels = append(s.labels, ctx.Widget().(probe).label)
	return nil
}

func TestPumpWidget_MountsTree(t *testing.T) {
	tester := NewHookTesterWithT(t)

	if err := tester.PumpWidget(probe{label: "a"}); err != nil {
		t.Fatal(err)
	}
	if tester.RootElement() == nil {
		t.Fatal("expected root element after PumpWidget")
	}
}

func TestPumpWidget_SameTypeUpdatesInPlace(t *testing.T) {
	tester := NewHookTesterWithT(t)
	var state *probeState

	tester.PumpWidget(probe{label: "a", state: &state})
	first := state
	tester.PumpWidget(probe{label: "b", state: &state})

	if state != first {
		t.Fatal("expected the state to survive a same-type pump")
	}
	if len(first.labels) != 2 || first.labels[1] != "b" {
		t.Errorf("expected builds [a b], got %v", first.labels)
	}
}

func TestUnmount_DisposesState(t *testing.T) {
	tester := NewHookTesterWithT(t)
	var state *probeState
	tester.PumpWidget(probe{state: &state})

	tester.Unmount()

	if !state.IsDisposed() {
		t.Error("expected state to be disposed after Unmount")
	}
	if tester.RootElement() != nil {
		t.Error("expected no root after Unmount")
	}
}

func TestDispatch_RunsOnNextPump(t *testing.T) {
	tester := NewHookTesterWithT(t)
	ran := false
	tester.Dispatch(func() { ran = true })

	if ran {
		t.Fatal("dispatch must not run synchronously")
	}
	tester.Pump()
	if !ran {
		t.Error("expected dispatch to run on Pump")
	}
	if tester.Frames() != 1 {
		t.Errorf("expected 1 frame, got %d", tester.Frames())
	}
}

func TestPumpAndSettle_WaitsForBackgroundWork(t *testing.T) {
	tester := NewHookTesterWithT(t)
	var state *probeState
	tester.PumpWidget(probe{label: "a", state: &state})

	done := false
	state.Go(func(ctx context.Context) func() {
		time.Sleep(10 * time.Millisecond)
		return func() { done = true }
	})

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	if !done {
		t.Error("expected background continuation to be applied")
	}
}

func TestPumpAndSettle_Timeout(t *testing.T) {
	tester := NewHookTesterWithT(t)
	var state *probeState
	tester.PumpWidget(probe{state: &state})

	release := make(chan struct{})
	defer close(release)
	state.Go(func(ctx context.Context) func() {
		<-release
		return nil
	})

	if err := tester.PumpAndSettle(20 * time.Millisecond); err != ErrSettleTimeout {
		t.Errorf("expected ErrSettleTimeout, got %v", err)
	}
}
