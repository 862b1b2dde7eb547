package hooks

import (
	"testing"

	"github.com/go-drift/statehooks/pkg/core"
	hooktest "github.com/go-drift/statehooks/pkg/testing"
)

// hookWidget runs setup once from InitState and build on every build,
// which is how hooks are driven in real widgets.
type hookWidget struct {
	core.StatefulBase
	setup func(host core.StateHost)
	build func()
}

func (w hookWidget) CreateState() core.State {
	return &hookState{}
}

type hookState struct {
	core.StateBase
	builds int
}

func (s *hookState) InitState() {
	if setup := s.Element().Widget().(hookWidget).setup; setup != nil {
		setup(s)
	}
}

func (s *hookState) Build(ctx core.BuildContext) core.Widget {
	s.builds++
	if build := ctx.Widget().(hookWidget).build; build != nil {
		build()
	}
	return nil
}

// harness mounts a hookWidget and rebuilds it on demand.
type harness struct {
	t      *testing.T
	tester *hooktest.HookTester
	widget hookWidget
}

func mountHook(t *testing.T, setup func(host core.StateHost), build func()) *harness {
	t.Helper()
	h := &harness{
		t:      t,
		tester: hooktest.NewHookTesterWithT(t),
		widget: hookWidget{setup: setup, build: build},
	}
	if err := h.tester.PumpWidget(h.widget); err != nil {
		t.Fatal(err)
	}
	return h
}

// rerender rebuilds the widget as a parent passing new props would.
func (h *harness) rerender() {
	h.t.Helper()
	if err := h.tester.PumpWidget(h.widget); err != nil {
		h.t.Fatal(err)
	}
}

// pump flushes rebuilds scheduled by setters.
func (h *harness) pump() {
	h.t.Helper()
	if err := h.tester.Pump(); err != nil {
		h.t.Fatal(err)
	}
}

func (h *harness) state() *hookState {
	return h.tester.RootElement().(*core.StatefulElement).State().(*hookState)
}

// spy records the calls made to a callback.
type spy[T any] struct {
	calls []T
}

func (s *spy[T]) fn(v T) {
	s.calls = append(s.calls, v)
}

func (s *spy[T]) count() int {
	return len(s.calls)
}

func (s *spy[T]) last() T {
	return s.calls[len(s.calls)-1]
}
