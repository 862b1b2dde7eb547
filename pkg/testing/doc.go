// Package testing provides a frame-by-frame harness for testing stateful
// widgets and the hooks they hold.
//
// # Quick Start
//
// Create a tester, pump a widget, and assert on what its build saw:
//
//	func TestCounter(t *testing.T) {
//	    tester := hooktest.NewHookTesterWithT(t)
//	    tester.PumpWidget(Counter{})
//
//	    counter.increment()
//	    tester.Pump()
//
//	    if got := counter.lastBuilt; got != 1 {
//	        t.Errorf("expected 1, got %d", got)
//	    }
//	}
//
// Pumping the same widget type again updates the mounted root in place,
// which is how a test supplies new props to a hook.
//
// # Background Work
//
// Initializers and other work started with StateBase.Go finish on their own
// goroutines. PumpAndSettle keeps pumping frames, waiting for those tasks,
// until nothing is left to do:
//
//	if err := tester.PumpAndSettle(time.Second); err != nil {
//	    t.Fatal(err)
//	}
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import hooktest "github.com/go-drift/statehooks/pkg/testing"
package testing
