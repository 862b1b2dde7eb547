// Package core provides the widget, element and state lifecycle that the
// hooks in this module run inside.
//
// It follows a declarative UI model: widgets describe the tree, elements
// hold each widget's place in it, and a BuildOwner rebuilds dirty elements
// in depth order.
//
// # Stateful Widgets
//
// For widgets that need mutable state, embed StateBase in your state struct:
//
//	type myState struct {
//	    core.StateBase
//	    count *core.Managed[int]
//	}
//
//	func (s *myState) InitState() {
//	    s.count = core.NewManaged(s, 0)
//	}
//
// # Render Cycle
//
// A rebuild runs in two phases. First the state's Build method runs and its
// child subtree is reconciled. Then the element commits: every callback the
// state registered with StateBase.OnCommit during that build is run, in
// order. Hooks compare the values seen by consecutive commits there, which
// is how they fire exactly once per change rather than once per build.
//
// # Background Work
//
// StateBase.Go runs a function on a goroutine and hands its continuation
// back to the UI thread through the BuildOwner's dispatch queue. The
// continuation is dropped if the state was disposed while the work ran, and
// the work's context is cancelled on dispose.
//
// # Constructor Conventions
//
// Long-lived mutable objects use NewX() constructors returning pointers;
// widgets are plain struct literals.
package core
