package core

import "github.com/go-drift/statehooks/pkg/errors"

// ErrorBoundary catches build errors from descendant widgets and shows a
// fallback instead of the failed subtree.
//
//	core.ErrorBoundary{
//	    OnError: func(err *errors.BuildError) {
//	        log.Printf("picker failed: %v", err)
//	    },
//	    Fallback: func(err *errors.BuildError) core.Widget {
//	        return EmptyPicker{}
//	    },
//	    Child: Picker{Items: items},
//	}
//
// Changing WidgetKey recreates the boundary and clears the captured error.
type ErrorBoundary struct {
	// Child is the subtree guarded by the boundary.
	Child Widget
	// Fallback builds the replacement once an error is captured. Nil shows
	// nothing.
	Fallback ErrorWidgetBuilder
	// OnError is called for each captured error.
	OnError func(*errors.BuildError)
	// WidgetKey is an optional key for the widget.
	WidgetKey any
}

func (b ErrorBoundary) CreateElement() Element {
	element := &errorBoundaryElement{StatefulElement: NewStatefulElement()}
	element.setSelf(element)
	return element
}

func (b ErrorBoundary) Key() any {
	return b.WidgetKey
}

func (b ErrorBoundary) CreateState() State {
	return &ErrorBoundaryState{}
}

// ErrorBoundaryState holds the error captured by an ErrorBoundary.
type ErrorBoundaryState struct {
	StateBase
	captured *errors.BuildError
}

func (s *ErrorBoundaryState) Build(ctx BuildContext) Widget {
	widget := ctx.Widget().(ErrorBoundary)
	if s.captured != nil {
		if widget.Fallback != nil {
			return widget.Fallback(s.captured)
		}
		return nil
	}
	return widget.Child
}

// Reset clears the captured error and rebuilds the child.
func (s *ErrorBoundaryState) Reset() {
	s.SetState(func() {
		s.captured = nil
	})
}

// Err returns the captured error, or nil.
func (s *ErrorBoundaryState) Err() *errors.BuildError {
	return s.captured
}

// ErrorBoundaryCapture is implemented by error boundary elements to capture
// build errors from descendant widgets.
type ErrorBoundaryCapture interface {
	// CaptureError captures a build error from a descendant widget.
	// Returns true if the error was captured and handled.
	CaptureError(err *errors.BuildError) bool
}

type errorBoundaryElement struct {
	*StatefulElement
}

// CaptureError records err on the boundary state. Only the first error is
// kept until Reset.
func (e *errorBoundaryElement) CaptureError(err *errors.BuildError) bool {
	state, ok := e.state.(*ErrorBoundaryState)
	if !ok || state.IsDisposed() {
		return false
	}
	if widget, ok := e.widget.(ErrorBoundary); ok && widget.OnError != nil {
		widget.OnError(err)
	}
	if state.captured == nil {
		state.SetState(func() {
			state.captured = err
		})
	}
	return true
}
