package core

import (
	"reflect"
	"time"

	"github.com/go-drift/statehooks/pkg/errors"
)

type elementBase struct {
	widget     Widget
	parent     Element
	depth      int
	slot       any
	buildOwner *BuildOwner
	dirty      bool
	self       Element
	mounted    bool
}

func (e *elementBase) Widget() Widget {
	return e.widget
}

func (e *elementBase) Depth() int {
	return e.depth
}

func (e *elementBase) MarkNeedsBuild() {
	if e.dirty {
		return
	}
	e.dirty = true
	if e.buildOwner != nil && e.self != nil && e.mounted {
		e.buildOwner.ScheduleBuild(e.self)
	}
}

// Owner returns the build owner driving this element, or nil.
func (e *elementBase) Owner() *BuildOwner {
	return e.buildOwner
}

func (e *elementBase) parentElement() Element {
	return e.parent
}

func (e *elementBase) setSelf(self Element) {
	e.self = self
}

func (e *elementBase) setWidget(widget Widget) {
	e.widget = widget
}

func (e *elementBase) setBuildOwner(owner *BuildOwner) {
	e.buildOwner = owner
}

func (e *elementBase) isMounted() bool {
	return e.mounted
}

func (e *elementBase) mount(parent Element, slot any) {
	e.parent = parent
	e.slot = slot
	if parent != nil {
		e.depth = parent.Depth() + 1
	}
	e.mounted = true
	e.dirty = true
}

func (e *elementBase) FindAncestor(predicate func(Element) bool) Element {
	current := e.parent
	for current != nil {
		if predicate(current) {
			return current
		}
		if base, ok := current.(interface{ parentElement() Element }); ok {
			current = base.parentElement()
		} else {
			break
		}
	}
	return nil
}

// safeBuild executes a build function with panic recovery.
// If the build panics, it reports the error and returns an error widget.
func (e *elementBase) safeBuild(buildFn func() Widget) Widget {
	var built Widget
	var buildErr *errors.BuildError

	func() {
		defer func() {
			if r := recover(); r != nil {
				buildErr = &errors.BuildError{
					Widget:     reflect.TypeOf(e.widget).String(),
					Element:    reflect.TypeOf(e.self).String(),
					Recovered:  r,
					StackTrace: debugStack(),
					Timestamp:  time.Now(),
				}
			}
		}()
		built = buildFn()
	}()

	if buildErr == nil {
		return built
	}

	errors.ReportBuildError(buildErr)

	if boundary := e.findErrorBoundary(); boundary != nil && boundary.CaptureError(buildErr) {
		return nil
	}
	return errorWidgetFor(buildErr)
}

func debugStack() string {
	if !IsDebugMode() {
		return ""
	}
	return errors.CaptureStack()
}

func (e *elementBase) findErrorBoundary() ErrorBoundaryCapture {
	found := e.FindAncestor(func(el Element) bool {
		_, ok := el.(ErrorBoundaryCapture)
		return ok
	})
	if found == nil {
		return nil
	}
	return found.(ErrorBoundaryCapture)
}

// StatelessElement hosts a StatelessWidget.
type StatelessElement struct {
	elementBase
	child Element
}

// NewStatelessElement creates an unmounted StatelessElement. The framework
// assigns its widget and owner when inflating.
func NewStatelessElement() *StatelessElement {
	element := &StatelessElement{}
	element.setSelf(element)
	return element
}

func (e *StatelessElement) Mount(parent Element, slot any) {
	e.mount(parent, slot)
	e.RebuildIfNeeded()
}

func (e *StatelessElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
}

func (e *StatelessElement) Unmount() {
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
}

func (e *StatelessElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	widget := e.widget.(StatelessWidget)
	built := e.safeBuild(func() Widget {
		return widget.Build(e)
	})
	e.child = updateChild(e.child, built, e.self, e.buildOwner)
}

func (e *StatelessElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// StatefulElement hosts a StatefulWidget and its State.
type StatefulElement struct {
	elementBase
	child Element
	state State
}

// NewStatefulElement creates an unmounted StatefulElement. The framework
// assigns its widget and owner when inflating.
func NewStatefulElement() *StatefulElement {
	element := &StatefulElement{}
	element.setSelf(element)
	return element
}

// State returns the state object created for this element.
func (e *StatefulElement) State() State {
	return e.state
}

func (e *StatefulElement) Mount(parent Element, slot any) {
	e.mount(parent, slot)
	widget := e.widget.(StatefulWidget)
	e.state = widget.CreateState()
	if setter, ok := e.state.(interface{ SetElement(*StatefulElement) }); ok {
		setter.SetElement(e)
	}
	e.state.InitState()
	e.RebuildIfNeeded()
}

func (e *StatefulElement) Update(newWidget Widget) {
	oldWidget := e.widget.(StatefulWidget)
	e.widget = newWidget
	e.state.DidUpdateWidget(oldWidget)
	e.MarkNeedsBuild()
}

func (e *StatefulElement) Unmount() {
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
	if e.state != nil {
		e.state.Dispose()
	}
}

// RebuildIfNeeded builds the state, reconciles the child and then commits,
// running the callbacks the state registered with OnCommit during the build.
func (e *StatefulElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	built := e.safeBuild(func() Widget {
		return e.state.Build(e)
	})
	e.child = updateChild(e.child, built, e.self, e.buildOwner)
	if host, ok := e.state.(StateHost); ok {
		host.Base().commit()
	}
}

func (e *StatefulElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

func updateChild(existing Element, widget Widget, parent Element, owner *BuildOwner) Element {
	if widget == nil {
		if existing != nil {
			existing.Unmount()
		}
		return nil
	}
	if existing != nil && canUpdateWidget(existing.Widget(), widget) {
		existing.Update(widget)
		existing.RebuildIfNeeded()
		return existing
	}
	if existing != nil {
		existing.Unmount()
	}
	element := inflateWidget(widget, owner)
	element.Mount(parent, nil)
	return element
}

func canUpdateWidget(existing Widget, next Widget) bool {
	if existing == nil || next == nil {
		return false
	}
	if reflect.TypeOf(existing) != reflect.TypeOf(next) {
		return false
	}
	return reflect.DeepEqual(existing.Key(), next.Key())
}

func inflateWidget(widget Widget, owner *BuildOwner) Element {
	if widget == nil {
		return nil
	}
	element := widget.CreateElement()
	if setter, ok := element.(interface{ setWidget(Widget) }); ok {
		setter.setWidget(widget)
	}
	if setter, ok := element.(interface{ setBuildOwner(*BuildOwner) }); ok {
		setter.setBuildOwner(owner)
	}
	if setter, ok := element.(interface{ setSelf(Element) }); ok {
		setter.setSelf(element)
	}
	return element
}
