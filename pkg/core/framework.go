package core

// Widget is an immutable description of part of the UI.
type Widget interface {
	CreateElement() Element
	Key() any
}

// StatelessWidget builds its child purely from its own configuration.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns a State that survives rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State is the mutable half of a StatefulWidget.
type State interface {
	InitState()
	Build(ctx BuildContext) Widget
	SetState(fn func())
	Dispose()
	DidChangeDependencies()
	DidUpdateWidget(oldWidget StatefulWidget)
}

// BuildContext gives a build method access to its position in the tree.
type BuildContext interface {
	Widget() Widget
	Depth() int
	FindAncestor(predicate func(Element) bool) Element
}

// Element is the instantiation of a Widget at a location in the tree.
type Element interface {
	BuildContext
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	MarkNeedsBuild()
	RebuildIfNeeded()
	VisitChildren(visitor func(Element) bool)
}

// Disposable is implemented by controllers that hold resources.
type Disposable interface {
	Dispose()
}

// Listenable notifies listeners without carrying a value.
type Listenable interface {
	AddListener(listener func()) func()
}

// MountRoot inflates widget and mounts it as the root of a new tree owned
// by owner.
func MountRoot(widget Widget, owner *BuildOwner) Element {
	element := inflateWidget(widget, owner)
	if element == nil {
		return nil
	}
	element.Mount(nil, nil)
	return element
}
