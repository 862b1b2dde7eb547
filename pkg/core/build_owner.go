package core

import (
	"slices"
	"sync"
	"time"
)

// BuildOwner tracks dirty elements that need rebuilding, callbacks queued
// for the UI thread and background tasks started through StateBase.Go.
type BuildOwner struct {
	dirty    []Element
	dirtySet map[Element]bool
	mu       sync.Mutex

	dispatchMu sync.Mutex
	dispatches []func()

	tasks    int
	taskDone chan struct{}

	// OnNeedsFrame is called when a new element is scheduled for rebuild
	// or a callback is dispatched, signalling the host that a frame should
	// be pumped.
	OnNeedsFrame func()
}

// NewBuildOwner creates a new BuildOwner.
func NewBuildOwner() *BuildOwner {
	return &BuildOwner{
		taskDone: make(chan struct{}, 1),
	}
}

// ScheduleBuild marks an element as needing rebuild.
func (b *BuildOwner) ScheduleBuild(element Element) {
	added := func() bool {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.dirtySet[element] {
			return false
		}
		if b.dirtySet == nil {
			b.dirtySet = make(map[Element]bool)
		}
		b.dirtySet[element] = true
		b.dirty = append(b.dirty, element)
		return true
	}()

	if added && b.OnNeedsFrame != nil {
		b.OnNeedsFrame()
	}
}

// Dispatch queues fn to run on the UI thread during the next
// FlushDispatch. Safe to call from any goroutine.
func (b *BuildOwner) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	b.dispatchMu.Lock()
	b.dispatches = append(b.dispatches, fn)
	b.dispatchMu.Unlock()
	if b.OnNeedsFrame != nil {
		b.OnNeedsFrame()
	}
}

// FlushDispatch runs every queued callback. Callbacks queued while
// flushing run on the next flush.
func (b *BuildOwner) FlushDispatch() {
	b.dispatchMu.Lock()
	pending := b.dispatches
	b.dispatches = nil
	b.dispatchMu.Unlock()
	for _, fn := range pending {
		fn()
	}
}

func (b *BuildOwner) beginTask() {
	b.mu.Lock()
	b.tasks++
	b.mu.Unlock()
}

func (b *BuildOwner) endTask() {
	b.mu.Lock()
	b.tasks--
	b.mu.Unlock()
	select {
	case b.taskDone <- struct{}{}:
	default:
	}
}

// PendingTasks returns the number of background tasks still running.
func (b *BuildOwner) PendingTasks() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tasks
}

// WaitForTask blocks until a background task finishes or timeout elapses.
// Returns false on timeout.
func (b *BuildOwner) WaitForTask(timeout time.Duration) bool {
	if b.PendingTasks() == 0 {
		return true
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-b.taskDone:
		return true
	case <-timer.C:
		return false
	}
}

// NeedsWork returns true if there are dirty elements, queued callbacks or
// running background tasks.
func (b *BuildOwner) NeedsWork() bool {
	b.mu.Lock()
	busy := len(b.dirty) > 0 || b.tasks > 0
	b.mu.Unlock()
	if busy {
		return true
	}
	b.dispatchMu.Lock()
	defer b.dispatchMu.Unlock()
	return len(b.dispatches) > 0
}

// FlushBuild rebuilds all dirty elements in depth order.
func (b *BuildOwner) FlushBuild() {
	for {
		b.mu.Lock()
		if len(b.dirty) == 0 {
			b.mu.Unlock()
			return
		}

		slices.SortFunc(b.dirty, func(a, b Element) int {
			return a.Depth() - b.Depth()
		})

		dirty := b.dirty
		b.dirty = nil
		clear(b.dirtySet)
		b.mu.Unlock()

		for _, element := range dirty {
			if mountable, ok := element.(interface{ isMounted() bool }); ok && !mountable.isMounted() {
				continue
			}
			element.RebuildIfNeeded()
		}
	}
}
