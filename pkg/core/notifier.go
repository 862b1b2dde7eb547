package core

import "sync"

// Notifier broadcasts a signal to its listeners. It is safe for concurrent
// use.
type Notifier struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func()
	order     []int
	disposed  bool
}

// NewNotifier creates a Notifier with no listeners.
func NewNotifier() *Notifier {
	return &Notifier{listeners: make(map[int]func())}
}

// AddListener registers listener and returns a function that removes it.
func (n *Notifier) AddListener(listener func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.disposed {
		return func() {}
	}
	if n.listeners == nil {
		n.listeners = make(map[int]func())
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = listener
	n.order = append(n.order, id)
	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.listeners, id)
		})
	}
}

// Notify calls every registered listener in registration order.
func (n *Notifier) Notify() {
	n.mu.Lock()
	live := n.order[:0]
	calls := make([]func(), 0, len(n.order))
	for _, id := range n.order {
		if fn, ok := n.listeners[id]; ok {
			live = append(live, id)
			calls = append(calls, fn)
		}
	}
	n.order = live
	n.mu.Unlock()

	for _, fn := range calls {
		fn()
	}
}

// ListenerCount returns the number of registered listeners.
func (n *Notifier) ListenerCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners)
}

// Dispose removes every listener. Later AddListener calls are ignored, so
// a Notifier registered with UseController stops broadcasting once its
// state is disposed.
func (n *Notifier) Dispose() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.disposed = true
	n.listeners = nil
	n.order = nil
}
