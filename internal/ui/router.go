package ui

import (
	"sync"

	"showcase/internal/ui/services/drag"
)

// pointerRouter hands every mouse motion and release to the listeners that
// hold a grant, wherever on screen the pointer is
type pointerRouter struct {
	nextID    int
	listeners []routedListener
}

type routedListener struct {
	id       int
	listener drag.PointerListener
}

var _ drag.ListenerHost = (*pointerRouter)(nil)

// Acquire registers l until the returned func is called
func (r *pointerRouter) Acquire(l drag.PointerListener) func() {
	r.nextID++
	id := r.nextID
	r.listeners = append(r.listeners, routedListener{id: id, listener: l})

	var once sync.Once
	return func() {
		once.Do(func() { r.remove(id) })
	}
}

func (r *pointerRouter) remove(id int) {
	for i, rl := range r.listeners {
		if rl.id == id {
			r.listeners = append(r.listeners[:i], r.listeners[i+1:]...)
			return
		}
	}
}

// Active returns the number of registered listeners
func (r *pointerRouter) Active() int {
	return len(r.listeners)
}

// Move dispatches a motion event and reports whether anyone received it
func (r *pointerRouter) Move(x int) bool {
	targets := r.snapshot()
	for _, rl := range targets {
		rl.listener.PointerMove(x)
	}
	return len(targets) > 0
}

// Up dispatches a release event and reports whether anyone received it
func (r *pointerRouter) Up(x int) bool {
	targets := r.snapshot()
	for _, rl := range targets {
		rl.listener.PointerUp(x)
	}
	return len(targets) > 0
}

// listeners release themselves while being dispatched to
func (r *pointerRouter) snapshot() []routedListener {
	return append([]routedListener(nil), r.listeners...)
}
