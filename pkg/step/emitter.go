package step

import "sync"

// EventNextStep is the zero-payload signal a step broadcasts when the wizard
// should advance. Consumers decide what "advance" means.
const EventNextStep = "next-step"

// Emitter is a minimal observer broadcast: named, zero-payload events
// delivered synchronously to registered listeners in registration order.
type Emitter struct {
	mu        sync.Mutex
	listeners map[string][]func()
}

// On registers fn for the named event. Nil handlers are ignored.
func (e *Emitter) On(event string, fn func()) {
	if fn == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.listeners == nil {
		e.listeners = make(map[string][]func())
	}
	e.listeners[event] = append(e.listeners[event], fn)
}

// Emit invokes every listener registered for the named event, exactly once
// per listener per call. Listeners run on the caller's goroutine.
func (e *Emitter) Emit(event string) {
	e.mu.Lock()
	fns := append([]func(){}, e.listeners[event]...)
	e.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
