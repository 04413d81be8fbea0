package vigil

// Callback is a function invoked when the event it is registered for
// fires. The event is passed by reference; callbacks for one firing run
// strictly in registration order, before the event's Reset.
//
// Callbacks are not expected to fail in a reportable way. A panic
// inside a callback propagates out of the listener's worker goroutine
// unhandled; the engine performs no retry or isolation.
type Callback func(Event)

// On registers a typed callback for an event, preserving the concrete
// event type through the type-erased registration table. It is the
// type-safe form of Listener.RegisterEvent:
//
//	vigil.On(l, keyEvent, func(e *events.KeyEvent) {
//	    // e is the concrete type, no assertion needed
//	})
//
// Like RegisterEvent, it is a silent no-op once the listener is running.
func On[E Event](l *Listener, ev E, fn func(E)) {
	if fn == nil {
		return
	}
	l.RegisterEvent(ev, func(e Event) {
		fn(e.(E))
	})
}
