package vigil

import "time"

// ListenerOption configures a Listener at construction time.
type ListenerOption func(*Listener)

// WithPollInterval switches the listener's worker from the blocking
// condition-variable wait to a fixed-interval sweep of the registration
// table. Non-positive intervals are ignored and leave the listener in
// blocking mode.
//
// Polling differs from the blocking worker in two documented ways: it
// services every triggered event per sweep rather than the first one
// per wakeup, and it evaluates the optional SubConditioned gate, which
// the blocking worker never consults. Use it where wakeup precision is
// unneeded and a latency of up to one interval is acceptable.
func WithPollInterval(d time.Duration) ListenerOption {
	return func(l *Listener) {
		if d > 0 {
			l.poll = d
		}
	}
}

// HandlerOption configures a Handler at construction time.
type HandlerOption func(*Handler)

// WithOwnership sets the handler's ownership mode. The mode is
// immutable after construction.
func WithOwnership(o Ownership) HandlerOption {
	return func(h *Handler) {
		h.ownership = o
	}
}
