package vigil

import "sync"

// Ownership selects whether a Handler retires its listeners on Cleanup
// or merely releases them. It is fixed at Handler construction.
type Ownership int

const (
	// Owned listeners belong to the handler: Cleanup stops and closes
	// them, after which they cannot be started or registered again.
	Owned Ownership = iota

	// Borrowed listeners outlive the handler: Cleanup stops them and
	// empties the collection, but the listener objects stay usable.
	Borrowed
)

// String returns a human-readable ownership name.
func (o Ownership) String() string {
	switch o {
	case Owned:
		return "owned"
	case Borrowed:
		return "borrowed"
	default:
		return "unknown"
	}
}

// Handler owns a collection of listeners and controls their collective
// lifecycle. It is the unit the host application manages: listeners are
// added while the handler is idle, then started, stopped and cleaned up
// in bulk.
type Handler struct {
	mu        sync.Mutex
	listeners []*Listener
	ownership Ownership
	running   bool
}

// NewHandler creates an idle handler. Listeners are owned by default;
// use WithOwnership(Borrowed) to merely manage them.
func NewHandler(opts ...HandlerOption) *Handler {
	h := &Handler{ownership: Owned}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// AddListener appends a listener to the collection. Silent no-op while
// the handler is running, and for nil listeners.
func (h *Handler) AddListener(l *Listener) {
	if l == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.running {
		return
	}
	h.listeners = append(h.listeners, l)
}

// Len returns the number of listeners in the collection.
func (h *Handler) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

// Ownership returns the handler's ownership mode.
func (h *Handler) Ownership() Ownership {
	return h.ownership
}

// IsRunning reports whether Start has been called more recently than
// Stop.
func (h *Handler) IsRunning() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.running
}

// Start transitions every listener from idle to running. Idempotent,
// both for the handler and per listener.
func (h *Handler) Start() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.running {
		return
	}
	h.running = true
	for _, l := range h.listeners {
		l.Start()
	}
}

// Stop transitions every listener back to idle, joining each worker in
// turn. The call is bounded by the slowest listener's in-flight
// dispatch. Idempotent.
func (h *Handler) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.running {
		return
	}
	h.running = false
	for _, l := range h.listeners {
		l.Stop()
	}
}

// Cleanup stops every listener, closes them when the handler owns them,
// and empties the collection in either mode. Call it when the handler
// is discarded; like the rest of the lifecycle it is safe to call more
// than once.
func (h *Handler) Cleanup() {
	h.Stop()

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ownership == Owned {
		for _, l := range h.listeners {
			l.close()
		}
	}
	h.listeners = nil
}
