package vigil

import (
	"sync"
	"sync/atomic"
	"time"
)

// registration binds one event to its ordered callbacks.
type registration struct {
	event     Event
	callbacks []Callback
}

// Listener owns a background worker that waits for registered events to
// trigger and dispatches their callbacks.
//
// Lifecycle: Idle (constructed) -> Running (Start) -> Idle (Stop).
// Registration is append-only and must complete before Start; the table
// is treated as immutable while the worker runs, so no lock guards
// reads of it during dispatch.
//
// The default worker blocks on a condition variable and services the
// first triggered event per wakeup, in table (insertion) order. A
// listener built with WithPollInterval instead sweeps the whole table
// at a fixed interval; see the option for the semantic differences.
type Listener struct {
	mu   sync.Mutex
	cond *sync.Cond

	table []registration

	running atomic.Bool
	closed  atomic.Bool
	done    chan struct{}
	halt    chan struct{}

	poll time.Duration

	counters counters
}

// NewListener creates an idle listener.
func NewListener(opts ...ListenerOption) *Listener {
	l := &Listener{}
	l.cond = sync.NewCond(&l.mu)
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RegisterEvent appends a callback for an event. Registering the same
// event again accumulates callbacks in order; nothing is overwritten.
//
// Registration binds the event's wake signal to this listener. With the
// default single binding, a later registration of the same event with
// another listener steals the binding (see Signal).
//
// Silent no-op while the listener is running or after it has been
// closed by an owning Handler.
func (l *Listener) RegisterEvent(ev Event, cb Callback) {
	if ev == nil || cb == nil {
		return
	}
	if l.running.Load() || l.closed.Load() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	ev.signal().bind(l.cond)
	for i := range l.table {
		if l.table[i].event == ev {
			l.table[i].callbacks = append(l.table[i].callbacks, cb)
			return
		}
	}
	l.table = append(l.table, registration{
		event:     ev,
		callbacks: []Callback{cb},
	})
}

// Registrations returns the number of distinct events registered.
func (l *Listener) Registrations() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.table)
}

// IsRunning reports whether the worker is active.
func (l *Listener) IsRunning() bool {
	return l.running.Load()
}

// Start spawns the worker. No-op if already running or closed.
func (l *Listener) Start() {
	if l.closed.Load() {
		return
	}
	if !l.running.CompareAndSwap(false, true) {
		return
	}

	l.done = make(chan struct{})
	l.halt = make(chan struct{})

	if l.poll > 0 {
		go l.pollLoop()
	} else {
		go l.listen()
	}
}

// Stop clears the running flag, wakes the worker and blocks until it
// has exited. The wait is bounded by at most one in-flight dispatch: a
// callback in progress always finishes, it is never interrupted.
// No-op if the listener is already idle.
func (l *Listener) Stop() {
	if !l.running.CompareAndSwap(true, false) {
		return
	}

	close(l.halt)
	l.mu.Lock()
	l.cond.Signal()
	l.mu.Unlock()

	<-l.done
}

// Stats returns a snapshot of the listener's dispatch counters.
func (l *Listener) Stats() Stats {
	return l.counters.snapshot()
}

// listen is the blocking worker: wait on the condition variable until
// the running flag clears or some registered event triggers, then
// dispatch exactly one event per wake cycle.
func (l *Listener) listen() {
	defer close(l.done)

	l.mu.Lock()
	for {
		reg := l.firstTriggered()
		for l.running.Load() && reg == nil {
			l.cond.Wait()
			l.counters.wakeups.Add(1)
			reg = l.firstTriggered()
		}
		if !l.running.Load() {
			// Exit without dispatching, even if an event is pending.
			break
		}

		ev := reg.event
		callbacks := reg.callbacks

		// Callbacks and Reset run unlocked so producers can keep
		// notifying while a dispatch is in flight.
		l.mu.Unlock()
		for _, cb := range callbacks {
			cb(ev)
			l.counters.callbacks.Add(1)
		}
		ev.Reset()
		l.counters.dispatches.Add(1)
		l.mu.Lock()
	}
	l.mu.Unlock()
}

// firstTriggered returns the first triggered table entry, or nil.
// Called with l.mu held. Table order is insertion order and stays
// stable for the life of the table, which makes the tie-break among
// simultaneously triggered events deterministic.
func (l *Listener) firstTriggered() *registration {
	for i := range l.table {
		if l.table[i].event.Trigger() {
			return &l.table[i]
		}
	}
	return nil
}

// pollLoop is the fixed-interval worker variant. Unlike the blocking
// worker it services every triggered event per sweep, and it honors the
// optional SubConditioned gate: callbacks require main && sub, Reset
// requires only main. Wakeup signals are ignored; latency is bounded by
// the interval instead.
func (l *Listener) pollLoop() {
	defer close(l.done)

	ticker := time.NewTicker(l.poll)
	defer ticker.Stop()

	for l.running.Load() {
		l.sweep()
		select {
		case <-ticker.C:
		case <-l.halt:
		}
	}
}

// sweep runs one full pass over the registration table.
func (l *Listener) sweep() {
	l.mu.Lock()
	table := l.table
	l.mu.Unlock()

	for i := range table {
		ev := table[i].event

		main := ev.Trigger()
		sub := true
		if g, ok := ev.(SubConditioned); ok {
			sub = g.SubCondition()
		}

		if main && sub {
			for _, cb := range table[i].callbacks {
				cb(ev)
				l.counters.callbacks.Add(1)
			}
		}
		if main {
			ev.Reset()
			l.counters.dispatches.Add(1)
		}
	}
}

// close permanently retires the listener: stop the worker, unbind every
// event and clear the table. Further Start/RegisterEvent calls are
// no-ops. Only an owning Handler calls this, from Cleanup.
func (l *Listener) close() {
	l.Stop()
	l.closed.Store(true)

	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.table {
		l.table[i].event.signal().unbind(l.cond)
	}
	l.table = nil
}
