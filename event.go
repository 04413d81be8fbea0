package vigil

import "sync"

// Event is the capability every dispatchable event type must implement.
//
// Concrete event types embed Signal (which provides Notify and the
// internal wake-target binding) and implement Trigger and Reset:
//
//	type KeyEvent struct {
//	    vigil.Signal
//	    // event-specific state, guarded by the event's own mutex
//	}
//
// Trigger is the firing predicate. It is evaluated on every dispatch
// scan, so it must be cheap, and it must not mutate state that changes
// system behavior independent of Reset.
//
// Reset runs exactly once, immediately after all callbacks for a firing
// have executed. After Reset returns, Trigger must evaluate false until
// new producer activity occurs; a Reset that leaves Trigger true causes
// the owning listener to re-fire the same event forever, starving every
// other registration.
//
// Any mutable state shared between the producer and the listener's
// worker (queues, counters) is the event implementer's to synchronize.
// The engine only synchronizes the wake mechanism itself.
type Event interface {
	// Trigger reports whether the event is ready to fire.
	Trigger() bool

	// Reset returns a fired event to the non-triggered state.
	Reset()

	// Notify wakes the listener(s) the event is bound to.
	// Producers must call it after the mutation that makes Trigger
	// eligible to become true. An omitted Notify does not lose the
	// event, but delivery stalls until the next unrelated wakeup.
	Notify()

	// signal exposes the embedded wake-target binding.
	// Satisfied by embedding Signal; this is what forces every event
	// type to embed it.
	signal() *Signal
}

// SubConditioned is an optional refinement checked only by listeners in
// polling mode. Per sweep, callbacks run when Trigger and SubCondition
// are both true, while Reset runs whenever Trigger alone is true. The
// blocking mode never consults it.
type SubConditioned interface {
	SubCondition() bool
}

// Signal is the wake-target binding embedded by every event type.
//
// By default an event is bound to at most one listener at a time: the
// listener it was most recently registered with. Registering the same
// event instance with a second listener silently rebinds it, and the
// earlier listener then only observes the event on incidental wakeups
// from its other registrations - its delivery latency for this event
// becomes unbounded. SetFanout opts a single event into the corrected
// behavior where Notify wakes every listener it is registered with.
//
// The zero value is ready to use.
type Signal struct {
	mu     sync.Mutex
	conds  []*sync.Cond
	fanout bool
}

// Notify wakes the bound listener(s). Safe to call on an unbound event;
// it is then a no-op.
//
// Notify acquires each bound listener's lock before signalling, so it
// must not be called while holding a lock that the event's Trigger
// method also takes - release the payload lock first, then Notify.
func (s *Signal) Notify() {
	s.mu.Lock()
	conds := make([]*sync.Cond, len(s.conds))
	copy(conds, s.conds)
	s.mu.Unlock()

	for _, c := range conds {
		// Taking the waiter's lock closes the window between its
		// predicate check and its wait.
		c.L.Lock()
		c.Signal()
		c.L.Unlock()
	}
}

// SetFanout selects between last-binder-wins (false, the default) and
// notify-all-binders (true). It only affects bindings made after the
// call, so set it before registering the event with any listener.
func (s *Signal) SetFanout(on bool) {
	s.mu.Lock()
	s.fanout = on
	s.mu.Unlock()
}

// signal implements the Event binding hook.
func (s *Signal) signal() *Signal { return s }

// bind attaches a listener's condition variable as a wake target.
func (s *Signal) bind(c *sync.Cond) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fanout {
		s.conds = s.conds[:0]
		s.conds = append(s.conds, c)
		return
	}
	for _, existing := range s.conds {
		if existing == c {
			return
		}
	}
	s.conds = append(s.conds, c)
}

// unbind detaches a wake target. No-op if the target is not bound.
func (s *Signal) unbind(c *sync.Cond) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.conds {
		if existing == c {
			s.conds = append(s.conds[:i], s.conds[i+1:]...)
			return
		}
	}
}
