package vigil

import "sync/atomic"

// Stats is a snapshot of a listener's dispatch counters.
type Stats struct {
	// Wakeups is the number of times the blocking worker woke from its
	// condition-variable wait. Always zero in polling mode.
	Wakeups uint64

	// Dispatches is the number of completed trigger/reset cycles.
	Dispatches uint64

	// Callbacks is the total number of callback invocations.
	Callbacks uint64
}

// counters holds the live atomic counters behind Stats.
type counters struct {
	wakeups    atomic.Uint64
	dispatches atomic.Uint64
	callbacks  atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Wakeups:    c.wakeups.Load(),
		Dispatches: c.dispatches.Load(),
		Callbacks:  c.callbacks.Load(),
	}
}
