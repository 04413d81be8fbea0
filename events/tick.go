package events

import (
	"sync/atomic"

	"github.com/dshills/vigil"
)

// TickEvent counts stimuli: each Tick arms one firing, each trigger
// cycle consumes one. It also implements the polling-mode sub-condition
// gate - a muted tick event still drains its pending count on each
// sweep, but its callbacks are skipped.
type TickEvent struct {
	vigil.Signal

	pending atomic.Int64
	muted   atomic.Bool
}

// NewTickEvent creates an unmuted tick event with no pending firings.
func NewTickEvent() *TickEvent {
	return &TickEvent{}
}

// Tick arms one firing and wakes the bound listener.
func (e *TickEvent) Tick() {
	e.pending.Add(1)
	e.Notify()
}

// Trigger reports whether a firing is pending.
func (e *TickEvent) Trigger() bool {
	return e.pending.Load() > 0
}

// Reset consumes one pending firing.
func (e *TickEvent) Reset() {
	for {
		n := e.pending.Load()
		if n <= 0 {
			return
		}
		if e.pending.CompareAndSwap(n, n-1) {
			return
		}
	}
}

// Pending returns the number of armed firings.
func (e *TickEvent) Pending() int {
	return int(e.pending.Load())
}

// SubCondition implements the optional polling-mode gate: a muted
// event's callbacks are suppressed while its Reset still runs.
func (e *TickEvent) SubCondition() bool {
	return !e.muted.Load()
}

// Mute suppresses (true) or restores (false) callback delivery in
// polling mode. The blocking mode ignores it.
func (e *TickEvent) Mute(on bool) {
	e.muted.Store(on)
}
