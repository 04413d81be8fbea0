// Package events provides ready-made event types for the vigil engine.
//
// The types here double as reference implementations of the Event
// contract: each embeds vigil.Signal, keeps its own mutual exclusion
// around producer-shared state, and releases that lock before calling
// Notify.
package events

import (
	"sync"
	"time"

	"github.com/dshills/vigil"
	"github.com/dshills/vigil/registry"
)

// DefaultKeyQueueCap is the default keystroke queue capacity.
const DefaultKeyQueueCap = 4

// Keystroke is one queued key press.
type Keystroke struct {
	// Rune is the character pressed.
	Rune rune

	// Pressed is when the producer enqueued the keystroke. Consumers
	// can subtract it from the dispatch time to measure delivery
	// latency.
	Pressed time.Time
}

// KeyEvent triggers while its keystroke queue is non-empty. Reset pops
// the front of the queue, so one trigger cycle consumes exactly one
// keystroke. Keystrokes arriving while the queue is full are dropped.
type KeyEvent struct {
	vigil.Signal

	mu    sync.Mutex
	queue []Keystroke
	limit int
}

// NewKeyEvent creates a key event with the given queue capacity
// (DefaultKeyQueueCap if non-positive) and registers it in the group.
// The returned handle removes it again; remove before the backing
// instance is discarded.
func NewKeyEvent(group *registry.Group[KeyEvent], capacity int) (*KeyEvent, *registry.Handle[KeyEvent]) {
	if capacity <= 0 {
		capacity = DefaultKeyQueueCap
	}
	e := &KeyEvent{limit: capacity}
	return e, group.Register(e)
}

// Trigger reports whether a keystroke is queued.
func (e *KeyEvent) Trigger() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue) > 0
}

// Reset consumes the front keystroke.
func (e *KeyEvent) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.queue) > 0 {
		e.queue = e.queue[1:]
	}
}

// Front returns the keystroke a firing is being dispatched for.
// The second result is false if the queue is empty.
func (e *KeyEvent) Front() (Keystroke, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.queue) == 0 {
		return Keystroke{}, false
	}
	return e.queue[0], true
}

// Len returns the number of queued keystrokes.
func (e *KeyEvent) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}

// enqueue appends a keystroke if the queue has room.
func (e *KeyEvent) enqueue(k Keystroke) {
	e.mu.Lock()
	if len(e.queue) < e.limit {
		e.queue = append(e.queue, k)
	}
	e.mu.Unlock()
}

// Push broadcasts one key press to every KeyEvent instance in the
// group: each instance queues the keystroke (dropping it when full) and
// is notified. This is the producer-side entry point; call it from the
// thread that reads the keyboard.
func Push(group *registry.Group[KeyEvent], r rune) {
	k := Keystroke{Rune: r, Pressed: time.Now()}
	group.Each(func(e *KeyEvent) {
		e.enqueue(k)
		// Notify after releasing the queue lock; see Signal.Notify.
		e.Notify()
	})
}
