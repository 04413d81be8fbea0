// Package vigil is an in-process callback-dispatch engine built around
// condition variables rather than a message queue.
//
// Producers mutate the state of event objects; background listeners
// observe those objects and invoke registered callbacks when a
// per-object condition becomes true, then reset the object's state.
// Conditions are evaluated directly on the shared objects, so producers
// and consumers stay decoupled without any intermediate queue.
//
// # Architecture
//
//	┌────────────┐   mutate + Notify    ┌──────────────────────────┐
//	│  Producer  │ ───────────────────▶ │  Event (Trigger/Reset)   │
//	└────────────┘                      └──────────────────────────┘
//	                                                │ wake
//	                                                ▼
//	                                    ┌──────────────────────────┐
//	                                    │  Listener worker          │
//	                                    │  wait → scan → dispatch   │
//	                                    │  → reset                  │
//	                                    └──────────────────────────┘
//	                                                ▲ start/stop
//	                                                │
//	                                    ┌──────────────────────────┐
//	                                    │  Handler (lifecycle)      │
//	                                    └──────────────────────────┘
//
// # The event contract
//
// Every event type embeds Signal and implements Trigger and Reset. The
// producer's happens-before chain is: mutate the event's state, then
// call Notify. The owning listener wakes, scans its registration table
// in insertion order, dispatches the first triggered event's callbacks
// in registration order, and calls Reset exactly once.
//
// Reset must leave Trigger false until new producer activity, or the
// listener livelocks on that one event. The engine documents this
// contract; it does not detect violations.
//
// # Registration
//
// Registration is append-only and must complete before Start. The table
// is immutable while the worker runs, so dispatch reads it without a
// lock. Registering after Start is a silent no-op, as is adding a
// listener to a running Handler: the library trusts its caller and
// defines usage violations as no-ops rather than errors.
//
// # Basic usage
//
//	key := &KeyEvent{}            // embeds vigil.Signal
//	l := vigil.NewListener()
//	vigil.On(l, key, func(e *KeyEvent) { fmt.Println(e.Front()) })
//
//	h := vigil.NewHandler()       // Owned mode
//	h.AddListener(l)
//	h.Start()
//	defer h.Cleanup()             // stop + close owned listeners
//
//	key.Enqueue('a')              // producer side
//	key.Notify()
//
// # Scheduling modes
//
// The default worker blocks on a condition variable and services one
// event per wakeup. WithPollInterval selects a legacy fixed-interval
// sweep instead, which services every triggered event per sweep and
// additionally honors the optional SubConditioned gate. The two modes
// are distinct policies, not interchangeable implementations of one.
//
// # Hazards
//
// An event registered with several listeners wakes only the most
// recently bound one by default; the others observe it solely on
// incidental wakeups, with unbounded latency. Signal.SetFanout opts an
// event into waking every bound listener instead. Whether multi-listener
// registration was ever intended upstream is unknown, so the faithful
// behavior stays the default and the correction is explicit.
//
// Mutable state inside an event is shared between producer threads and
// the listener worker and is not synchronized by the engine - the event
// implementer provides mutual exclusion around it. Callbacks are given
// no isolation: a panic propagates out of the worker goroutine.
package vigil
