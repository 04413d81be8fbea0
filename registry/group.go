// Package registry provides per-type instance groups for events.
//
// A Group[E] is the explicit form of "every live instance of event type
// E": producers use it to broadcast one stimulus to all instances of a
// single type in one call. The group is owned by the application's
// composition root; instances join at construction and leave through
// the handle returned at registration, so membership mirrors instance
// lifetime exactly.
//
// Groups are deliberately unsynchronized. Registering or removing
// instances concurrently with iteration is a documented hazard the
// caller must avoid, not something the group papers over; the intended
// shape is a fixed population set up before listeners start.
package registry

// Group is an insertion-ordered collection of live instances of one
// concrete event type. Type scoping is by construction: a Group[E] can
// only ever hold instances of exactly E.
type Group[E any] struct {
	items []*E
}

// NewGroup creates an empty group.
func NewGroup[E any]() *Group[E] {
	return &Group[E]{}
}

// Register adds an instance to the group and returns the handle that
// removes it. Call Register at the end of the instance's construction
// and Remove when the instance is discarded.
func (g *Group[E]) Register(e *E) *Handle[E] {
	if e == nil {
		return &Handle[E]{removed: true}
	}
	g.items = append(g.items, e)
	return &Handle[E]{group: g, item: e}
}

// Len returns the number of registered instances.
func (g *Group[E]) Len() int {
	return len(g.items)
}

// All returns the registered instances in insertion order. The slice is
// a copy; mutating it does not affect the group.
func (g *Group[E]) All() []*E {
	out := make([]*E, len(g.items))
	copy(out, g.items)
	return out
}

// Each calls fn for every registered instance in insertion order.
// fn must not register or remove instances.
func (g *Group[E]) Each(fn func(*E)) {
	for _, e := range g.items {
		fn(e)
	}
}

// Handle removes a registered instance from its group. The zero value
// and a spent handle are inert.
type Handle[E any] struct {
	group   *Group[E]
	item    *E
	removed bool
}

// Remove takes the instance out of the group. Idempotent.
func (h *Handle[E]) Remove() {
	if h == nil || h.removed || h.group == nil {
		return
	}
	h.removed = true
	items := h.group.items
	for i, e := range items {
		if e == h.item {
			h.group.items = append(items[:i], items[i+1:]...)
			return
		}
	}
}
