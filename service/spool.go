package service

import (
	"spool/domain/stack"
)

// Entry is one spooled value: an opaque payload tagged with the journal
// sequence assigned at push time.
type Entry struct {
	Seq     uint64
	Payload []byte
}

// Spool abstracts the two reclamation strategies behind one surface so
// the service (and config) can choose at boot.
type Spool interface {
	// Push adds an entry. It fails only on resource exhaustion
	// (counted variant: arena full); the spool is unchanged on error.
	Push(Entry) error
	// Pop removes the most recent entry. The bool is false when the
	// spool is empty, which is a normal outcome. The error is reserved
	// for resource exhaustion (hazard variant: registry full).
	Pop() (Entry, bool, error)
	// Depth is a point-in-time element count.
	Depth() uint64
	// Stats snapshots the lifetime counters.
	Stats() stack.Stats
	// Drain empties the spool at teardown. Exclusive access assumed.
	Drain(func(Entry))
}

// hazardSpool adapts the hazard-pointer stack. Each pop claims a
// registry slot for its duration, so the registry must be sized for the
// maximum number of concurrent poppers.
type hazardSpool struct {
	st *stack.Stack[Entry]
}

// NewHazardSpool builds a spool with hazard-pointer reclamation.
func NewHazardSpool(reg *stack.Registry) Spool {
	return &hazardSpool{st: stack.New[Entry](reg)}
}

func (h *hazardSpool) Push(e Entry) error {
	h.st.Push(e)
	return nil
}

func (h *hazardSpool) Pop() (Entry, bool, error) {
	g, err := h.st.Registry().Acquire()
	if err != nil {
		return Entry{}, false, err
	}
	defer g.Release()
	e, ok := h.st.Pop(g)
	return e, ok, nil
}

func (h *hazardSpool) Depth() uint64 {
	return h.st.Depth()
}

func (h *hazardSpool) Stats() stack.Stats {
	return h.st.Stats()
}

func (h *hazardSpool) Drain(fn func(Entry)) {
	h.st.Drain(fn)
}

// countedSpool adapts the split-reference-count stack. Pops never need
// shared slots; pushes are bounded by the arena capacity.
type countedSpool struct {
	st *stack.CountedStack[Entry]
}

// NewCountedSpool builds a spool with split-refcount reclamation over a
// fixed arena of capacity entries.
func NewCountedSpool(capacity int) Spool {
	return &countedSpool{st: stack.NewCounted[Entry](capacity)}
}

func (c *countedSpool) Push(e Entry) error {
	return c.st.Push(e)
}

func (c *countedSpool) Pop() (Entry, bool, error) {
	e, ok := c.st.Pop()
	return e, ok, nil
}

func (c *countedSpool) Depth() uint64 {
	return c.st.Depth()
}

func (c *countedSpool) Stats() stack.Stats {
	return c.st.Stats()
}

func (c *countedSpool) Drain(fn func(Entry)) {
	c.st.Drain(fn)
}
