package stack

import (
	"errors"
	"sync/atomic"
	"unsafe"
)

// ErrRegistryFull is returned by Acquire when every hazard slot is owned.
// This is a capacity misconfiguration, not a transient condition: size the
// registry for the maximum number of concurrent poppers at startup.
var ErrRegistryFull = errors.New("stack: hazard registry full")

// DefaultRegistrySize is used when NewRegistry is given a non-positive
// capacity.
const DefaultRegistrySize = 128

// hazardSlot publishes the single node pointer its owner is dereferencing.
// Slots are padded so concurrent owners do not share a cache line.
type hazardSlot struct {
	owner atomic.Uint64  // 0 = unowned
	ptr   unsafe.Pointer // node currently pinned, nil if none
	_     [48]byte
}

// Registry is a fixed-capacity table of hazard slots shared by every
// worker popping from one or more stacks. It is plain injected state:
// construct one at boot and pass it to New.
type Registry struct {
	slots  []hazardSlot
	nextID atomic.Uint64
}

// NewRegistry creates a registry with one slot per concurrent popper.
func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		capacity = DefaultRegistrySize
	}
	return &Registry{slots: make([]hazardSlot, capacity)}
}

// Capacity returns the number of slots.
func (r *Registry) Capacity() int {
	return len(r.slots)
}

// Acquire claims a free slot and returns a guard bound to it. The guard is
// the caller's explicit popper context: acquire once per worker, thread it
// through Pop, and Release it when the worker exits.
func (r *Registry) Acquire() (*Guard, error) {
	id := r.nextID.Add(1)
	for i := range r.slots {
		s := &r.slots[i]
		if s.owner.CompareAndSwap(0, id) {
			return &Guard{slot: s}, nil
		}
	}
	return nil, ErrRegistryFull
}

// Protected reports whether any slot currently pins p.
func (r *Registry) Protected(p unsafe.Pointer) bool {
	for i := range r.slots {
		if atomic.LoadPointer(&r.slots[i].ptr) == p {
			return true
		}
	}
	return false
}

// Guard pins one registry slot for a single worker.
type Guard struct {
	slot *hazardSlot
}

// Release clears the pin and hands the slot back to the registry.
// The pointer must be cleared before the owner word, so a concurrent
// Protected scan never misses a live pin.
func (g *Guard) Release() {
	atomic.StorePointer(&g.slot.ptr, nil)
	g.slot.owner.Store(0)
}

func (g *Guard) protect(p unsafe.Pointer) {
	atomic.StorePointer(&g.slot.ptr, p)
}

func (g *Guard) clear() {
	atomic.StorePointer(&g.slot.ptr, nil)
}
