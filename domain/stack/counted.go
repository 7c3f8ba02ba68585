package stack

import (
	"errors"
	"sync/atomic"
)

// ErrArenaFull is returned by Push when the node arena is exhausted.
// The stack is unmodified: a failed push changes nothing.
var ErrArenaFull = errors.New("stack: node arena full")

// DefaultArenaSize is used when NewCounted is given a non-positive
// capacity.
const DefaultArenaSize = 1 << 16

// CountedStack is a Treiber stack with split-reference-count reclamation.
// The head word packs the top node's arena reference together with its
// external count (how many poppers currently view the node through the
// head); each node carries an internal compensation count. A node is
// freed by whichever thread's arithmetic makes the two counts sum to
// zero, so no registry and no deferred list are needed.
type CountedStack[T any] struct {
	head   atomic.Uint64 // packed {external count, ref}
	arena  *arena[T]
	pushes atomic.Uint64
	pops   atomic.Uint64
}

// NewCounted creates a counted stack backed by a fixed arena of capacity
// nodes. Capacity bounds the number of values resident at once.
func NewCounted[T any](capacity int) *CountedStack[T] {
	if capacity <= 0 {
		capacity = DefaultArenaSize
	}
	return &CountedStack[T]{arena: newArena[T](capacity)}
}

// Push links v on top of the stack. It fails only when the arena has no
// free node, in which case nothing changes.
func (s *CountedStack[T]) Push(v T) error {
	ref, n, ok := s.arena.alloc()
	if !ok {
		return ErrArenaFull
	}
	n.value = v
	n.inner.Store(0)
	// One external reference: reachability through head.
	fresh := packRef(1, ref)
	for {
		old := s.head.Load()
		n.next.Store(old)
		if s.head.CompareAndSwap(old, fresh) {
			s.pushes.Add(1)
			return nil
		}
	}
}

// Pop unlinks and returns the top value, or false if the stack is empty.
func (s *CountedStack[T]) Pop() (T, bool) {
	var zero T
	old := s.head.Load()
	for {
		old = s.increaseHeadCount(old)
		ref := refOf(old)
		if ref == 0 {
			return zero, false
		}
		n := s.arena.at(ref)
		if s.head.CompareAndSwap(old, n.next.Load()) {
			v := n.value
			// Transfer the external count to the node: minus one because
			// the node left the stack, minus one more because this
			// popper's own view ends here. Whoever lands the sum on zero
			// owns the free.
			toAdd := int64(countOf(old)) - 2
			if n.inner.Add(toAdd) == 0 {
				s.arena.release(ref)
			}
			s.pops.Add(1)
			return v, true
		}
		// Lost the race: withdraw this popper's view without touching
		// the node's place in the stack.
		if n.inner.Add(-1) == 0 {
			s.arena.release(ref)
		}
		old = s.head.Load()
	}
}

// increaseHeadCount bumps the external count on whatever pair is the
// current head, returning the pair the increment landed on. Go atomics
// are sequentially consistent, which covers the acquire edge the
// algorithm needs here (the incrementing popper must see every write
// published before the observed count).
func (s *CountedStack[T]) increaseHeadCount(old uint64) uint64 {
	for {
		next := packRef(countOf(old)+1, refOf(old))
		if s.head.CompareAndSwap(old, next) {
			return next
		}
		old = s.head.Load()
	}
}

// Depth returns the number of values currently in the stack.
func (s *CountedStack[T]) Depth() uint64 {
	return s.pushes.Load() - s.pops.Load()
}

// Stats returns a snapshot of the stack's lifetime counters. Reclaimed is
// derived from the arena's live count, so after a quiesced Drain it
// equals Allocated.
func (s *CountedStack[T]) Stats() Stats {
	pushes := s.pushes.Load()
	pops := s.pops.Load()
	live := uint64(s.arena.Live())
	return Stats{
		Depth:     pushes - pops,
		Pushes:    pushes,
		Pops:      pops,
		Allocated: pushes,
		Reclaimed: pushes - live,
	}
}

// Live returns the number of arena nodes currently allocated.
func (s *CountedStack[T]) Live() int64 {
	return s.arena.Live()
}

// Drain pops every remaining value, calling fn (if non-nil) on each.
// The caller must have exclusive access; Drain is the teardown path.
func (s *CountedStack[T]) Drain(fn func(T)) {
	for {
		old := s.head.Load()
		ref := refOf(old)
		if ref == 0 {
			return
		}
		n := s.arena.at(ref)
		s.head.Store(n.next.Load())
		if fn != nil {
			fn(n.value)
		}
		s.pops.Add(1)
		s.arena.release(ref)
	}
}
