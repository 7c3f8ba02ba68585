package stack

import "sync/atomic"

// Packed word layout shared by the counted head, node links, and the
// arena free head: the low 40 bits hold an arena reference (index+1,
// 0 = nil), the high 24 bits hold a count. For the stack head the count
// is the external reference count; for the free head it is a version
// stamp that closes the ABA window on node reuse.
const (
	refBits = 40
	refMask = 1<<refBits - 1
)

func packRef(count uint64, ref uint64) uint64 {
	return count<<refBits | ref
}

func refOf(w uint64) uint64 {
	return w & refMask
}

func countOf(w uint64) uint64 {
	return w >> refBits
}

// cnode is a counted-stack cell. next doubles as the freelist link while
// the node sits on the free list; it always holds a packed word.
type cnode[T any] struct {
	value T
	inner atomic.Int64
	next  atomic.Uint64
}

// arena is a fixed pool of cnodes with a lock-free freelist. References
// are stable small integers, so a recycled node never aliases a stale
// pointer comparison the way a reused heap address would.
type arena[T any] struct {
	nodes []cnode[T]
	free  atomic.Uint64 // packed {version, ref}
	live  atomic.Int64
}

func newArena[T any](capacity int) *arena[T] {
	a := &arena[T]{nodes: make([]cnode[T], capacity)}
	for i := range a.nodes {
		next := uint64(0)
		if i+1 < capacity {
			next = uint64(i) + 2 // ref of node i+1
		}
		a.nodes[i].next.Store(next)
	}
	a.free.Store(packRef(0, 1))
	return a
}

func (a *arena[T]) at(ref uint64) *cnode[T] {
	return &a.nodes[ref-1]
}

// alloc pops a node off the freelist. ok is false when the arena is
// exhausted; the version stamp in the free head advances on every pop so
// a stale CAS against a recycled head always fails.
func (a *arena[T]) alloc() (ref uint64, n *cnode[T], ok bool) {
	for {
		old := a.free.Load()
		ref = refOf(old)
		if ref == 0 {
			return 0, nil, false
		}
		n = a.at(ref)
		next := refOf(n.next.Load())
		if a.free.CompareAndSwap(old, packRef(countOf(old)+1, next)) {
			a.live.Add(1)
			return ref, n, true
		}
	}
}

// release returns a node to the freelist. The caller must have proved the
// node unobservable (combined reference count reached zero).
func (a *arena[T]) release(ref uint64) {
	n := a.at(ref)
	var zero T
	n.value = zero
	for {
		old := a.free.Load()
		n.next.Store(refOf(old))
		if a.free.CompareAndSwap(old, packRef(countOf(old)+1, ref)) {
			a.live.Add(-1)
			return
		}
	}
}

// Live returns the number of nodes currently allocated out of the arena.
func (a *arena[T]) Live() int64 {
	return a.live.Load()
}
