package stack

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// retired is one entry in the deferred-reclaim list: a node that was
// unlinked from the stack while some slot still pinned it.
type retired[T any] struct {
	node *node[T]
	next *retired[T]
}

// Stack is a Treiber stack with hazard-pointer reclamation. Nodes popped
// while unobserved go straight back to the node pool; nodes popped while
// pinned by another popper are parked on a lock-free deferred list and
// swept on later pops.
type Stack[T any] struct {
	head     atomic.Pointer[node[T]]
	deferred atomic.Pointer[retired[T]]
	reg      *Registry
	pool     sync.Pool

	pushes    atomic.Uint64
	pops      atomic.Uint64
	allocated atomic.Uint64 // node lifecycles started (one per push)
	reclaimed atomic.Uint64 // node lifecycles ended (one per reclaim)
	deferrals atomic.Uint64 // retirements that could not free immediately
}

// New creates a stack whose poppers coordinate through reg.
func New[T any](reg *Registry) *Stack[T] {
	s := &Stack[T]{reg: reg}
	s.pool.New = func() any { return new(node[T]) }
	return s
}

// Registry returns the hazard registry the stack was built with.
func (s *Stack[T]) Registry() *Registry {
	return s.reg
}

// Push links v on top of the stack. It never fails and never blocks;
// a lost CAS is retried against the fresh head.
func (s *Stack[T]) Push(v T) {
	n := s.pool.Get().(*node[T])
	n.value = v
	s.allocated.Add(1)
	for {
		old := s.head.Load()
		n.next = old
		if s.head.CompareAndSwap(old, n) {
			s.pushes.Add(1)
			return
		}
	}
}

// Pop unlinks and returns the top value, or false if the stack is empty.
// The guard must belong to this stack's registry and must not be shared
// between concurrently popping goroutines.
func (s *Stack[T]) Pop(g *Guard) (T, bool) {
	var zero T
	t := s.head.Load()
	for {
		// Pin t, then confirm it is still the head: it may have been
		// popped and reclaimed between the load and the store.
		for {
			g.protect(unsafe.Pointer(t))
			h := s.head.Load()
			if h == t {
				break
			}
			t = h
		}
		if t == nil {
			g.clear()
			return zero, false
		}
		if s.head.CompareAndSwap(t, t.next) {
			break
		}
		t = s.head.Load()
	}
	g.clear()
	v := t.value
	t.value = zero
	s.pops.Add(1)
	s.retire(t)
	return v, true
}

// Depth returns the number of values currently in the stack. It is a
// snapshot: concurrent operations may change it before the caller looks.
func (s *Stack[T]) Depth() uint64 {
	return s.pushes.Load() - s.pops.Load()
}

// Stats returns a snapshot of the stack's lifetime counters.
func (s *Stack[T]) Stats() Stats {
	pushes := s.pushes.Load()
	pops := s.pops.Load()
	return Stats{
		Depth:     pushes - pops,
		Pushes:    pushes,
		Pops:      pops,
		Allocated: s.allocated.Load(),
		Reclaimed: s.reclaimed.Load(),
		Deferred:  s.deferrals.Load(),
	}
}

// Drain pops every remaining value, calling fn (if non-nil) on each, then
// force-frees the deferred list. The caller must have exclusive access;
// Drain is the teardown path, not a concurrent operation.
func (s *Stack[T]) Drain(fn func(T)) {
	var zero T
	for {
		n := s.head.Load()
		if n == nil {
			break
		}
		s.head.Store(n.next)
		if fn != nil {
			fn(n.value)
		}
		n.value = zero
		s.pops.Add(1)
		s.reclaim(n)
	}
	// No poppers remain, so every deferred node is free by definition.
	e := s.deferred.Swap(nil)
	for e != nil {
		next := e.next
		s.reclaim(e.node)
		e = next
	}
}

// retire disposes of a node that a successful pop just unlinked. If any
// slot still pins it the node is deferred; either way the deferred list
// is swept so reclamation keeps pace with popping.
func (s *Stack[T]) retire(n *node[T]) {
	if s.reg.Protected(unsafe.Pointer(n)) {
		s.deferNode(n)
	} else {
		s.reclaim(n)
	}
	s.sweep()
}

func (s *Stack[T]) deferNode(n *node[T]) {
	s.deferrals.Add(1)
	e := &retired[T]{node: n}
	for {
		old := s.deferred.Load()
		e.next = old
		if s.deferred.CompareAndSwap(old, e) {
			return
		}
	}
}

// sweep detaches the whole deferred list and re-checks each entry against
// the live registry, freeing the unpinned ones and re-deferring the rest.
// Cost is O(registry capacity) per entry, bounded by live poppers.
func (s *Stack[T]) sweep() {
	e := s.deferred.Swap(nil)
	for e != nil {
		next := e.next
		if s.reg.Protected(unsafe.Pointer(e.node)) {
			e.next = nil
			s.redefer(e)
		} else {
			s.reclaim(e.node)
		}
		e = next
	}
}

func (s *Stack[T]) redefer(e *retired[T]) {
	for {
		old := s.deferred.Load()
		e.next = old
		if s.deferred.CompareAndSwap(old, e) {
			return
		}
	}
}

func (s *Stack[T]) reclaim(n *node[T]) {
	n.next = nil
	s.pool.Put(n)
	s.reclaimed.Add(1)
}
