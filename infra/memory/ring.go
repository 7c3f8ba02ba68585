package memory

import "sync/atomic"

// Ring is a lock-free SPSC ring buffer (service hot path → outbox
// writer). Exactly one goroutine may enqueue and exactly one may
// dequeue; head and tail sit on separate cache lines.
type Ring[T any] struct {
	head  uint64
	_pad1 [56]byte
	tail  uint64
	_pad2 [56]byte
	buf   []T
	mask  uint64
}

// NewRing allocates a fixed-size circular buffer (power-of-2 length).
func NewRing[T any](size uint64) *Ring[T] {
	if size == 0 || size&(size-1) != 0 {
		panic("memory: Ring size must be a power of two")
	}
	return &Ring[T]{
		buf:  make([]T, size),
		mask: size - 1,
	}
}

// Enqueue pushes a value into the ring.
// Returns false if the buffer is full.
func (r *Ring[T]) Enqueue(v T) bool {
	h := r.head
	t := atomic.LoadUint64(&r.tail)
	if h-t == uint64(len(r.buf)) {
		return false
	}
	r.buf[h&r.mask] = v
	atomic.StoreUint64(&r.head, h+1)
	return true
}

// Dequeue pops the next value from the ring.
// Returns false if the buffer is empty.
func (r *Ring[T]) Dequeue() (T, bool) {
	var zero T
	t := r.tail
	h := atomic.LoadUint64(&r.head)
	if t == h {
		return zero, false
	}
	v := r.buf[t&r.mask]
	r.buf[t&r.mask] = zero
	atomic.StoreUint64(&r.tail, t+1)
	return v, true
}

// Len returns the number of values currently stored.
func (r *Ring[T]) Len() int {
	h := atomic.LoadUint64(&r.head)
	t := atomic.LoadUint64(&r.tail)
	return int(h - t)
}

// Cap returns the total capacity of the ring.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// IsEmpty reports whether the ring is empty.
func (r *Ring[T]) IsEmpty() bool {
	return atomic.LoadUint64(&r.head) == atomic.LoadUint64(&r.tail)
}
