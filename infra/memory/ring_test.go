package memory

import (
	"sync"
	"testing"
)

func TestRingEnqueueDequeue(t *testing.T) {
	r := NewRing[int](8)

	for i := 0; i < 8; i++ {
		if !r.Enqueue(i) {
			t.Fatalf("enqueue %d into non-full ring failed", i)
		}
	}
	if r.Enqueue(99) {
		t.Fatal("enqueue into full ring succeeded")
	}
	for i := 0; i < 8; i++ {
		v, ok := r.Dequeue()
		if !ok || v != i {
			t.Fatalf("dequeue: got (%d, %v), want (%d, true)", v, ok, i)
		}
	}
	if _, ok := r.Dequeue(); ok {
		t.Fatal("dequeue from empty ring succeeded")
	}
}

func TestRingSPSC(t *testing.T) {
	const n = 100000
	r := NewRing[int](1 << 10)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; {
			if r.Enqueue(i) {
				i++
			}
		}
	}()

	next := 0
	for next < n {
		v, ok := r.Dequeue()
		if !ok {
			continue
		}
		if v != next {
			t.Fatalf("out of order: got %d, want %d", v, next)
		}
		next++
	}
	wg.Wait()

	if !r.IsEmpty() {
		t.Fatalf("ring not empty after consuming all values, len=%d", r.Len())
	}
}

func TestRingSizeValidation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("non-power-of-two size must panic")
		}
	}()
	NewRing[int](12)
}
