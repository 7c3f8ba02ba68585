package stack

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestCountedLIFOOrder(t *testing.T) {
	s := NewCounted[int](16)

	for _, v := range []int{1, 2, 3} {
		if err := s.Push(v); err != nil {
			t.Fatalf("push %d: %v", v, err)
		}
	}
	for _, want := range []int{3, 2, 1} {
		v, ok := s.Pop()
		if !ok {
			t.Fatalf("pop: stack unexpectedly empty, want %d", want)
		}
		if v != want {
			t.Fatalf("pop order: got %d, want %d", v, want)
		}
	}
	if _, ok := s.Pop(); ok {
		t.Fatal("stack should be empty after three pops")
	}
}

func TestCountedEmptyPop(t *testing.T) {
	s := NewCounted[int](4)

	for i := 0; i < 10; i++ {
		if v, ok := s.Pop(); ok {
			t.Fatalf("empty pop returned value %d", v)
		}
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if _, ok := s.Pop(); ok {
					t.Error("pop on empty stack returned a value")
					return
				}
			}
		}()
	}
	wg.Wait()

	if err := s.Push(7); err != nil {
		t.Fatalf("push after empty pops: %v", err)
	}
	if v, ok := s.Pop(); !ok || v != 7 {
		t.Fatalf("stack corrupted by empty pops: got (%d, %v)", v, ok)
	}
}

func TestCountedArenaFull(t *testing.T) {
	s := NewCounted[int](2)

	if err := s.Push(1); err != nil {
		t.Fatal(err)
	}
	if err := s.Push(2); err != nil {
		t.Fatal(err)
	}
	if err := s.Push(3); err != ErrArenaFull {
		t.Fatalf("push into full arena: got %v, want ErrArenaFull", err)
	}

	// A failed push changes nothing.
	if v, ok := s.Pop(); !ok || v != 2 {
		t.Fatalf("pop after failed push: got (%d, %v), want (2, true)", v, ok)
	}
	if err := s.Push(3); err != nil {
		t.Fatalf("push after pop freed a node: %v", err)
	}
}

func TestCountedNodeReuse(t *testing.T) {
	s := NewCounted[int](1)

	for i := 0; i < 1000; i++ {
		if err := s.Push(i); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
		v, ok := s.Pop()
		if !ok || v != i {
			t.Fatalf("pop %d: got (%d, %v)", i, v, ok)
		}
	}
	if live := s.Live(); live != 0 {
		t.Fatalf("live nodes after reuse loop: got %d, want 0", live)
	}
}

func TestCountedConcurrentPushPop(t *testing.T) {
	const (
		pushers = 8
		poppers = 8
		perG    = 2000
		total   = pushers * perG
	)
	s := NewCounted[int](total)

	var (
		pushed sync.WaitGroup
		popped sync.WaitGroup
		count  atomic.Int64
		seen   = make([]atomic.Int32, total)
	)

	for p := 0; p < pushers; p++ {
		pushed.Add(1)
		go func(base int) {
			defer pushed.Done()
			for i := 0; i < perG; i++ {
				if err := s.Push(base + i); err != nil {
					t.Errorf("push: %v", err)
					return
				}
			}
		}(p * perG)
	}

	for p := 0; p < poppers; p++ {
		popped.Add(1)
		go func() {
			defer popped.Done()
			for count.Load() < total {
				v, ok := s.Pop()
				if !ok {
					continue
				}
				seen[v].Add(1)
				count.Add(1)
			}
		}()
	}

	pushed.Wait()
	popped.Wait()

	for v := range seen {
		if n := seen[v].Load(); n != 1 {
			t.Fatalf("value %d popped %d times, want exactly once", v, n)
		}
	}
	if live := s.Live(); live != 0 {
		t.Fatalf("live nodes after full drain: got %d, want 0", live)
	}
	st := s.Stats()
	if st.Allocated != st.Reclaimed {
		t.Fatalf("node leak: allocated %d, reclaimed %d", st.Allocated, st.Reclaimed)
	}
}

func TestCountedDrain(t *testing.T) {
	s := NewCounted[int](8)
	for i := 1; i <= 5; i++ {
		if err := s.Push(i); err != nil {
			t.Fatal(err)
		}
	}

	var got []int
	s.Drain(func(v int) { got = append(got, v) })

	want := []int{5, 4, 3, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("drained %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("drain order at %d: got %d, want %d", i, got[i], want[i])
		}
	}
	if live := s.Live(); live != 0 {
		t.Fatalf("live nodes after drain: got %d, want 0", live)
	}
}
