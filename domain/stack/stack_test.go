package stack

import (
	"sync"
	"sync/atomic"
	"testing"
	"unsafe"
)

func newTestStack(t *testing.T, capacity int) (*Stack[int], *Guard) {
	t.Helper()
	s := New[int](NewRegistry(capacity))
	g, err := s.Registry().Acquire()
	if err != nil {
		t.Fatalf("acquire guard: %v", err)
	}
	t.Cleanup(g.Release)
	return s, g
}

func TestStackLIFOOrder(t *testing.T) {
	s, g := newTestStack(t, 4)

	s.Push(1)
	s.Push(2)
	s.Push(3)

	for _, want := range []int{3, 2, 1} {
		v, ok := s.Pop(g)
		if !ok {
			t.Fatalf("pop: stack unexpectedly empty, want %d", want)
		}
		if v != want {
			t.Fatalf("pop order: got %d, want %d", v, want)
		}
	}
	if _, ok := s.Pop(g); ok {
		t.Fatal("stack should be empty after three pops")
	}
}

func TestStackEmptyPop(t *testing.T) {
	s, g := newTestStack(t, 4)

	for i := 0; i < 10; i++ {
		if v, ok := s.Pop(g); ok {
			t.Fatalf("empty pop returned value %d", v)
		}
	}

	// Empty pops must stay harmless under concurrency.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pg, err := s.Registry().Acquire()
			if err != nil {
				t.Errorf("acquire: %v", err)
				return
			}
			defer pg.Release()
			for j := 0; j < 1000; j++ {
				if _, ok := s.Pop(pg); ok {
					t.Error("pop on empty stack returned a value")
					return
				}
			}
		}()
	}
	wg.Wait()

	s.Push(7)
	if v, ok := s.Pop(g); !ok || v != 7 {
		t.Fatalf("stack corrupted by empty pops: got (%d, %v)", v, ok)
	}
}

func TestStackConcurrentPushPop(t *testing.T) {
	const (
		pushers = 8
		poppers = 8
		perG    = 2000
		total   = pushers * perG
	)
	s := New[int](NewRegistry(pushers + poppers))

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
				s.Push(base + i)
			}
		}(p * perG)
	}

	for p := 0; p < poppers; p++ {
		popped.Add(1)
		go func() {
			defer popped.Done()
			g, err := s.Registry().Acquire()
			if err != nil {
				t.Errorf("acquire: %v", err)
				return
			}
			defer g.Release()
			for count.Load() < total {
				v, ok := s.Pop(g)
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
	if d := s.Depth(); d != 0 {
		t.Fatalf("depth after full drain: got %d, want 0", d)
	}
}

func TestStackReclamationComplete(t *testing.T) {
	const (
		workers = 4
		perG    = 5000
	)
	s := New[int](NewRegistry(workers))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			g, err := s.Registry().Acquire()
			if err != nil {
				t.Errorf("acquire: %v", err)
				return
			}
			defer g.Release()
			for i := 0; i < perG; i++ {
				if (seed+i)%3 == 0 {
					s.Pop(g)
				} else {
					s.Push(seed + i)
				}
			}
		}(w)
	}
	wg.Wait()

	s.Drain(nil)

	st := s.Stats()
	if st.Allocated != st.Reclaimed {
		t.Fatalf("node leak: allocated %d, reclaimed %d (deferred %d)",
			st.Allocated, st.Reclaimed, st.Deferred)
	}
	if st.Depth != 0 {
		t.Fatalf("depth after drain: got %d, want 0", st.Depth)
	}
}

func TestStackDrainCallback(t *testing.T) {
	s, _ := newTestStack(t, 2)
	for i := 1; i <= 5; i++ {
		s.Push(i)
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
}

func TestStackDeferredReclaim(t *testing.T) {
	reg := NewRegistry(2)
	s := New[int](reg)

	g, err := reg.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	defer g.Release()
	pinner, err := reg.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	defer pinner.Release()

	s.Push(1)

	// Simulate a popper paused mid-pop with the head pinned.
	pinner.protect(unsafe.Pointer(s.head.Load()))

	if v, ok := s.Pop(g); !ok || v != 1 {
		t.Fatalf("pop: got (%d, %v)", v, ok)
	}
	st := s.Stats()
	if st.Deferred != 1 {
		t.Fatalf("pinned node should be deferred: deferrals %d", st.Deferred)
	}
	if st.Reclaimed != 0 {
		t.Fatalf("pinned node reclaimed too early: reclaimed %d", st.Reclaimed)
	}

	// Unpin; the next pop's sweep must free it.
	pinner.clear()
	s.Push(2)
	if _, ok := s.Pop(g); !ok {
		t.Fatal("pop after unpin failed")
	}

	st = s.Stats()
	if st.Allocated != st.Reclaimed {
		t.Fatalf("deferred node never reclaimed: allocated %d, reclaimed %d",
			st.Allocated, st.Reclaimed)
	}
}
