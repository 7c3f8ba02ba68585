package sequence

import (
	"sync"
	"testing"
)

func TestSequencerNextIsMonotonic(t *testing.T) {
	s := New(0)
	for want := uint64(1); want <= 100; want++ {
		if got := s.Next(); got != want {
			t.Fatalf("Next() = %d, want %d", got, want)
		}
	}
	if got := s.Current(); got != 100 {
		t.Fatalf("Current() = %d, want 100", got)
	}
}

func TestSequencerAdvanceNeverRewinds(t *testing.T) {
	s := New(0)
	s.Advance(10)
	if got := s.Current(); got != 10 {
		t.Fatalf("Current() after Advance(10) = %d, want 10", got)
	}
	s.Advance(3)
	if got := s.Current(); got != 10 {
		t.Fatalf("Advance(3) rewound the sequencer to %d", got)
	}
	if got := s.Next(); got != 11 {
		t.Fatalf("Next() after replay = %d, want 11", got)
	}
}

func TestSequencerConcurrentNextIsUnique(t *testing.T) {
	const (
		workers = 8
		each    = 1000
	)
	s := New(0)
	seen := make([]bool, workers*each+1)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				id := s.Next()
				mu.Lock()
				if id == 0 || int(id) >= len(seen) || seen[id] {
					mu.Unlock()
					t.Errorf("duplicate or out-of-range id %d", id)
					return
				}
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if got := s.Current(); got != workers*each {
		t.Fatalf("Current() = %d, want %d", got, workers*each)
	}
}
