package service

import (
	"bytes"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"spool/domain/stack"
	"spool/infra/outbox"
	"spool/infra/wal"
)

func strategies() map[string]func() Spool {
	return map[string]func() Spool{
		"hazard":  func() Spool { return NewHazardSpool(stack.NewRegistry(stack.DefaultRegistrySize)) },
		"counted": func() Spool { return NewCountedSpool(1 << 10) },
	}
}

func openInfra(t *testing.T, dir string) (*wal.WAL, *outbox.Outbox) {
	t.Helper()
	j, err := wal.Open(wal.Config{Dir: filepath.Join(dir, "journal")})
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	ob, err := outbox.Open(filepath.Join(dir, "outbox"))
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	return j, ob
}

func TestServicePushPopLIFO(t *testing.T) {
	for name, mk := range strategies() {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			j, ob := openInfra(t, dir)
			defer j.Close()
			defer ob.Close()

			svc, err := NewSpoolService(mk(), j, ob, Config{})
			if err != nil {
				t.Fatal(err)
			}
			defer svc.Close()

			payloads := [][]byte{[]byte("first"), []byte("second"), []byte("third")}
			for i, p := range payloads {
				seq, err := svc.Push(p)
				if err != nil {
					t.Fatalf("push %d: %v", i, err)
				}
				if seq != uint64(i+1) {
					t.Fatalf("push %d: seq = %d, want %d", i, seq, i+1)
				}
			}
			if d := svc.Depth(); d != 3 {
				t.Fatalf("depth = %d, want 3", d)
			}

			for i := 2; i >= 0; i-- {
				e, ok, err := svc.Pop()
				if err != nil || !ok {
					t.Fatalf("pop: ok=%v err=%v", ok, err)
				}
				if e.Seq != uint64(i+1) || !bytes.Equal(e.Payload, payloads[i]) {
					t.Fatalf("pop = seq %d %q, want seq %d %q", e.Seq, e.Payload, i+1, payloads[i])
				}
			}
			if _, ok, err := svc.Pop(); ok || err != nil {
				t.Fatalf("pop on empty: ok=%v err=%v", ok, err)
			}
		})
	}
}

func TestServiceRestartRestoresPending(t *testing.T) {
	for name, mk := range strategies() {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()

			j, ob := openInfra(t, dir)
			svc, err := NewSpoolService(mk(), j, ob, Config{})
			if err != nil {
				t.Fatal(err)
			}
			for _, p := range []string{"a", "b", "c"} {
				if _, err := svc.Push([]byte(p)); err != nil {
					t.Fatal(err)
				}
			}
			e, ok, err := svc.Pop()
			if err != nil || !ok || e.Seq != 3 {
				t.Fatalf("pop before restart: seq=%d ok=%v err=%v", e.Seq, ok, err)
			}
			if err := svc.Close(); err != nil {
				t.Fatal(err)
			}
			if err := j.Close(); err != nil {
				t.Fatal(err)
			}
			if err := ob.Close(); err != nil {
				t.Fatal(err)
			}

			j2, ob2 := openInfra(t, dir)
			defer j2.Close()
			defer ob2.Close()
			svc2, err := NewSpoolService(mk(), j2, ob2, Config{})
			if err != nil {
				t.Fatal(err)
			}
			defer svc2.Close()

			if d := svc2.Depth(); d != 2 {
				t.Fatalf("depth after restart = %d, want 2", d)
			}
			seq, err := svc2.Push([]byte("d"))
			if err != nil {
				t.Fatal(err)
			}
			if seq != 4 {
				t.Fatalf("seq after restart = %d, want 4", seq)
			}

			want := []struct {
				seq     uint64
				payload string
			}{{4, "d"}, {2, "b"}, {1, "a"}}
			for _, w := range want {
				e, ok, err := svc2.Pop()
				if err != nil || !ok {
					t.Fatalf("pop after restart: ok=%v err=%v", ok, err)
				}
				if e.Seq != w.seq || string(e.Payload) != w.payload {
					t.Fatalf("pop = seq %d %q, want seq %d %q", e.Seq, e.Payload, w.seq, w.payload)
				}
			}
		})
	}
}

func TestServiceReplayPairsRecordsBySeq(t *testing.T) {
	dir := t.TempDir()
	j, ob := openInfra(t, dir)
	defer j.Close()
	defer ob.Close()

	// A push and its pop are journaled by different goroutines, so the
	// pop record can land first. Replay must pair them by sequence, not
	// by file position, or the popped entry comes back from the dead.
	if err := j.Append(&wal.Record{Type: wal.RecordPop, Seq: 1}); err != nil {
		t.Fatal(err)
	}
	if err := j.Append(&wal.Record{Type: wal.RecordPush, Seq: 1, Data: []byte("raced")}); err != nil {
		t.Fatal(err)
	}
	if err := j.Sync(); err != nil {
		t.Fatal(err)
	}

	svc, err := NewSpoolService(NewCountedSpool(8), j, ob, Config{})
	if err != nil {
		t.Fatal(err)
	}
	defer svc.Close()

	if d := svc.Depth(); d != 0 {
		t.Fatalf("depth after replay = %d, want 0", d)
	}
	if _, ok, err := svc.Pop(); ok || err != nil {
		t.Fatalf("pop after replay: ok=%v err=%v", ok, err)
	}
	// Numbering resumes past the replayed records either way.
	seq, err := svc.Push([]byte("fresh"))
	if err != nil {
		t.Fatal(err)
	}
	if seq != 2 {
		t.Fatalf("seq after replay = %d, want 2", seq)
	}
}

func TestServiceConcurrentPopsAllReachOutbox(t *testing.T) {
	dir := t.TempDir()
	j, ob := openInfra(t, dir)
	defer j.Close()
	defer ob.Close()

	svc, err := NewSpoolService(NewCountedSpool(1<<10), j, ob, Config{DrainInterval: time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}

	const (
		total   = 400
		poppers = 8
	)
	for i := 0; i < total; i++ {
		if _, err := svc.Push([]byte("bulk")); err != nil {
			t.Fatal(err)
		}
	}

	seqCh := make(chan uint64, total)
	var wg sync.WaitGroup
	for w := 0; w < poppers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				e, ok, err := svc.Pop()
				if err != nil {
					t.Errorf("pop: %v", err)
					return
				}
				if !ok {
					return
				}
				seqCh <- e.Seq
			}
		}()
	}
	wg.Wait()
	close(seqCh)
	if err := svc.Close(); err != nil {
		t.Fatal(err)
	}

	popped := 0
	for seq := range seqCh {
		popped++
		rec, err := ob.Get(seq)
		if err != nil {
			t.Fatalf("popped entry %d never reached the outbox: %v", seq, err)
		}
		if rec.State != outbox.StateNew {
			t.Fatalf("entry %d state = %v, want NEW", seq, rec.State)
		}
	}
	if popped != total {
		t.Fatalf("popped %d entries, want %d", popped, total)
	}
}

func TestServicePoppedEntriesReachOutbox(t *testing.T) {
	dir := t.TempDir()
	j, ob := openInfra(t, dir)
	defer j.Close()
	defer ob.Close()

	svc, err := NewSpoolService(NewCountedSpool(64), j, ob, Config{DrainInterval: time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}
	defer svc.Close()

	seq, err := svc.Push([]byte("deliver me"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok, err := svc.Pop(); !ok || err != nil {
		t.Fatalf("pop: ok=%v err=%v", ok, err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		rec, err := ob.Get(seq)
		if err == nil {
			if rec.State != outbox.StateNew {
				t.Fatalf("outbox state = %v, want NEW", rec.State)
			}
			if string(rec.Payload) != "deliver me" {
				t.Fatalf("outbox payload = %q", rec.Payload)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("entry %d never reached the outbox: %v", seq, err)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestServicePushArenaFull(t *testing.T) {
	dir := t.TempDir()
	j, ob := openInfra(t, dir)
	defer j.Close()
	defer ob.Close()

	svc, err := NewSpoolService(NewCountedSpool(1), j, ob, Config{})
	if err != nil {
		t.Fatal(err)
	}
	defer svc.Close()

	if _, err := svc.Push([]byte("fits")); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Push([]byte("overflow")); !errors.Is(err, stack.ErrArenaFull) {
		t.Fatalf("err = %v, want ErrArenaFull", err)
	}

	// The rejected push must leave no trace: depth unchanged and nothing
	// extra in the journal after a restart.
	if d := svc.Depth(); d != 1 {
		t.Fatalf("depth = %d, want 1", d)
	}
}
