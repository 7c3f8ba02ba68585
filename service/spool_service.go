package service

import (
	"fmt"
	"log"
	"sync"
	"time"

	"spool/domain/stack"
	"spool/infra/memory"
	"spool/infra/outbox"
	"spool/infra/sequence"
	"spool/infra/wal"
)

// Config tunes the service plumbing. Zero values pick sane defaults.
type Config struct {
	// RingSize is the capacity of the popped-entry handoff ring between
	// the hot path and the outbox drainer. Must be a power of two.
	RingSize uint64
	// DrainInterval paces the outbox drainer.
	DrainInterval time.Duration
}

// SpoolService owns the spool and everything around it: sequencing,
// journaling, and handing popped entries to the outbox for delivery.
// Push and Pop are safe for concurrent use.
type SpoolService struct {
	cfg     Config
	spool   Spool
	seq     *sequence.Sequencer
	journal *wal.WAL
	ob      *outbox.Outbox
	ring    *memory.Ring[Entry]
	ringMu  sync.Mutex // the ring is single-producer; pops are not
	recs    *memory.Pool[wal.Record]

	stop      chan struct{}
	drainerWG sync.WaitGroup
	closeOnce sync.Once
}

// NewSpoolService restores state from the journal, then starts the
// outbox drainer. The journal and outbox lifecycles stay with the
// caller; Close only quiesces the service's own goroutine.
func NewSpoolService(sp Spool, journal *wal.WAL, ob *outbox.Outbox, cfg Config) (*SpoolService, error) {
	if cfg.RingSize == 0 {
		cfg.RingSize = 1024
	}
	if cfg.DrainInterval == 0 {
		cfg.DrainInterval = 5 * time.Millisecond
	}
	s := &SpoolService{
		cfg:     cfg,
		spool:   sp,
		seq:     sequence.New(0),
		journal: journal,
		ob:      ob,
		ring:    memory.NewRing[Entry](cfg.RingSize),
		recs:    memory.NewPool(func() *wal.Record { return new(wal.Record) }),
		stop:    make(chan struct{}),
	}
	if err := s.replay(); err != nil {
		return nil, fmt.Errorf("journal replay: %w", err)
	}
	s.drainerWG.Add(1)
	go s.drainOutbox()
	return s, nil
}

// Push assigns the next sequence, puts the entry on the spool, and
// journals the intent. On a spool error (arena full) nothing is
// journaled and the spool is unchanged.
func (s *SpoolService) Push(payload []byte) (uint64, error) {
	seq := s.seq.Next()
	if err := s.spool.Push(Entry{Seq: seq, Payload: payload}); err != nil {
		return 0, err
	}
	rec := s.recs.Get()
	rec.Type, rec.Seq, rec.Time, rec.Data = wal.RecordPush, seq, time.Now().UnixNano(), payload
	err := s.journal.Append(rec)
	rec.Data = nil
	s.recs.Put(rec)
	if err != nil {
		return 0, fmt.Errorf("journal push seq=%d: %w", seq, err)
	}
	return seq, nil
}

// Pop removes the most recent entry, journals the removal under the
// popped entry's sequence, and queues the entry for outbox delivery.
// A false bool means the spool was empty. If the removal cannot be
// journaled the entry is returned with the error and is NOT queued for
// delivery: the journal still holds it as pending, so the next replay
// restores it, and delivering now would hand it out twice.
func (s *SpoolService) Pop() (Entry, bool, error) {
	e, ok, err := s.spool.Pop()
	if err != nil || !ok {
		return Entry{}, false, err
	}
	rec := s.recs.Get()
	rec.Type, rec.Seq, rec.Time, rec.Data = wal.RecordPop, e.Seq, time.Now().UnixNano(), nil
	err = s.journal.Append(rec)
	s.recs.Put(rec)
	if err != nil {
		return e, true, fmt.Errorf("journal pop seq=%d: %w", e.Seq, err)
	}
	s.ringMu.Lock()
	queued := s.ring.Enqueue(e)
	s.ringMu.Unlock()
	if !queued {
		// Handoff ring is full; write through to the outbox directly.
		if err := s.ob.PutNew(e.Seq, e.Payload); err != nil {
			return e, true, fmt.Errorf("outbox put seq=%d: %w", e.Seq, err)
		}
	}
	return e, true, nil
}

// Depth reports the current element count.
func (s *SpoolService) Depth() uint64 {
	return s.spool.Depth()
}

// Stats snapshots the spool's lifetime counters.
func (s *SpoolService) Stats() stack.Stats {
	return s.spool.Stats()
}

// Close stops the drainer, flushes the handoff ring, frees every node
// still on the spool, and syncs the journal. Unpopped entries stay in
// the journal and come back on the next replay.
func (s *SpoolService) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.stop)
		s.drainerWG.Wait()
		s.spool.Drain(nil)
		err = s.journal.Sync()
	})
	return err
}

func (s *SpoolService) drainOutbox() {
	defer s.drainerWG.Done()
	ticker := time.NewTicker(s.cfg.DrainInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			s.flushRing()
			return
		case <-ticker.C:
			s.flushRing()
		}
	}
}

func (s *SpoolService) flushRing() {
	for {
		e, ok := s.ring.Dequeue()
		if !ok {
			return
		}
		if err := s.ob.PutNew(e.Seq, e.Payload); err != nil {
			log.Printf("[service] outbox put seq=%d: %v", e.Seq, err)
		}
	}
}
