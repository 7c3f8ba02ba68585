package service

import (
	"fmt"
	"log"
	"sort"

	"spool/infra/wal"
)

// replay rebuilds the spool from the journal. Pushes and pops pair up
// by sequence, never by file position: a pop and its push are journaled
// by different goroutines, so the pop record can land first. The
// surviving set is exactly the sequences pushed but never popped; they
// are restored oldest-first, which reproduces the LIFO order the spool
// had at shutdown. The sequencer resumes past the highest sequence ever
// issued.
func (s *SpoolService) replay() error {
	pending := make(map[uint64][]byte)
	popped := make(map[uint64]struct{})
	var maxSeq uint64
	err := s.journal.Replay(0, func(rec *wal.Record) {
		switch rec.Type {
		case wal.RecordPush:
			pending[rec.Seq] = append([]byte(nil), rec.Data...)
		case wal.RecordPop:
			popped[rec.Seq] = struct{}{}
		}
		if rec.Seq > maxSeq {
			maxSeq = rec.Seq
		}
	})
	if err != nil {
		return err
	}
	for q := range popped {
		delete(pending, q)
	}

	seqs := make([]uint64, 0, len(pending))
	for q := range pending {
		seqs = append(seqs, q)
	}
	sort.Slice(seqs, func(i, j int) bool { return seqs[i] < seqs[j] })
	for _, q := range seqs {
		if err := s.spool.Push(Entry{Seq: q, Payload: pending[q]}); err != nil {
			return fmt.Errorf("restore entry seq=%d: %w", q, err)
		}
	}

	s.seq.Advance(maxSeq)
	if len(seqs) > 0 {
		log.Printf("[service] restored %d entries from journal, resuming at seq %d", len(seqs), maxSeq)
	}
	return nil
}
