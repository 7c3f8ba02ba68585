package sequence

import "sync/atomic"

// Sequencer hands out the strictly monotonic IDs that tag journal
// records and spool entries. IDs start at 1; the journal reserves 0 as
// "unassigned".
type Sequencer struct {
	last atomic.Uint64
}

// New creates a sequencer whose first Next returns start+1.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.last.Store(start)
	return s
}

// Next issues the next sequence ID.
func (s *Sequencer) Next() uint64 {
	return s.last.Add(1)
}

// Current returns the last issued sequence.
func (s *Sequencer) Current() uint64 {
	return s.last.Load()
}

// Advance moves the sequencer forward to v. Replay calls this with the
// highest sequence it observed; a lower v is ignored, so numbering can
// never rewind no matter what order the journal records arrive in.
func (s *Sequencer) Advance(v uint64) {
	for {
		cur := s.last.Load()
		if v <= cur || s.last.CompareAndSwap(cur, v) {
			return
		}
	}
}
