// Package wal implements the spool's append-only operation journal.
// Every push and pop is framed with a CRC and written to segmented
// files; replaying the segments in sequence order rebuilds the exact
// stack contents after a restart. Segments rotate by size or age and
// are tracked in a JSONL index.
package wal
