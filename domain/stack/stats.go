package stack

// Stats is a point-in-time snapshot of a stack's lifetime counters.
// Allocated counts node lifecycles started and Reclaimed lifecycles
// ended; after a quiesced Drain the two must match.
type Stats struct {
	Depth     uint64
	Pushes    uint64
	Pops      uint64
	Allocated uint64
	Reclaimed uint64
	Deferred  uint64
}
