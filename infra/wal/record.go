package wal

type RecordType byte

const (
	RecordPush RecordType = 1
	RecordPop  RecordType = 2
)

// Record is one journaled spool operation. Data carries the pushed
// payload for RecordPush and is empty for RecordPop (the pop's seq is
// enough to replay it).
type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}
