package wal

import (
	"encoding/binary"
	"errors"

	"google.golang.org/protobuf/proto"

	"spool/infra/wal/walpb"
)

// ErrCorruptRecord is returned when a payload fails structural checks.
var ErrCorruptRecord = errors.New("wal: corrupted record")

// Serializer converts records to and from frame payloads. Frame
// integrity (length + CRC) is the writer's job, not the serializer's.
type Serializer interface {
	Encode(*Record) ([]byte, error)
	Decode([]byte) (*Record, error)
}

// BinarySerializer is the fixed-layout encoding:
// [type:1][seq:8][time:8][len:4][data].
type BinarySerializer struct{}

func (BinarySerializer) Encode(rec *Record) ([]byte, error) {
	buf := make([]byte, 21+len(rec.Data))
	buf[0] = byte(rec.Type)
	binary.LittleEndian.PutUint64(buf[1:9], rec.Seq)
	binary.LittleEndian.PutUint64(buf[9:17], uint64(rec.Time))
	binary.LittleEndian.PutUint32(buf[17:21], uint32(len(rec.Data)))
	copy(buf[21:], rec.Data)
	return buf, nil
}

func (BinarySerializer) Decode(b []byte) (*Record, error) {
	if len(b) < 21 {
		return nil, ErrCorruptRecord
	}
	n := binary.LittleEndian.Uint32(b[17:21])
	if len(b) != 21+int(n) {
		return nil, ErrCorruptRecord
	}
	return &Record{
		Type: RecordType(b[0]),
		Seq:  binary.LittleEndian.Uint64(b[1:9]),
		Time: int64(binary.LittleEndian.Uint64(b[9:17])),
		Data: append([]byte(nil), b[21:]...),
	}, nil
}

// ProtoSerializer encodes records as walpb.Record messages. It is the
// default: the wire form stays readable by other tooling and survives
// field additions.
type ProtoSerializer struct{}

func (ProtoSerializer) Encode(rec *Record) ([]byte, error) {
	return proto.Marshal(&walpb.Record{
		Type: uint32(rec.Type),
		Seq:  rec.Seq,
		Time: rec.Time,
		Data: rec.Data,
	})
}

func (ProtoSerializer) Decode(b []byte) (*Record, error) {
	var p walpb.Record
	if err := proto.Unmarshal(b, &p); err != nil {
		return nil, ErrCorruptRecord
	}
	return &Record{
		Type: RecordType(p.Type),
		Seq:  p.Seq,
		Time: p.Time,
		Data: p.Data,
	}, nil
}
