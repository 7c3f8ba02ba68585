package wal

import (
	"bufio"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"io"
	"os"
)

// Reader iterates the frames of one journal segment.
type Reader struct {
	file   *os.File
	reader *bufio.Reader
	ser    Serializer
	rec    *Record
	err    error
}

// OpenReader opens a segment file for sequential replay.
func OpenReader(path string, ser Serializer) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		file:   f,
		reader: bufio.NewReader(f),
		ser:    ser,
	}, nil
}

// Next advances to the following record. It returns false at the end of
// the segment or on the first corrupt frame; Err distinguishes the two.
func (r *Reader) Next() bool {
	var header [frameHeaderSize]byte
	if _, err := io.ReadFull(r.reader, header[:]); err != nil {
		if err != io.EOF && !errors.Is(err, io.ErrUnexpectedEOF) {
			r.err = err
		}
		return false
	}
	payload := make([]byte, binary.LittleEndian.Uint32(header[:4]))
	if _, err := io.ReadFull(r.reader, payload); err != nil {
		r.err = err
		return false
	}
	if crc32.ChecksumIEEE(payload) != binary.LittleEndian.Uint32(header[4:]) {
		r.err = ErrCorruptRecord
		return false
	}
	rec, err := r.ser.Decode(payload)
	if err != nil {
		r.err = err
		return false
	}
	r.rec = rec
	return true
}

// Record returns the record read by the last successful Next.
func (r *Reader) Record() *Record {
	return r.rec
}

// Err returns the first error encountered, nil on a clean end.
func (r *Reader) Err() error {
	return r.err
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
