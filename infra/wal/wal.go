package wal

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	frameHeaderSize = 8 // length(4) + CRC(4)
	currentSegment  = "current.wal"
)

// Config defines configuration for a journal instance.
type Config struct {
	Dir             string
	SegmentSize     uint64
	SegmentDuration time.Duration
	Serializer      Serializer
	FlushInterval   time.Duration
}

// WAL is the spool's operation journal. Appends are serialized with a
// mutex: the journal sits behind the service layer, not on the
// lock-free hot path itself.
type WAL struct {
	cfg Config

	mu              sync.Mutex
	file            *os.File
	writer          *bufio.Writer
	seq             uint64
	segmentID       int
	segmentStartSeq uint64
	bytesWritten    uint64
	lastRotationAt  time.Time

	stopFlush chan struct{}
	flushDone sync.WaitGroup
}

// Open creates or recovers a journal in cfg.Dir, truncating any torn
// tail left by a crash.
func Open(cfg Config) (*WAL, error) {
	if cfg.Dir == "" {
		cfg.Dir = "./wal_data"
	}
	if cfg.SegmentSize == 0 {
		cfg.SegmentSize = 2 * 1024 * 1024
	}
	if cfg.SegmentDuration == 0 {
		cfg.SegmentDuration = 5 * time.Minute
	}
	if cfg.Serializer == nil {
		cfg.Serializer = ProtoSerializer{}
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}

	var segID int
	var seq uint64
	if last, _ := LoadLastIndex(cfg.Dir); last != nil {
		id, _ := strconv.Atoi(strings.TrimSuffix(last.File, ".wal"))
		segID = id
		seq = last.LastSeq
	}

	path := filepath.Join(cfg.Dir, currentSegment)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	w := &WAL{
		cfg:             cfg,
		file:            f,
		seq:             seq,
		segmentID:       segID,
		segmentStartSeq: seq + 1,
		lastRotationAt:  time.Now(),
		stopFlush:       make(chan struct{}),
	}

	if err := w.recoverCurrentState(); err != nil {
		f.Close()
		return nil, fmt.Errorf("recover journal: %w", err)
	}
	if _, err := w.file.Seek(0, io.SeekEnd); err != nil {
		f.Close()
		return nil, err
	}
	w.writer = bufio.NewWriterSize(f, 1<<20)

	if cfg.FlushInterval > 0 {
		w.flushDone.Add(1)
		go w.autoFlush()
	}
	return w, nil
}

// Append journals one record. The record's Seq must already be assigned
// (the sequencer owns numbering); a zero Seq gets the next internal one.
func (w *WAL) Append(rec *Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if rec.Seq == 0 {
		rec.Seq = w.seq + 1
	}
	data, err := w.cfg.Serializer.Encode(rec)
	if err != nil {
		return err
	}

	recordSize := frameHeaderSize + len(data)
	if w.shouldRotate(recordSize) {
		if err := w.rotate(); err != nil {
			return err
		}
	}

	w.seq = rec.Seq
	if err := writeFrame(w.writer, data); err != nil {
		return err
	}
	w.bytesWritten += uint64(recordSize)
	return nil
}

// Sync flushes buffered frames to stable storage.
func (w *WAL) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.syncLocked()
}

func (w *WAL) syncLocked() error {
	if err := w.writer.Flush(); err != nil {
		return err
	}
	return w.file.Sync()
}

// Close flushes, finalizes the current segment, and stops auto-flush.
func (w *WAL) Close() error {
	close(w.stopFlush)
	w.flushDone.Wait()

	w.mu.Lock()
	defer w.mu.Unlock()

	_ = w.writer.Flush()
	_ = w.file.Sync()
	_ = w.file.Close()

	if w.bytesWritten == 0 {
		return nil
	}

	newFile := fmt.Sprintf("%06d.wal", w.segmentID+1)
	oldPath := filepath.Join(w.cfg.Dir, currentSegment)
	if err := os.Rename(oldPath, filepath.Join(w.cfg.Dir, newFile)); err != nil {
		return err
	}
	return AppendIndexEntry(w.cfg.Dir, IndexEntry{
		File:      newFile,
		FirstSeq:  w.segmentStartSeq,
		LastSeq:   w.seq,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Replay applies every journaled record with Seq > fromSeq in order,
// walking indexed segments first and the live segment last.
func (w *WAL) Replay(fromSeq uint64, apply func(*Record)) error {
	index, err := LoadAllIndex(w.cfg.Dir)
	if err != nil {
		return fmt.Errorf("load journal index: %w", err)
	}
	sort.Slice(index, func(a, b int) bool {
		return index[a].FirstSeq < index[b].FirstSeq
	})

	for _, seg := range index {
		if seg.LastSeq <= fromSeq {
			continue
		}
		if err := w.replayFile(filepath.Join(w.cfg.Dir, seg.File), fromSeq, apply); err != nil {
			return err
		}
	}

	current := filepath.Join(w.cfg.Dir, currentSegment)
	if _, err := os.Stat(current); err == nil {
		return w.replayFile(current, fromSeq, apply)
	}
	return nil
}

// LastSeq returns the sequence of the most recently journaled record.
func (w *WAL) LastSeq() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.seq
}

func (w *WAL) replayFile(path string, fromSeq uint64, apply func(*Record)) error {
	r, err := OpenReader(path, w.cfg.Serializer)
	if err != nil {
		return err
	}
	defer r.Close()
	for r.Next() {
		rec := r.Record()
		if rec.Seq <= fromSeq {
			continue
		}
		apply(rec)
	}
	return r.Err()
}

func (w *WAL) autoFlush() {
	defer w.flushDone.Done()
	ticker := time.NewTicker(w.cfg.FlushInterval)
	defer ticker.Stop()
	for {
		select {
		case <-w.stopFlush:
			return
		case <-ticker.C:
			_ = w.Sync()
		}
	}
}

func (w *WAL) shouldRotate(nextSize int) bool {
	return w.bytesWritten+uint64(nextSize) >= w.cfg.SegmentSize ||
		time.Since(w.lastRotationAt) >= w.cfg.SegmentDuration
}

func (w *WAL) rotate() error {
	if err := w.syncLocked(); err != nil {
		return err
	}
	_ = w.file.Close()

	newID := w.segmentID + 1
	newFile := fmt.Sprintf("%06d.wal", newID)
	oldPath := filepath.Join(w.cfg.Dir, currentSegment)
	if err := os.Rename(oldPath, filepath.Join(w.cfg.Dir, newFile)); err != nil {
		return err
	}

	entry := IndexEntry{
		File:      newFile,
		FirstSeq:  w.segmentStartSeq,
		LastSeq:   w.seq,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if err := AppendIndexEntry(w.cfg.Dir, entry); err != nil {
		return err
	}

	f, err := os.OpenFile(oldPath, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	w.file = f
	w.writer = bufio.NewWriterSize(f, 1<<20)
	w.segmentID = newID
	w.segmentStartSeq = w.seq + 1
	w.bytesWritten = 0
	w.lastRotationAt = time.Now()

	log.Printf("[wal] rotated → %s (seq %d–%d)", newFile, entry.FirstSeq, entry.LastSeq)
	return nil
}

// recoverCurrentState scans the live segment, restoring seq from the
// last intact frame and truncating anything after the first torn or
// corrupt one.
func (w *WAL) recoverCurrentState() error {
	info, err := w.file.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		w.bytesWritten = 0
		return nil
	}

	path := filepath.Join(w.cfg.Dir, currentSegment)
	r, err := os.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	var (
		validBytes int64
		header     [frameHeaderSize]byte
	)
	for {
		if _, err := io.ReadFull(r, header[:]); err != nil {
			if err == io.EOF {
				break
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return w.truncateCurrent(validBytes)
			}
			return err
		}
		payloadLen := binary.LittleEndian.Uint32(header[:4])
		payload := make([]byte, payloadLen)
		if _, err := io.ReadFull(r, payload); err != nil {
			if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
				return w.truncateCurrent(validBytes)
			}
			return err
		}
		if crc32.ChecksumIEEE(payload) != binary.LittleEndian.Uint32(header[4:]) {
			return w.truncateCurrent(validBytes)
		}
		rec, err := w.cfg.Serializer.Decode(payload)
		if err != nil {
			return w.truncateCurrent(validBytes)
		}
		w.seq = rec.Seq
		validBytes += int64(frameHeaderSize + len(payload))
	}
	w.bytesWritten = uint64(validBytes)
	return nil
}

func (w *WAL) truncateCurrent(validBytes int64) error {
	if err := w.file.Truncate(validBytes); err != nil {
		return err
	}
	if _, err := w.file.Seek(validBytes, io.SeekStart); err != nil {
		return err
	}
	w.bytesWritten = uint64(validBytes)
	return nil
}

func writeFrame(wr io.Writer, payload []byte) error {
	var header [frameHeaderSize]byte
	binary.LittleEndian.PutUint32(header[:4], uint32(len(payload)))
	binary.LittleEndian.PutUint32(header[4:], crc32.ChecksumIEEE(payload))
	if _, err := wr.Write(header[:]); err != nil {
		return err
	}
	_, err := wr.Write(payload)
	return err
}
