// Package broadcaster drains the delivery outbox into Kafka. It is the
// only component allowed to move an entry past the NEW state.
package broadcaster

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	"spool/infra/outbox"
)

type Broadcaster struct {
	outbox   *outbox.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
}

// Event is the published wire form of one delivered entry.
type Event struct {
	V       int    `json:"v"`
	Seq     uint64 `json:"seq"`
	Payload []byte `json:"payload"`
}

func New(ob *outbox.Outbox, brokers []string, topic string, interval time.Duration) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	return &Broadcaster{
		outbox:   ob,
		producer: producer,
		topic:    topic,
		interval: interval,
	}, nil
}

// Run loops until ctx is cancelled, replaying undelivered entries on
// every tick.
func (b *Broadcaster) Run(ctx context.Context) {
	log.Println("[broadcaster] started")

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[broadcaster] stopped")
			return
		case <-ticker.C:
			b.replayOnce()
		}
	}
}

// replayOnce walks NEW entries, marking each SENT before the produce
// and ACKED after. A failed produce leaves the entry SENT; the next
// pass picks it up again.
func (b *Broadcaster) replayOnce() {
	for _, state := range []outbox.State{outbox.StateNew, outbox.StateSent} {
		_ = b.outbox.ScanByState(state, func(seq uint64, rec outbox.Record) error {
			return b.deliver(seq, rec)
		})
	}
}

func (b *Broadcaster) deliver(seq uint64, rec outbox.Record) error {
	if err := b.outbox.MarkSent(seq); err != nil {
		return err
	}

	payload, err := json.Marshal(Event{V: 1, Seq: seq, Payload: rec.Payload})
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: b.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(seq, 10)),
		Value: sarama.ByteEncoder(payload),
	}
	if _, _, err := b.producer.SendMessage(msg); err != nil {
		log.Printf("[broadcaster] deliver seq=%d failed: %v", seq, err)
		return nil // retry on the next pass
	}

	return b.outbox.MarkAcked(seq)
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
