package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainsmart/internal/telemetry/metrics"
	"github.com/2beens/trainsmart/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=events_mocks_test.go -package=events

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }

// KafkaPublisher writes events as JSON, keyed by user id so one user's events stay ordered.
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return newKafkaPublisher(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		BatchTimeout: 10 * time.Millisecond,
		Async:        true,
		Completion:   logFailedWrites,
	})
}

// logFailedWrites reports the batches an async writer could not deliver.
func logFailedWrites(messages []kafka.Message, err error) {
	if err == nil {
		return
	}
	log.Errorf("kafka: %d event(s) not delivered: %s", len(messages), err)
}

func newKafkaPublisher(writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event Event) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "events.kafka.publish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event [%s]: %w", event.Type, err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.UserID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
			{Key: "event-id", Value: []byte(event.ID)},
		},
	})
	if err != nil {
		return fmt.Errorf("write event [%s]: %w", event.Type, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

const defaultRecordTimeout = 500 * time.Millisecond

// Recorder is what the repository functions use. Publishing is best effort:
// a failed publish is logged and counted, never surfaced to the caller.
// Record runs on the request path, so it waits at most timeout.
type Recorder struct {
	publisher      Publisher
	metricsManager *metrics.Manager
	timeout        time.Duration
}

func NewRecorder(publisher Publisher, metricsManager *metrics.Manager) *Recorder {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Recorder{
		publisher:      publisher,
		metricsManager: metricsManager,
		timeout:        defaultRecordTimeout,
	}
}

func (r *Recorder) Record(ctx context.Context, event Event) {
	if r == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	err := r.publisher.Publish(ctx, event)
	r.metricsManager.PublishedEvent(event.Type.String(), err)
	if err != nil {
		log.Errorf("publish event [%s] for user [%s]: %s", event.Type, event.UserID, err)
	}
}
