// Package kafka publishes and consumes account events.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/kryva/kryva/internal/model"
)

// --------------- Producer ---------------

// Producer wraps a kafka.Writer that routes by the topic set on each message.
type Producer struct {
	w *kafka.Writer
}

func NewProducer(brokers string) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:     kafka.TCP(Brokers(brokers)...),
			Balancer: &kafka.Hash{},
		},
	}
}

// Publish sends a single message. Messages with the same key land on the
// same partition.
func (p *Producer) Publish(ctx context.Context, topic string, key, value []byte) error {
	return p.w.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error { return p.w.Close() }

// Brokers splits a comma separated broker list.
func Brokers(s string) []string {
	var out []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// --------------- Consumer ---------------

const ConsumerGroup = "kryva-preferences"

// ProfileUpdater applies a partial update to a profile document.
type ProfileUpdater interface {
	Update(ctx context.Context, key string, fields map[string]any) error
}

var ErrBadPayload = errors.New("bad account.deleted payload")

// HandleAccountDeleted re-asserts the soft-delete marker for the user named
// in the event. Applying it twice has the same result.
func HandleAccountDeleted(ctx context.Context, value []byte, profiles ProfileUpdater) error {
	var e model.AccountDeleted
	if err := json.Unmarshal(value, &e); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if e.UserID == "" {
		return fmt.Errorf("%w: missing user_id", ErrBadPayload)
	}
	return profiles.Update(ctx, e.UserID, model.DeletionMarker(e.DeletedAt.UTC()))
}

// StartAccountDeletedConsumer listens on account.deleted until ctx is done.
func StartAccountDeletedConsumer(ctx context.Context, brokers string, profiles ProfileUpdater, log *zap.Logger) {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: Brokers(brokers),
		Topic:   model.TopicAccountDeleted,
		GroupID: ConsumerGroup,
	})
	defer r.Close()

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() == nil {
				log.Error("account.deleted read failed", zap.Error(err))
			}
			return
		}

		if err := HandleAccountDeleted(ctx, m.Value, profiles); err != nil {
			log.Warn("account.deleted handling failed",
				zap.String("key", string(m.Key)),
				zap.Int64("offset", m.Offset),
				zap.Error(err),
			)
		}
	}
}
