package outbox

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultInterval  = 2 * time.Second
	DefaultBatchSize = 50
)

// Store is the outbox table as seen by the publisher.
type Store interface {
	Fetch(ctx context.Context, limit int) ([]Row, error)
	MarkPublished(ctx context.Context, id string) error
}

// Producer sends one message to a topic.
type Producer interface {
	Publish(ctx context.Context, topic string, key, value []byte) error
}

// Publisher polls the outbox table and publishes unpublished events.
type Publisher struct {
	store     Store
	producer  Producer
	log       *zap.Logger
	interval  time.Duration
	batchSize int
}

func NewPublisher(store Store, producer Producer, log *zap.Logger) *Publisher {
	return &Publisher{
		store:     store,
		producer:  producer,
		log:       log,
		interval:  DefaultInterval,
		batchSize: DefaultBatchSize,
	}
}

// Start begins the polling loop. It blocks until the context is cancelled.
func (p *Publisher) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.PublishBatch(ctx)
		}
	}
}

// PublishBatch relays one batch and returns how many rows were published.
// A row that fails to publish stays in the outbox for the next poll.
func (p *Publisher) PublishBatch(ctx context.Context) int {
	rows, err := p.store.Fetch(ctx, p.batchSize)
	if err != nil {
		p.log.Error("outbox query failed", zap.Error(err))
		return 0
	}

	published := 0
	for _, row := range rows {
		if err := p.producer.Publish(ctx, row.Topic, []byte(row.Key), row.Payload); err != nil {
			p.log.Warn("kafka publish failed", zap.String("outbox_id", row.ID), zap.String("topic", row.Topic), zap.Error(err))
			continue
		}

		if err := p.store.MarkPublished(ctx, row.ID); err != nil {
			p.log.Error("outbox mark published failed", zap.String("outbox_id", row.ID), zap.Error(err))
			continue
		}
		published++
	}
	return published
}
