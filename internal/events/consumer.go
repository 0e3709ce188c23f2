package events

import (
	"context"
	"encoding/json"
	"time"

	"aroma-storefront/internal/domain"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type StatsStore interface {
	Apply(ctx context.Context, event domain.StorefrontEvent) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, event domain.StorefrontEvent) error
}

var _ ConsumerInterface = (*Consumer)(nil)

const DefaultReadBackoff = time.Second

// Consumer folds storefront events from Kafka into daily counters.
type Consumer struct {
	Reader  MessageReader
	Store   StatsStore
	Logger  *zap.Logger
	Backoff time.Duration
}

func NewConsumer(reader MessageReader, store StatsStore, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{Reader: reader, Store: store, Logger: logger, Backoff: DefaultReadBackoff}
}

// Start reads until ctx is cancelled. Bad messages are logged and skipped;
// a failed read waits Backoff before the next attempt.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info("starting storefront events consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Logger.Info("storefront events consumer stopped")
				return
			}
			c.Logger.Warn("failed to read message", zap.Duration("backoff", c.Backoff), zap.Error(err))
			select {
			case <-ctx.Done():
				c.Logger.Info("storefront events consumer stopped")
				return
			case <-time.After(c.Backoff):
			}
			continue
		}

		var event domain.StorefrontEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Logger.Warn("failed to decode event", zap.Int64("offset", message.Offset), zap.Error(err))
			continue
		}

		if err := c.ProcessEvent(ctx, event); err != nil {
			c.Logger.Error("failed to apply event",
				zap.String("event_id", event.ID),
				zap.String("type", event.Type),
				zap.Error(err),
			)
		}
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.StorefrontEvent) error {
	switch event.Type {
	case domain.EventOrderSubmitted, domain.EventOrderFailed, domain.EventMenuFallback:
	default:
		c.Logger.Debug("ignoring event", zap.String("type", event.Type))
		return nil
	}
	if err := c.Store.Apply(ctx, event); err != nil {
		return err
	}
	c.Logger.Debug("event applied", zap.String("event_id", event.ID), zap.String("type", event.Type))
	return nil
}
