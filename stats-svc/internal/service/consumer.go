package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"desi-beats/stats-svc/internal/domain"
)

// readBackoff spaces out retries while the broker is unreachable.
const readBackoff = time.Second

type Consumer struct {
	Reader MessageReader
	Store  StatsStore
	now    func() time.Time
}

func NewConsumer(reader MessageReader, store StatsStore) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		now:    time.Now,
	}
}

// Start reads order events until ctx is cancelled. Broken payloads and store
// failures are logged and the message is skipped.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("[stats-svc] starting order events consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				log.Println("[stats-svc] consumer stopped")
				return
			}
			log.Printf("[stats-svc] error reading message: %v", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(readBackoff):
			}
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[stats-svc] error unmarshaling message at offset %d: %v", message.Offset, err)
			continue
		}

		if err := c.ProcessEvent(ctx, event); err != nil {
			log.Printf("[stats-svc] failed to record %s for order %s: %v", event.Type, event.OrderID, err)
		}
	}
}

// ProcessEvent folds one order event into the daily counters. Unknown event
// types are ignored.
func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) error {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	day := event.Day(now())

	switch event.Type {
	case domain.EventOrderCreated:
		return c.Store.RecordOrderCreated(ctx, day, event.DeliveryType, event.TotalAmount)
	case domain.EventOrderStatusChanged:
		if event.Status == "" {
			return errors.New("status change without a status")
		}
		return c.Store.RecordStatusChange(ctx, day, event.Status)
	default:
		return nil
	}
}
