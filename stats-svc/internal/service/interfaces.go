package service

import (
	"context"

	"desi-beats/stats-svc/internal/domain"
	"desi-beats/stats-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StatsStore interface {
	RecordOrderCreated(ctx context.Context, date, deliveryType string, total float64) error
	RecordStatusChange(ctx context.Context, date, status string) error
}

// MessageReader is the part of *kafka.Reader the consumer uses.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, event domain.OrderEvent) error
}

var (
	_ StatsStore        = (*storage.RedisStatsStore)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
