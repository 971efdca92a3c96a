package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"desi-beats/stats-svc/internal/domain"
	"desi-beats/stats-svc/internal/mocks"
	"desi-beats/stats-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var eventTime = time.Date(2026, 5, 1, 21, 30, 0, 0, time.UTC)

func TestConsumer_ProcessEvent(t *testing.T) {
	tests := []struct {
		name           string
		event          domain.OrderEvent
		setupMockStore func(*mocks.StatsStore)
		wantErr        bool
	}{
		{
			name: "order created",
			event: domain.OrderEvent{
				Type:         domain.EventOrderCreated,
				OrderID:      "o1",
				Status:       "pending",
				DeliveryType: "delivery",
				TotalAmount:  2450.5,
				Timestamp:    eventTime,
			},
			setupMockStore: func(m *mocks.StatsStore) {
				m.On("RecordOrderCreated", mock.Anything, "2026-05-01", "delivery", 2450.5).Return(nil).Once()
			},
		},
		{
			name: "status changed",
			event: domain.OrderEvent{
				Type:           domain.EventOrderStatusChanged,
				OrderID:        "o1",
				Status:         "completed",
				PreviousStatus: "pending",
				Timestamp:      eventTime,
			},
			setupMockStore: func(m *mocks.StatsStore) {
				m.On("RecordStatusChange", mock.Anything, "2026-05-01", "completed").Return(nil).Once()
			},
		},
		{
			name: "timestamp in another zone counts on the UTC day",
			event: domain.OrderEvent{
				Type:         domain.EventOrderCreated,
				DeliveryType: "pickup",
				TotalAmount:  100,
				Timestamp:    time.Date(2026, 5, 2, 3, 0, 0, 0, time.FixedZone("PKT", 5*3600)),
			},
			setupMockStore: func(m *mocks.StatsStore) {
				m.On("RecordOrderCreated", mock.Anything, "2026-05-01", "pickup", 100.0).Return(nil).Once()
			},
		},
		{
			name:  "redis error",
			event: domain.OrderEvent{Type: domain.EventOrderStatusChanged, Status: "ready", Timestamp: eventTime},
			setupMockStore: func(m *mocks.StatsStore) {
				m.On("RecordStatusChange", mock.Anything, "2026-05-01", "ready").Return(errors.New("redis error")).Once()
			},
			wantErr: true,
		},
		{
			name:           "status change without status",
			event:          domain.OrderEvent{Type: domain.EventOrderStatusChanged, Timestamp: eventTime},
			setupMockStore: func(m *mocks.StatsStore) {},
			wantErr:        true,
		},
		{
			name:           "unknown event type",
			event:          domain.OrderEvent{Type: "new_review", Timestamp: eventTime},
			setupMockStore: func(m *mocks.StatsStore) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStatsStore(t)
			testCase.setupMockStore(mockStore)

			consumer := service.NewConsumer(nil, mockStore)
			err := consumer.ProcessEvent(context.Background(), testCase.event)
			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConsumer_StartSkipsBadMessagesAndStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	created, _ := json.Marshal(domain.OrderEvent{
		Type:         domain.EventOrderCreated,
		OrderID:      "o1",
		DeliveryType: "pickup",
		TotalAmount:  900,
		Timestamp:    eventTime,
	})

	reader := mocks.NewMessageReader(t)
	store := mocks.NewStatsStore(t)
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: []byte("{not json")}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: created}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, context.Canceled).Run(func(mock.Arguments) { cancel() }).Once()
	store.On("RecordOrderCreated", mock.Anything, "2026-05-01", "pickup", 900.0).Return(nil).Once()

	done := make(chan struct{})
	go func() {
		service.NewConsumer(reader, store).Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not stop after cancel")
	}
}
