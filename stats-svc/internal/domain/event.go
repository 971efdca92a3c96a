package domain

import "time"

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

// OrderEvent is the payload menu-svc publishes on the orders topic.
type OrderEvent struct {
	Type           string    `json:"type"`
	OrderID        string    `json:"orderId"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	DeliveryType   string    `json:"deliveryType,omitempty"`
	TotalAmount    float64   `json:"totalAmount,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// Day is the UTC calendar date the event counts towards.
func (e OrderEvent) Day(now time.Time) string {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = now
	}
	return ts.UTC().Format("2006-01-02")
}
