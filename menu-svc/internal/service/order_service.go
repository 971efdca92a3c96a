package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"desi-beats/menu-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// totalTolerance is the largest accepted gap between a submitted
// totalAmount and the sum of its item snapshot.
var totalTolerance = decimal.New(1, -2)

type OrderService struct {
	repo      OrderRepository
	publisher OrderPublisher
	qrEncoder QRGenerator
	now       func() time.Time
}

func NewOrderService(repo OrderRepository, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, publisher: publisher, qrEncoder: qr, now: time.Now}
}

// Create validates a checkout submission and persists it. Status defaults to
// pending when none is supplied. The id and createdAt are assigned here; the
// items snapshot and total are stored exactly as submitted once they check out.
func (s *OrderService) Create(ctx context.Context, order *domain.Order) error {
	order.CustomerName = strings.TrimSpace(order.CustomerName)
	order.CustomerPhone = strings.TrimSpace(order.CustomerPhone)
	order.CustomerAddress = strings.TrimSpace(order.CustomerAddress)
	if err := checkStruct("Invalid order data", order); err != nil {
		return err
	}

	lines, err := ParseOrderLines(order.Items)
	if err != nil {
		return newValidationError("Invalid order data", FieldError{Field: "items", Message: "must be a JSON list of {menuItem, quantity}"})
	}
	if fields := checkLines(lines); len(fields) > 0 {
		return newValidationError("Invalid order data", fields...)
	}
	expected := LinesTotal(lines)
	if expected.Sub(decimal.NewFromFloat(order.TotalAmount)).Abs().GreaterThan(totalTolerance) {
		return newValidationError("Invalid order data", FieldError{
			Field:   "totalAmount",
			Message: "does not match items (expected " + expected.StringFixed(2) + ")",
		})
	}

	order.ID = uuid.NewString()
	if order.Status == "" {
		order.Status = domain.StatusPending
	}
	order.CreatedAt = s.now().UTC()
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return err
	}

	s.publish(ctx, domain.OrderEvent{
		Type:         domain.EventOrderCreated,
		OrderID:      order.ID,
		Status:       order.Status,
		DeliveryType: order.DeliveryType,
		TotalAmount:  order.TotalAmount,
		Timestamp:    order.CreatedAt,
	})
	return nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx)
}

// UpdateStatus moves an order to any of the known statuses. There is no
// transition table: an admin may jump from pending straight to completed or
// reopen a cancelled order.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	if !status.Valid() {
		return nil, newValidationError("Invalid status", FieldError{
			Field:   "status",
			Message: "must be one of: pending, preparing, ready, completed, cancelled",
		})
	}

	current, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.OrderEvent{
		Type:           domain.EventOrderStatusChanged,
		OrderID:        id,
		Status:         status,
		PreviousStatus: current.Status,
		DeliveryType:   updated.DeliveryType,
		Timestamp:      s.now().UTC(),
	})
	return updated, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	rows, err := s.repo.DeleteOrder(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *OrderService) QRCode(ctx context.Context, id string) ([]byte, error) {
	if _, err := s.repo.GetOrder(ctx, id); err != nil {
		return nil, err
	}
	if s.qrEncoder == nil {
		return nil, errors.New("qr generator not configured")
	}
	return s.qrEncoder.Generate(id)
}

func (s *OrderService) Receipt(ctx context.Context, id string) ([]byte, error) {
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	lines, err := ParseOrderLines(order.Items)
	if err != nil {
		log.Printf("[menu-svc] order %s has unreadable items: %v", id, err)
	}

	var qr []byte
	if s.qrEncoder != nil {
		if qr, err = s.qrEncoder.Generate(id); err != nil {
			log.Printf("[menu-svc] receipt qr for order %s: %v", id, err)
		}
	}
	return renderReceipt(order, lines, qr)
}

func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("[menu-svc] failed to publish %s for order %s: %v", event.Type, event.OrderID, err)
	}
}

// ParseOrderLines decodes the items snapshot of an order.
func ParseOrderLines(items string) ([]domain.OrderLine, error) {
	var lines []domain.OrderLine
	if err := json.Unmarshal([]byte(items), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// LinesTotal sums price times quantity over lines.
func LinesTotal(lines []domain.OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(decimal.NewFromFloat(l.MenuItem.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total.Round(2)
}

func checkLines(lines []domain.OrderLine) []FieldError {
	if len(lines) == 0 {
		return []FieldError{{Field: "items", Message: "must contain at least one item"}}
	}
	var fields []FieldError
	for i, l := range lines {
		prefix := "items[" + strconv.Itoa(i) + "]"
		if l.MenuItem.ID == "" || strings.TrimSpace(l.MenuItem.Name) == "" {
			fields = append(fields, FieldError{Field: prefix + ".menuItem", Message: "must have an id and a name"})
		}
		if l.MenuItem.Price <= 0 {
			fields = append(fields, FieldError{Field: prefix + ".menuItem.price", Message: "must be greater than 0"})
		}
		if l.Quantity < 1 {
			fields = append(fields, FieldError{Field: prefix + ".quantity", Message: "must be at least 1"})
		}
	}
	return fields
}

var _ OrderServiceInterface = (*OrderService)(nil)
