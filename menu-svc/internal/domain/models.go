package domain

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	// ErrInvalidImage is returned when an upload cannot be decoded as an image.
	ErrInvalidImage = errors.New("invalid image")
)

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"required,slug"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Order       int    `json:"order" validate:"gte=0"`
}

type MenuItem struct {
	ID          string  `json:"id"`
	CategoryID  string  `json:"categoryId" validate:"required"`
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"gt=0"`
	Image       string  `json:"image,omitempty"`
	Available   bool    `json:"available"`
	Featured    bool    `json:"featured"`
	Order       int     `json:"order" validate:"gte=0"`
}

// CategoryPatch carries the fields of a partial category update; nil
// fields are left untouched.
type CategoryPatch struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Order       *int    `json:"order"`
}

func (p CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Slug != nil {
		c.Slug = *p.Slug
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Image != nil {
		c.Image = *p.Image
	}
	if p.Order != nil {
		c.Order = *p.Order
	}
}

type MenuItemPatch struct {
	CategoryID  *string  `json:"categoryId"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Available   *bool    `json:"available"`
	Featured    *bool    `json:"featured"`
	Order       *int     `json:"order"`
}

func (p MenuItemPatch) Apply(m *MenuItem) {
	if p.CategoryID != nil {
		m.CategoryID = *p.CategoryID
	}
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.Image != nil {
		m.Image = *p.Image
	}
	if p.Available != nil {
		m.Available = *p.Available
	}
	if p.Featured != nil {
		m.Featured = *p.Featured
	}
	if p.Order != nil {
		m.Order = *p.Order
	}
}

// MenuItemFilter narrows ListMenuItems. CategoryID takes precedence over
// FeaturedOnly when both are set.
type MenuItemFilter struct {
	CategoryID   string
	FeaturedOnly bool
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var Statuses = []Status{StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

// Order is immutable after creation except for Status. Items holds the JSON
// snapshot of the cart lines taken at checkout.
type Order struct {
	ID              string       `json:"id" bson:"_id"`
	CustomerName    string       `json:"customerName" bson:"customerName" validate:"required,min=2,max=100"`
	CustomerPhone   string       `json:"customerPhone" bson:"customerPhone" validate:"required,phone"`
	CustomerAddress string       `json:"customerAddress,omitempty" bson:"customerAddress,omitempty"`
	DeliveryType    DeliveryType `json:"deliveryType" bson:"deliveryType" validate:"required,oneof=delivery pickup"`
	TotalAmount     float64      `json:"totalAmount" bson:"totalAmount" validate:"gt=0"`
	Status          Status       `json:"status" bson:"status" validate:"omitempty,oneof=pending preparing ready completed cancelled"`
	Items           string       `json:"items" bson:"items" validate:"required"`
	CreatedAt       time.Time    `json:"createdAt" bson:"createdAt"`
}

// OrderLine is one element of Order.Items.
type OrderLine struct {
	MenuItem OrderLineItem `json:"menuItem"`
	Quantity int           `json:"quantity"`
}

type OrderLineItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"`
}

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

type OrderEvent struct {
	Type           string       `json:"type"`
	OrderID        string       `json:"orderId"`
	Status         Status       `json:"status"`
	PreviousStatus Status       `json:"previousStatus,omitempty"`
	DeliveryType   DeliveryType `json:"deliveryType,omitempty"`
	TotalAmount    float64      `json:"totalAmount,omitempty"`
	Timestamp      time.Time    `json:"timestamp"`
}

type DailyStats struct {
	Date     string           `json:"date"`
	Orders   int64            `json:"orders"`
	Revenue  float64          `json:"revenue"`
	Delivery int64            `json:"delivery"`
	Pickup   int64            `json:"pickup"`
	Statuses map[string]int64 `json:"statuses"`
}

type DashboardStats struct {
	Categories    int         `json:"categories"`
	MenuItems     int         `json:"menuItems"`
	Orders        int         `json:"orders"`
	PendingOrders int         `json:"pendingOrders"`
	Today         *DailyStats `json:"today,omitempty"`
}

type HeroSlide struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	BgGradient  string `json:"bgGradient"`
	ImageURL    string `json:"imageUrl"`
}

type HeroSliderConfig struct {
	Slides []HeroSlide `json:"slides"`
}

type ImageKitAuth struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
}
