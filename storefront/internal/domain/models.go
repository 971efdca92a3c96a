package domain

import "time"

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Order       int    `json:"order"`
}

type MenuItem struct {
	ID          string  `json:"id"`
	CategoryID  string  `json:"categoryId"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Available   bool    `json:"available"`
	Featured    bool    `json:"featured"`
	Order       int     `json:"order"`
}

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

const StatusPending = "pending"

// Order mirrors the API representation. Items is the JSON encoded list of
// OrderLine captured at checkout.
type Order struct {
	ID              string       `json:"id,omitempty"`
	CustomerName    string       `json:"customerName"`
	CustomerPhone   string       `json:"customerPhone"`
	CustomerAddress string       `json:"customerAddress,omitempty"`
	DeliveryType    DeliveryType `json:"deliveryType"`
	TotalAmount     float64      `json:"totalAmount"`
	Status          string       `json:"status"`
	Items           string       `json:"items"`
	CreatedAt       time.Time    `json:"createdAt,omitempty"`
}

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

// FieldError names one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
