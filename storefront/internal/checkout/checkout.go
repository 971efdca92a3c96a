// Package checkout turns a cart into a submitted order.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"unicode"

	"desi-beats/storefront/internal/cart"
	"desi-beats/storefront/internal/domain"

	"github.com/go-playground/validator/v10"
)

type OrderCreator interface {
	CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
}

// Details is what the shopper enters at checkout.
type Details struct {
	CustomerName    string              `json:"customerName" validate:"required,min=2,max=100"`
	CustomerPhone   string              `json:"customerPhone" validate:"required,phone"`
	CustomerAddress string              `json:"customerAddress" validate:"required_if=DeliveryType delivery"`
	DeliveryType    domain.DeliveryType `json:"deliveryType" validate:"required,oneof=delivery pickup"`
}

type ValidationError struct {
	Fields []domain.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return "checkout: " + strings.Join(parts, "; ")
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		digits := 0
		for _, r := range fl.Field().String() {
			if unicode.IsDigit(r) {
				digits++
			}
		}
		return digits >= 10
	})
	if err != nil {
		panic("register phone validation: " + err.Error())
	}
	return v
}

func (d Details) check(c *cart.Cart) error {
	d.CustomerName = strings.TrimSpace(d.CustomerName)
	d.CustomerAddress = strings.TrimSpace(d.CustomerAddress)

	var fields []domain.FieldError
	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			fields = append(fields, domain.FieldError{Field: fe.Field(), Message: message(fe)})
		}
	}
	if c.IsEmpty() {
		fields = append(fields, domain.FieldError{Field: "items", Message: "cart is empty"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "phone":
		return "must contain at least 10 digits"
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return "is invalid"
}

// Submit validates details, snapshots the cart into an order and posts it.
// The cart is cleared only after the API accepted the order; on any error it
// is left as it was.
func Submit(ctx context.Context, api OrderCreator, c *cart.Cart, d Details) (*domain.Order, error) {
	if err := d.check(c); err != nil {
		return nil, err
	}

	lines := make([]domain.OrderLine, 0, len(c.Items()))
	for _, it := range c.Items() {
		lines = append(lines, domain.OrderLine{
			MenuItem: domain.OrderLineItem{
				ID:    it.MenuItem.ID,
				Name:  it.MenuItem.Name,
				Price: it.MenuItem.Price,
				Image: it.MenuItem.Image,
			},
			Quantity: it.Quantity,
		})
	}
	items, err := json.Marshal(lines)
	if err != nil {
		return nil, err
	}

	total, _ := c.TotalPrice().Float64()
	order := domain.Order{
		CustomerName:  strings.TrimSpace(d.CustomerName),
		CustomerPhone: strings.TrimSpace(d.CustomerPhone),
		DeliveryType:  d.DeliveryType,
		TotalAmount:   total,
		Status:        domain.StatusPending,
		Items:         string(items),
	}
	if d.DeliveryType == domain.DeliveryTypeDelivery {
		order.CustomerAddress = strings.TrimSpace(d.CustomerAddress)
	}

	created, err := api.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}
	if err := c.Clear(); err != nil {
		return created, err
	}
	return created, nil
}
