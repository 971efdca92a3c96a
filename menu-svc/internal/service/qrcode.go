package service

import (
	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

// DefaultQRGenerator encodes the storefront confirmation page of an order.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID string) ([]byte, error) {
	return qrcode.Encode(g.ConfirmationURL(orderID), qrcode.Medium, 256)
}

func (g DefaultQRGenerator) ConfirmationURL(orderID string) string {
	return g.BaseURL + "/order-confirmation/" + orderID
}
