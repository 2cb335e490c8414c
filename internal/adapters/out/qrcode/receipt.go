// Package qrcode renders order receipts as QR codes pointing at the order's
// tracking page.
package qrcode

import (
	"strings"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/skip2/go-qrcode"
)

// DefaultSize is the edge length of the generated PNG in pixels.
const DefaultSize = 256

// ReceiptGenerator encodes order tracking URLs under a public base URL.
type ReceiptGenerator struct {
	baseURL string
	size    int
}

// NewReceiptGenerator creates a generator for links like "<baseURL>/orders/42".
func NewReceiptGenerator(baseURL string) ReceiptGenerator {
	return ReceiptGenerator{
		baseURL: strings.TrimRight(baseURL, "/"),
		size:    DefaultSize,
	}
}

// TrackingURL returns the address encoded in the receipt of the order.
func (g ReceiptGenerator) TrackingURL(orderID kernel.ID) string {
	return g.baseURL + "/orders/" + orderID.String()
}

// Generate returns a PNG QR code for the order.
func (g ReceiptGenerator) Generate(orderID kernel.ID) ([]byte, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	return qrcode.Encode(g.TrackingURL(orderID), qrcode.Medium, g.size)
}
