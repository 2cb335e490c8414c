package qrcode_test

import (
	"bytes"
	"image/png"
	"testing"

	"restaurant/internal/adapters/out/qrcode"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptGenerator_TrackingURL(t *testing.T) {
	g := qrcode.NewReceiptGenerator("https://eat.example.com/")

	assert.Equal(t, "https://eat.example.com/orders/42", g.TrackingURL(kernel.MustNewID(42)))
}

func TestReceiptGenerator_Generate(t *testing.T) {
	g := qrcode.NewReceiptGenerator("http://localhost:8080")

	raw, err := g.Generate(kernel.MustNewID(7))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, qrcode.DefaultSize, img.Bounds().Dx())
	assert.Equal(t, qrcode.DefaultSize, img.Bounds().Dy())
}

func TestReceiptGenerator_Generate_ZeroID(t *testing.T) {
	_, err := qrcode.NewReceiptGenerator("http://localhost:8080").Generate(kernel.ID{})

	require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
}
