package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

// PickupQRGenerator encodes the pickup link handed to the customer when an
// order is ready.
type PickupQRGenerator struct{}

func (g PickupQRGenerator) Generate(orderID string) ([]byte, error) {
	return qrcode.Encode(fmt.Sprintf("donburi://pickup?order=%s", orderID), qrcode.Medium, 256)
}
