package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRGenerator produces the PNG guests scan at a table to open its order page.
type QRGenerator interface {
	Generate(tableNumber int) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(tableNumber int) ([]byte, error) {
	link := fmt.Sprintf("%s/order/%d", g.BaseURL, tableNumber)
	return qrcode.Encode(link, qrcode.Medium, 256)
}
