package service

import (
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(saleID string) ([]byte, error)
}

// DefaultQRGenerator renders a PNG linking to the customer-facing receipt.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(saleID string) ([]byte, error) {
	link := fmt.Sprintf("%s/receipt.html?sale_id=%s", g.BaseURL, url.QueryEscape(saleID))
	return qrcode.Encode(link, qrcode.Medium, 256)
}
