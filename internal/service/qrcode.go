package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(table int) ([]byte, error)
}

// TableQRGenerator renders the code printed on a table. Scanning it opens the
// storefront with that table pre-assigned.
type TableQRGenerator struct {
	BaseURL string
}

func (g TableQRGenerator) URL(table int) string {
	return fmt.Sprintf("%s/?table=%d", strings.TrimRight(g.BaseURL, "/"), table)
}

func (g TableQRGenerator) Generate(table int) ([]byte, error) {
	if table < 1 {
		return nil, ErrInvalidTable
	}
	return qrcode.Encode(g.URL(table), qrcode.Medium, 256)
}
