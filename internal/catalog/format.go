package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ResellerMarkup is added on top of harga_final for API-backed products.
// Locally bundled products are already priced.
const ResellerMarkup Amount = 3000

// LowStockThreshold is the slot count under which stock is considered low.
const LowStockThreshold = 50

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount the way the storefront shows prices, ex.
// "Rp 15.000".
func FormatRupiah(a Amount) string {
	return idPrinter.Sprintf("Rp %d", int64(a))
}

type StockLevel string

const (
	StockEmpty     StockLevel = "empty"
	StockLow       StockLevel = "low"
	StockAvailable StockLevel = "available"
)

// Level classifies the remaining slots of a stock item.
func (s StockItem) Level() StockLevel {
	// negative counts from upstream are treated as sold out, not low
	if s.Slots <= 0 {
		return StockEmpty
	}
	if s.Slots < LowStockThreshold {
		return StockLow
	}
	return StockAvailable
}
