package modelo

import (
	"time"

	"github.com/shopspring/decimal"
)

// FormatoFecha is the fixed day/month/year layout every remito stores.
const FormatoFecha = "02/01/2006"

var (
	// TasaIVA is the fixed 16% tax rate applied to every sale.
	TasaIVA = decimal.NewFromFloat(0.16)

	// Margen is the fixed markup over the purchase price when selling.
	Margen = decimal.NewFromFloat(1.5)
)

// Redondear rounds to two decimals, half away from zero.
func Redondear(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FechaActual returns today's date in the fixed layout.
func FechaActual() string {
	return time.Now().Format(FormatoFecha)
}

// ParseFecha reads a date back from the fixed layout.
func ParseFecha(s string) (time.Time, error) {
	return time.Parse(FormatoFecha, s)
}
