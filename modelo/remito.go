package modelo

import "github.com/shopspring/decimal"

// Remito is the immutable record of a closed sale. Mercaderias holds the
// aggregated line text of everything sold in the transaction.
type Remito struct {
	Folio       int
	Fecha       string
	Mercaderias string
	Cantidad    int
	Subtotal    decimal.Decimal
	IVA         decimal.Decimal
	Total       decimal.Decimal
}

// NuevoRemito builds a remito dated today. IVA and total derive from the
// subtotal and the given rate, each rounded to two decimals.
func NuevoRemito(folio int, mercaderias string, cantidad int, subtotal, tasa decimal.Decimal) Remito {
	iva := Redondear(subtotal.Mul(tasa))
	return Remito{
		Folio:       folio,
		Fecha:       FechaActual(),
		Mercaderias: mercaderias,
		Cantidad:    cantidad,
		Subtotal:    subtotal,
		IVA:         iva,
		Total:       Redondear(subtotal.Add(iva)),
	}
}
