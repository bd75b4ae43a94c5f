package modelo

import "github.com/shopspring/decimal"

// Mercaderia is a catalog entry: one stocked product. Clave is assigned
// externally and never changes after creation.
type Mercaderia struct {
	Clave        int
	Nombre       string
	Descripcion  string
	PrecioCompra decimal.Decimal
	Existencias  int
	TipoUnidad   string
}

// Vender discounts one unit from stock. It reports false, without touching
// the record, when nothing is left to sell.
func (m *Mercaderia) Vender() bool {
	if m.Existencias < 1 {
		return false
	}
	m.Existencias--
	return true
}
