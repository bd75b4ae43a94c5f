package ventas

import (
	"fmt"

	"github.com/shopspring/decimal"

	"contingencia/catalogo"
	"contingencia/modelo"
)

// Ticket accumulates a sale in progress: the running line count, subtotal,
// and the note text handed to the operator. One ticket lives from the moment
// the sell panel opens until Finalizar, which always spends it.
type Ticket struct {
	cantidad int
	subtotal decimal.Decimal
	nota     string
}

func NuevoTicket() *Ticket {
	return &Ticket{}
}

func (t *Ticket) Cantidad() int {
	return t.cantidad
}

func (t *Ticket) Nota() string {
	return t.nota
}

// AgregarLinea sells one unit of the record with the given clave. The line
// price is the purchase price with the fixed markup, rounded to two
// decimals. On a miss or an out-of-stock record nothing changes and the
// current note is returned alongside the error.
func (t *Ticket) AgregarLinea(cat *catalogo.Catalogo, clave int) (string, error) {
	m, err := cat.BuscarClave(clave)
	if err != nil {
		return t.nota, err
	}
	if !m.Vender() {
		return t.nota, ErrSinExistencias
	}
	precio := modelo.Redondear(m.PrecioCompra.Mul(modelo.Margen))
	t.nota += fmt.Sprintf("%s | %s | $%s\n", m.Nombre, m.TipoUnidad, precio.StringFixed(2))
	t.subtotal = t.subtotal.Add(precio)
	t.cantidad++
	return t.nota, nil
}

// Finalizar closes the ticket. With at least one line it registers a new
// remito (fresh folio, rounded subtotal, fixed IVA rate) in the log and
// returns it; with none it returns nil and the log is untouched. Either way
// the ticket resets to empty.
func (t *Ticket) Finalizar(libro *Libro) *modelo.Remito {
	defer func() { *t = Ticket{} }()
	if t.cantidad < 1 {
		return nil
	}
	r := modelo.NuevoRemito(libro.GenerarFolio(), t.nota, t.cantidad, modelo.Redondear(t.subtotal), modelo.TasaIVA)
	libro.Agregar(r)
	return &r
}
