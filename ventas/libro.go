// Package ventas keeps the sales log (remitos), the folio sequence, the
// sale-in-progress ticket, and the date filter over closed sales.
package ventas

import (
	"time"

	"contingencia/modelo"
)

// Comparador selects how a remito's fecha is matched against the reference
// date when filtering.
type Comparador string

const (
	Igual   Comparador = "="
	Despues Comparador = ">"
	Antes   Comparador = "<"
)

// filtroFecha is an installed date filter: the view recomputes from it on
// every read, so the log underneath keeps growing through it.
type filtroFecha struct {
	op         Comparador
	referencia time.Time
}

func (f filtroFecha) retiene(r modelo.Remito) bool {
	fecha, err := modelo.ParseFecha(r.Fecha)
	if err != nil {
		return false
	}
	switch f.op {
	case Igual:
		return fecha.Equal(f.referencia)
	case Despues:
		return fecha.After(f.referencia)
	case Antes:
		return fecha.Before(f.referencia)
	}
	return true
}

// Libro is the append-only sales log plus its current view. Remitos are
// never edited or removed once registered.
type Libro struct {
	remitos []modelo.Remito
	filtro  *filtroFecha
}

// NuevoLibro wraps an already loaded log. A nil slice is a valid empty log.
func NuevoLibro(remitos []modelo.Remito) *Libro {
	return &Libro{remitos: remitos}
}

// Agregar appends a closed remito to the log. A matching remito shows up in
// the filtered view immediately.
func (l *Libro) Agregar(r modelo.Remito) {
	l.remitos = append(l.remitos, r)
}

// Todos returns the full log in registration order, for persistence.
func (l *Libro) Todos() []modelo.Remito {
	return l.remitos
}

func (l *Libro) Len() int {
	return len(l.remitos)
}

// Vista returns what the sales table shows: the full log, or the records
// the installed filter keeps. The view reads through to the log, so it is
// evaluated fresh on every call.
func (l *Libro) Vista() []modelo.Remito {
	if l.filtro == nil {
		return l.remitos
	}
	vista := []modelo.Remito{}
	for _, r := range l.remitos {
		if l.filtro.retiene(r) {
			vista = append(vista, r)
		}
	}
	return vista
}

// Filtrado reports whether a date filter is installed.
func (l *Libro) Filtrado() bool {
	return l.filtro != nil
}

// Filtrar installs a view keeping only the remitos whose fecha compares to
// the reference date under op. "=" is exact, ">" and "<" are strict. A
// remito whose fecha does not parse is dropped from the view; an unknown
// comparator keeps the record.
func (l *Libro) Filtrar(op Comparador, referencia time.Time) {
	l.filtro = &filtroFecha{op: op, referencia: referencia}
}

// Restablecer drops the filter; Vista goes back to the full log in its
// original order.
func (l *Libro) Restablecer() {
	l.filtro = nil
}
