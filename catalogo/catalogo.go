// Package catalogo holds the merchandise collection and the handful of
// linear queries the application runs over it. Catalogs stay small, so every
// lookup is a plain scan in insertion order.
package catalogo

import (
	"github.com/shopspring/decimal"

	"contingencia/modelo"
)

// Catalogo owns the ordered merchandise collection for a session.
type Catalogo struct {
	mercaderias []modelo.Mercaderia
}

// Nuevo wraps an already loaded collection. A nil slice is a valid empty
// catalog.
func Nuevo(mercaderias []modelo.Mercaderia) *Catalogo {
	return &Catalogo{mercaderias: mercaderias}
}

// Mercaderias exposes the collection in insertion order, for the table view
// and for persistence.
func (c *Catalogo) Mercaderias() []modelo.Mercaderia {
	return c.mercaderias
}

func (c *Catalogo) Len() int {
	return len(c.mercaderias)
}

// BuscarClave returns the first record with the given clave, or
// ErrNoEncontrada.
func (c *Catalogo) BuscarClave(clave int) (*modelo.Mercaderia, error) {
	for i := range c.mercaderias {
		if c.mercaderias[i].Clave == clave {
			return &c.mercaderias[i], nil
		}
	}
	return nil, ErrNoEncontrada
}

// BuscarNombre returns the first record whose nombre matches exactly,
// case sensitive.
func (c *Catalogo) BuscarNombre(nombre string) (*modelo.Mercaderia, error) {
	for i := range c.mercaderias {
		if c.mercaderias[i].Nombre == nombre {
			return &c.mercaderias[i], nil
		}
	}
	return nil, ErrNoEncontrada
}

// BuscarDescripcion returns the first record whose descripción matches
// exactly, case sensitive.
func (c *Catalogo) BuscarDescripcion(descripcion string) (*modelo.Mercaderia, error) {
	for i := range c.mercaderias {
		if c.mercaderias[i].Descripcion == descripcion {
			return &c.mercaderias[i], nil
		}
	}
	return nil, ErrNoEncontrada
}

// Existe reports whether a record with the given clave is present.
func (c *Catalogo) Existe(clave int) bool {
	_, err := c.BuscarClave(clave)
	return err == nil
}

// Agregar appends a record. A duplicate clave rejects the add and leaves the
// catalog unchanged.
func (c *Catalogo) Agregar(m modelo.Mercaderia) error {
	if c.Existe(m.Clave) {
		return ErrClaveDuplicada
	}
	c.mercaderias = append(c.mercaderias, m)
	return nil
}

// Actualizar replaces the record carrying the same clave. The clave itself
// is immutable; everything else is taken from m.
func (c *Catalogo) Actualizar(m modelo.Mercaderia) error {
	actual, err := c.BuscarClave(m.Clave)
	if err != nil {
		return err
	}
	*actual = m
	return nil
}

// Eliminar removes the record with the given clave, preserving the order of
// the rest. Only the admin path reaches this.
func (c *Catalogo) Eliminar(clave int) error {
	for i := range c.mercaderias {
		if c.mercaderias[i].Clave == clave {
			c.mercaderias = append(c.mercaderias[:i], c.mercaderias[i+1:]...)
			return nil
		}
	}
	return ErrNoEncontrada
}

// Valuacion summarizes the catalog for the operator.
type Valuacion struct {
	Mercaderias int
	Existencias int
	Valor       decimal.Decimal
}

// Valuar counts records and stock and totals the unit purchase prices.
// Valor adds each unit price once, not price times stock; that is the
// valuation the business works with, so keep it.
func (c *Catalogo) Valuar() Valuacion {
	v := Valuacion{}
	for i := range c.mercaderias {
		v.Mercaderias++
		v.Existencias += c.mercaderias[i].Existencias
		v.Valor = v.Valor.Add(c.mercaderias[i].PrecioCompra)
	}
	return v
}
