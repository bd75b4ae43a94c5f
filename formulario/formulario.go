// Package formulario validates the raw text of the add/edit merchandise
// form. The whole form is accepted or rejected as a unit; every failing
// field is reported so the operator can correct the input in one pass.
package formulario

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"contingencia/modelo"
)

// Mercaderia carries the form fields exactly as typed.
type Mercaderia struct {
	Clave       string `validate:"required"`
	Nombre      string `validate:"required"`
	Descripcion string `validate:"required"`
	Precio      string `validate:"required"`
	Existencias string `validate:"required"`
	TipoUnidad  string `validate:"required"`
}

var validar = validator.New()

var mensajes = map[string]string{
	"Clave":       "Introduce un número entero valido.",
	"Nombre":      "El nombre es obligatorio.",
	"Descripcion": "La descripción es obligatoria.",
	"Precio":      "Introduce un precio decimal no negativo.",
	"Existencias": "Introduce existencias enteras no negativas.",
	"TipoUnidad":  "La unidad es obligatoria.",
}

// Validar checks every field and returns a field→message map, or nil when
// the form is acceptable. Presence comes from the struct tags; the numeric
// fields additionally have to parse into their target types and ranges.
func (f Mercaderia) Validar() map[string]string {
	errores := map[string]string{}
	if err := validar.Struct(f); err != nil {
		var faltas validator.ValidationErrors
		if errors.As(err, &faltas) {
			for _, falta := range faltas {
				errores[falta.Field()] = mensajes[falta.Field()]
			}
		}
	}
	if _, ok := errores["Clave"]; !ok {
		if clave, err := strconv.Atoi(strings.TrimSpace(f.Clave)); err != nil || clave <= 0 {
			errores["Clave"] = mensajes["Clave"]
		}
	}
	if _, ok := errores["Precio"]; !ok {
		if precio, err := decimal.NewFromString(strings.TrimSpace(f.Precio)); err != nil || precio.IsNegative() {
			errores["Precio"] = mensajes["Precio"]
		}
	}
	if _, ok := errores["Existencias"]; !ok {
		if n, err := strconv.Atoi(strings.TrimSpace(f.Existencias)); err != nil || n < 0 {
			errores["Existencias"] = mensajes["Existencias"]
		}
	}
	if len(errores) == 0 {
		return nil
	}
	return errores
}

// AMercaderia converts an already validated form into a record. The price
// is normalized to two decimals on the way in.
func (f Mercaderia) AMercaderia() modelo.Mercaderia {
	clave, _ := strconv.Atoi(strings.TrimSpace(f.Clave))
	precio, _ := decimal.NewFromString(strings.TrimSpace(f.Precio))
	existencias, _ := strconv.Atoi(strings.TrimSpace(f.Existencias))
	return modelo.Mercaderia{
		Clave:        clave,
		Nombre:       strings.TrimSpace(f.Nombre),
		Descripcion:  strings.TrimSpace(f.Descripcion),
		PrecioCompra: modelo.Redondear(precio),
		Existencias:  existencias,
		TipoUnidad:   strings.TrimSpace(f.TipoUnidad),
	}
}

// DeMercaderia prefills a form from an existing record, for the edit dialog.
func DeMercaderia(m modelo.Mercaderia) Mercaderia {
	return Mercaderia{
		Clave:       strconv.Itoa(m.Clave),
		Nombre:      m.Nombre,
		Descripcion: m.Descripcion,
		Precio:      m.PrecioCompra.StringFixed(2),
		Existencias: strconv.Itoa(m.Existencias),
		TipoUnidad:  m.TipoUnidad,
	}
}
