package catalogo

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"contingencia/modelo"
)

func precio(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal %q: %v", s, err)
	}
	return d
}

func catalogoDePrueba(t *testing.T) *Catalogo {
	t.Helper()
	return Nuevo([]modelo.Mercaderia{
		{Clave: 1, Nombre: "Cafe", Descripcion: "Grano tostado", PrecioCompra: precio(t, "10.00"), Existencias: 3, TipoUnidad: "kg"},
		{Clave: 2, Nombre: "Azucar", Descripcion: "Refinada", PrecioCompra: precio(t, "5.00"), Existencias: 2, TipoUnidad: "kg"},
	})
}

func TestAgregarRechazaClaveDuplicada(t *testing.T) {
	c := catalogoDePrueba(t)
	err := c.Agregar(modelo.Mercaderia{Clave: 1, Nombre: "Otro"})
	if !errors.Is(err, ErrClaveDuplicada) {
		t.Fatalf("Agregar clave duplicada: err = %v, quiere ErrClaveDuplicada", err)
	}
	if c.Len() != 2 {
		t.Fatalf("el catalogo cambió tras un agregar rechazado: len = %d", c.Len())
	}
}

func TestAgregarConservaOrden(t *testing.T) {
	c := catalogoDePrueba(t)
	if err := c.Agregar(modelo.Mercaderia{Clave: 9, Nombre: "Sal"}); err != nil {
		t.Fatalf("Agregar: %v", err)
	}
	claves := []int{}
	for _, m := range c.Mercaderias() {
		claves = append(claves, m.Clave)
	}
	want := []int{1, 2, 9}
	for i := range want {
		if claves[i] != want[i] {
			t.Fatalf("orden de claves = %v, quiere %v", claves, want)
		}
	}
}

func TestBusquedas(t *testing.T) {
	c := catalogoDePrueba(t)

	m, err := c.BuscarClave(2)
	if err != nil || m.Nombre != "Azucar" {
		t.Fatalf("BuscarClave(2) = %v, %v", m, err)
	}
	if _, err := c.BuscarClave(99); !errors.Is(err, ErrNoEncontrada) {
		t.Fatalf("BuscarClave(99): err = %v, quiere ErrNoEncontrada", err)
	}

	m, err = c.BuscarNombre("Cafe")
	if err != nil || m.Clave != 1 {
		t.Fatalf("BuscarNombre(Cafe) = %v, %v", m, err)
	}
	// Exact, case-sensitive match.
	if _, err := c.BuscarNombre("cafe"); !errors.Is(err, ErrNoEncontrada) {
		t.Fatalf("BuscarNombre(cafe): err = %v, quiere ErrNoEncontrada", err)
	}

	m, err = c.BuscarDescripcion("Refinada")
	if err != nil || m.Clave != 2 {
		t.Fatalf("BuscarDescripcion(Refinada) = %v, %v", m, err)
	}
	if _, err := c.BuscarDescripcion("Refinad"); !errors.Is(err, ErrNoEncontrada) {
		t.Fatalf("BuscarDescripcion parcial: err = %v, quiere ErrNoEncontrada", err)
	}
}

func TestExiste(t *testing.T) {
	c := catalogoDePrueba(t)
	if !c.Existe(1) {
		t.Fatal("Existe(1) = false")
	}
	if c.Existe(42) {
		t.Fatal("Existe(42) = true")
	}
}

func TestActualizarConservaClave(t *testing.T) {
	c := catalogoDePrueba(t)
	err := c.Actualizar(modelo.Mercaderia{Clave: 1, Nombre: "Cafe premium", Descripcion: "Grano", PrecioCompra: precio(t, "12.50"), Existencias: 7, TipoUnidad: "kg"})
	if err != nil {
		t.Fatalf("Actualizar: %v", err)
	}
	m, err := c.BuscarClave(1)
	if err != nil {
		t.Fatalf("BuscarClave tras actualizar: %v", err)
	}
	if m.Nombre != "Cafe premium" || m.Existencias != 7 || m.PrecioCompra.StringFixed(2) != "12.50" {
		t.Fatalf("registro no actualizado: %+v", m)
	}

	if err := c.Actualizar(modelo.Mercaderia{Clave: 99}); !errors.Is(err, ErrNoEncontrada) {
		t.Fatalf("Actualizar(99): err = %v, quiere ErrNoEncontrada", err)
	}
}

func TestEliminar(t *testing.T) {
	c := catalogoDePrueba(t)
	if err := c.Eliminar(1); err != nil {
		t.Fatalf("Eliminar(1): %v", err)
	}
	if c.Existe(1) || c.Len() != 1 {
		t.Fatalf("la mercaderia 1 sigue en el catalogo")
	}
	if err := c.Eliminar(1); !errors.Is(err, ErrNoEncontrada) {
		t.Fatalf("Eliminar repetido: err = %v, quiere ErrNoEncontrada", err)
	}
}

func TestValuarCatalogoVacio(t *testing.T) {
	v := Nuevo(nil).Valuar()
	if v.Mercaderias != 0 || v.Existencias != 0 || !v.Valor.IsZero() {
		t.Fatalf("valuacion de catalogo vacio: %+v", v)
	}
}

func TestValuarSumaPreciosUnitarios(t *testing.T) {
	// Valor is the sum of unit prices, not price times stock.
	v := catalogoDePrueba(t).Valuar()
	if v.Mercaderias != 2 {
		t.Errorf("Mercaderias = %d, quiere 2", v.Mercaderias)
	}
	if v.Existencias != 5 {
		t.Errorf("Existencias = %d, quiere 5", v.Existencias)
	}
	if v.Valor.StringFixed(2) != "15.00" {
		t.Errorf("Valor = %s, quiere 15.00", v.Valor.StringFixed(2))
	}
}
