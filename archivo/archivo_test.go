package archivo

import (
	"os"
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

func TestCargarArchivoInexistente(t *testing.T) {
	registros, err := Cargar[modelo.Mercaderia](t.TempDir(), "Mercaderia")
	if err != nil {
		t.Fatalf("Cargar sin archivo: %v", err)
	}
	if len(registros) != 0 {
		t.Fatalf("registros = %v, quiere coleccion vacia", registros)
	}
}

func TestIdaYVueltaMercaderias(t *testing.T) {
	dir := t.TempDir()
	originales := []modelo.Mercaderia{
		{Clave: 1, Nombre: "Cafe", Descripcion: "Grano tostado", PrecioCompra: precio(t, "10.50"), Existencias: 3, TipoUnidad: "kg"},
		{Clave: 2, Nombre: "Azucar", Descripcion: "Refinada", PrecioCompra: precio(t, "5.05"), Existencias: 0, TipoUnidad: "kg"},
	}

	if err := Guardar(dir, "Mercaderia", originales); err != nil {
		t.Fatalf("Guardar: %v", err)
	}
	cargadas, err := Cargar[modelo.Mercaderia](dir, "Mercaderia")
	if err != nil {
		t.Fatalf("Cargar: %v", err)
	}
	if len(cargadas) != len(originales) {
		t.Fatalf("cargadas = %d registros, quiere %d", len(cargadas), len(originales))
	}
	for i, m := range originales {
		c := cargadas[i]
		if c.Clave != m.Clave || c.Nombre != m.Nombre || c.Descripcion != m.Descripcion ||
			c.Existencias != m.Existencias || c.TipoUnidad != m.TipoUnidad {
			t.Errorf("registro %d alterado: %+v", i, c)
		}
		if !c.PrecioCompra.Equal(m.PrecioCompra) {
			t.Errorf("registro %d: precio %s, quiere %s", i, c.PrecioCompra, m.PrecioCompra)
		}
	}
}

func TestIdaYVueltaRemitos(t *testing.T) {
	dir := t.TempDir()
	originales := []modelo.Remito{
		modelo.NuevoRemito(1, "Cafe | kg | $15.75\n", 1, precio(t, "15.75"), modelo.TasaIVA),
		modelo.NuevoRemito(2, "Azucar | kg | $7.58\nCafe | kg | $15.75\n", 2, precio(t, "23.33"), modelo.TasaIVA),
	}

	if err := Guardar(dir, "Remitos", originales); err != nil {
		t.Fatalf("Guardar: %v", err)
	}
	cargados, err := Cargar[modelo.Remito](dir, "Remitos")
	if err != nil {
		t.Fatalf("Cargar: %v", err)
	}
	if len(cargados) != len(originales) {
		t.Fatalf("cargados = %d registros, quiere %d", len(cargados), len(originales))
	}
	for i, r := range originales {
		c := cargados[i]
		if c.Folio != r.Folio || c.Fecha != r.Fecha || c.Mercaderias != r.Mercaderias || c.Cantidad != r.Cantidad {
			t.Errorf("remito %d alterado: %+v", i, c)
		}
		if !c.Subtotal.Equal(r.Subtotal) || !c.IVA.Equal(r.IVA) || !c.Total.Equal(r.Total) {
			t.Errorf("remito %d: importes %s/%s/%s, quiere %s/%s/%s",
				i, c.Subtotal, c.IVA, c.Total, r.Subtotal, r.IVA, r.Total)
		}
	}
}

func TestGuardarSobreescribeAtomicamente(t *testing.T) {
	dir := t.TempDir()
	if err := Guardar(dir, "Mercaderia", []modelo.Mercaderia{{Clave: 1, Nombre: "Cafe"}}); err != nil {
		t.Fatalf("primer Guardar: %v", err)
	}
	if err := Guardar(dir, "Mercaderia", []modelo.Mercaderia{{Clave: 2, Nombre: "Azucar"}}); err != nil {
		t.Fatalf("segundo Guardar: %v", err)
	}

	cargadas, err := Cargar[modelo.Mercaderia](dir, "Mercaderia")
	if err != nil {
		t.Fatalf("Cargar: %v", err)
	}
	if len(cargadas) != 1 || cargadas[0].Clave != 2 {
		t.Fatalf("cargadas = %+v, quiere solo la clave 2", cargadas)
	}

	// No temp files left behind.
	entradas, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entradas) != 1 {
		t.Fatalf("el directorio contiene %d archivos, quiere 1", len(entradas))
	}
}
