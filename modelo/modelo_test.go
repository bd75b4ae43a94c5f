package modelo

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNuevoRemitoCalculaIVAYTotal(t *testing.T) {
	cases := []struct {
		subtotal string
		iva      string
		total    string
	}{
		{"100.00", "16.00", "116.00"},
		{"33.33", "5.33", "38.66"},
		{"0.01", "0.00", "0.01"},
		{"1500.50", "240.08", "1740.58"},
	}
	for _, tc := range cases {
		subtotal, err := decimal.NewFromString(tc.subtotal)
		if err != nil {
			t.Fatalf("subtotal %q: %v", tc.subtotal, err)
		}
		r := NuevoRemito(7, "Cafe | kg | $30.00\n", 1, subtotal, TasaIVA)
		if r.IVA.StringFixed(2) != tc.iva {
			t.Errorf("subtotal %s: IVA = %s, quiere %s", tc.subtotal, r.IVA.StringFixed(2), tc.iva)
		}
		if r.Total.StringFixed(2) != tc.total {
			t.Errorf("subtotal %s: total = %s, quiere %s", tc.subtotal, r.Total.StringFixed(2), tc.total)
		}
		if r.Folio != 7 || r.Cantidad != 1 {
			t.Errorf("subtotal %s: folio/cantidad inesperados: %d/%d", tc.subtotal, r.Folio, r.Cantidad)
		}
	}
}

func TestNuevoRemitoFechaEnFormatoFijo(t *testing.T) {
	r := NuevoRemito(1, "", 0, decimal.Zero, TasaIVA)
	if _, err := ParseFecha(r.Fecha); err != nil {
		t.Fatalf("fecha %q no cumple el formato %s: %v", r.Fecha, FormatoFecha, err)
	}
}

func TestVenderDescuentaUnaUnidad(t *testing.T) {
	m := Mercaderia{Clave: 1, Existencias: 2}
	if !m.Vender() {
		t.Fatal("Vender con existencias debe vender")
	}
	if m.Existencias != 1 {
		t.Fatalf("existencias = %d, quiere 1", m.Existencias)
	}
}

func TestVenderSinExistenciasNoMuta(t *testing.T) {
	m := Mercaderia{Clave: 1, Existencias: 0}
	if m.Vender() {
		t.Fatal("Vender sin existencias debe fallar")
	}
	if m.Existencias != 0 {
		t.Fatalf("existencias = %d, nunca debe ser negativo", m.Existencias)
	}
}

func TestRedondear(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"15.675", "15.68"},
		{"15.674", "15.67"},
		{"10", "10.00"},
		{"0.005", "0.01"},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("decimal %q: %v", tc.in, err)
		}
		if got := Redondear(d).StringFixed(2); got != tc.want {
			t.Errorf("Redondear(%s) = %s, quiere %s", tc.in, got, tc.want)
		}
	}
}
