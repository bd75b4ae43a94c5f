package formulario

import (
	"testing"

	"contingencia/modelo"
)

func formaValida() Mercaderia {
	return Mercaderia{
		Clave:       "12",
		Nombre:      "Cafe",
		Descripcion: "Grano tostado",
		Precio:      "10.50",
		Existencias: "3",
		TipoUnidad:  "kg",
	}
}

func TestValidarFormaCompleta(t *testing.T) {
	if errores := formaValida().Validar(); errores != nil {
		t.Fatalf("forma valida rechazada: %v", errores)
	}
}

func TestValidarReportaCadaCampo(t *testing.T) {
	cases := []struct {
		nombre string
		mutar  func(*Mercaderia)
		campo  string
	}{
		{"clave vacia", func(f *Mercaderia) { f.Clave = "" }, "Clave"},
		{"clave no entera", func(f *Mercaderia) { f.Clave = "abc" }, "Clave"},
		{"clave decimal", func(f *Mercaderia) { f.Clave = "1.5" }, "Clave"},
		{"clave cero", func(f *Mercaderia) { f.Clave = "0" }, "Clave"},
		{"clave negativa", func(f *Mercaderia) { f.Clave = "-3" }, "Clave"},
		{"nombre vacio", func(f *Mercaderia) { f.Nombre = "" }, "Nombre"},
		{"descripcion vacia", func(f *Mercaderia) { f.Descripcion = "" }, "Descripcion"},
		{"precio vacio", func(f *Mercaderia) { f.Precio = "" }, "Precio"},
		{"precio no decimal", func(f *Mercaderia) { f.Precio = "diez" }, "Precio"},
		{"precio negativo", func(f *Mercaderia) { f.Precio = "-1.00" }, "Precio"},
		{"existencias vacias", func(f *Mercaderia) { f.Existencias = "" }, "Existencias"},
		{"existencias no enteras", func(f *Mercaderia) { f.Existencias = "2.5" }, "Existencias"},
		{"existencias negativas", func(f *Mercaderia) { f.Existencias = "-2" }, "Existencias"},
		{"unidad vacia", func(f *Mercaderia) { f.TipoUnidad = "" }, "TipoUnidad"},
	}
	for _, tc := range cases {
		f := formaValida()
		tc.mutar(&f)
		errores := f.Validar()
		if errores == nil {
			t.Errorf("%s: forma aceptada", tc.nombre)
			continue
		}
		if _, ok := errores[tc.campo]; !ok {
			t.Errorf("%s: falta el campo %s en %v", tc.nombre, tc.campo, errores)
		}
	}
}

func TestValidarReportaTodosLosCamposALaVez(t *testing.T) {
	f := Mercaderia{}
	errores := f.Validar()
	if len(errores) != 6 {
		t.Fatalf("forma vacia reporta %d campos, quiere 6: %v", len(errores), errores)
	}
}

func TestAMercaderia(t *testing.T) {
	m := formaValida().AMercaderia()
	want := modelo.Mercaderia{Clave: 12, Nombre: "Cafe", Descripcion: "Grano tostado", Existencias: 3, TipoUnidad: "kg"}
	if m.Clave != want.Clave || m.Nombre != want.Nombre || m.Descripcion != want.Descripcion ||
		m.Existencias != want.Existencias || m.TipoUnidad != want.TipoUnidad {
		t.Fatalf("AMercaderia = %+v", m)
	}
	if m.PrecioCompra.StringFixed(2) != "10.50" {
		t.Fatalf("precio = %s, quiere 10.50", m.PrecioCompra.StringFixed(2))
	}
}

func TestDeMercaderiaIdaYVuelta(t *testing.T) {
	original := formaValida().AMercaderia()
	f := DeMercaderia(original)
	if errores := f.Validar(); errores != nil {
		t.Fatalf("forma prellenada invalida: %v", errores)
	}
	otra := f.AMercaderia()
	if otra.Clave != original.Clave || !otra.PrecioCompra.Equal(original.PrecioCompra) || otra.Existencias != original.Existencias {
		t.Fatalf("ida y vuelta altera el registro: %+v vs %+v", otra, original)
	}
}
