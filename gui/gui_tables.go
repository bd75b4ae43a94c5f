package gui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"contingencia/modelo"
)

var encabezadosMercaderias = []string{"Clave", "Nombre", "Descripción", "Precio", "Existencias", "Unidad"}

// TablaMercaderias renders the catalog. Row selection is forwarded to the
// application so it can open the detail dialog.
type TablaMercaderias struct {
	tabla *widget.Table
	datos func() []modelo.Mercaderia
}

func NewTablaMercaderias(datos func() []modelo.Mercaderia, onSeleccion func(fila int)) *TablaMercaderias {
	t := &TablaMercaderias{datos: datos}

	t.tabla = widget.NewTable(
		func() (int, int) {
			return len(t.datos()), len(encabezadosMercaderias)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			mercaderias := t.datos()
			if id.Row >= len(mercaderias) {
				return
			}
			obj.(*widget.Label).SetText(celdaMercaderia(mercaderias[id.Row], id.Col))
		},
	)
	t.tabla.ShowHeaderRow = true
	t.tabla.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	}
	t.tabla.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		obj.(*widget.Label).SetText(encabezadosMercaderias[id.Col])
	}
	t.tabla.OnSelected = func(id widget.TableCellID) {
		t.tabla.UnselectAll()
		if id.Row < 0 || id.Row >= len(t.datos()) {
			return
		}
		onSeleccion(id.Row)
	}

	t.tabla.SetColumnWidth(0, 70)
	t.tabla.SetColumnWidth(1, 160)
	t.tabla.SetColumnWidth(2, 240)
	t.tabla.SetColumnWidth(3, 100)
	t.tabla.SetColumnWidth(4, 100)
	t.tabla.SetColumnWidth(5, 90)

	return t
}

func celdaMercaderia(m modelo.Mercaderia, col int) string {
	switch col {
	case 0:
		return fmt.Sprintf("%d", m.Clave)
	case 1:
		return m.Nombre
	case 2:
		return m.Descripcion
	case 3:
		return "$" + m.PrecioCompra.StringFixed(2)
	case 4:
		return fmt.Sprintf("%d", m.Existencias)
	case 5:
		return m.TipoUnidad
	}
	return ""
}

func (t *TablaMercaderias) GetObjeto() fyne.CanvasObject {
	return t.tabla
}

func (t *TablaMercaderias) Refrescar() {
	t.tabla.Refresh()
}

var encabezadosRemitos = []string{"Folio", "Fecha", "Mercaderias", "Cantidad", "Subtotal", "IVA", "Total"}

// TablaRemitos renders the sales log, or its filtered view when a date
// filter is active.
type TablaRemitos struct {
	tabla *widget.Table
	datos func() []modelo.Remito
}

func NewTablaRemitos(datos func() []modelo.Remito, onSeleccion func(fila int)) *TablaRemitos {
	t := &TablaRemitos{datos: datos}

	t.tabla = widget.NewTable(
		func() (int, int) {
			return len(t.datos()), len(encabezadosRemitos)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			remitos := t.datos()
			if id.Row >= len(remitos) {
				return
			}
			obj.(*widget.Label).SetText(celdaRemito(remitos[id.Row], id.Col))
		},
	)
	t.tabla.ShowHeaderRow = true
	t.tabla.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	}
	t.tabla.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		obj.(*widget.Label).SetText(encabezadosRemitos[id.Col])
	}
	t.tabla.OnSelected = func(id widget.TableCellID) {
		t.tabla.UnselectAll()
		if id.Row < 0 || id.Row >= len(t.datos()) {
			return
		}
		onSeleccion(id.Row)
	}

	t.tabla.SetColumnWidth(0, 70)
	t.tabla.SetColumnWidth(1, 110)
	t.tabla.SetColumnWidth(2, 280)
	t.tabla.SetColumnWidth(3, 90)
	t.tabla.SetColumnWidth(4, 100)
	t.tabla.SetColumnWidth(5, 90)
	t.tabla.SetColumnWidth(6, 100)

	return t
}

func celdaRemito(r modelo.Remito, col int) string {
	switch col {
	case 0:
		return fmt.Sprintf("%d", r.Folio)
	case 1:
		return r.Fecha
	case 2:
		// Line items are newline separated; collapse for the single row cell.
		return strings.ReplaceAll(strings.TrimSpace(r.Mercaderias), "\n", "; ")
	case 3:
		return fmt.Sprintf("%d", r.Cantidad)
	case 4:
		return "$" + r.Subtotal.StringFixed(2)
	case 5:
		return "$" + r.IVA.StringFixed(2)
	case 6:
		return "$" + r.Total.StringFixed(2)
	}
	return ""
}

func (t *TablaRemitos) GetObjeto() fyne.CanvasObject {
	return t.tabla
}

func (t *TablaRemitos) Refrescar() {
	t.tabla.Refresh()
}
