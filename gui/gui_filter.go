package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"contingencia/modelo"
)

// BarraFiltro sits under the sales table and narrows it by date. The reset
// button only appears while a filter is active.
type BarraFiltro struct {
	container   *fyne.Container
	operador    *widget.Select
	fecha       *widget.Entry
	restablecer *widget.Button
}

func NewBarraFiltro(onFiltrar func(op, fecha string) bool, onRestablecer func()) *BarraFiltro {
	b := &BarraFiltro{
		operador: widget.NewSelect([]string{"=", ">", "<"}, nil),
		fecha:    widget.NewEntry(),
	}
	b.operador.SetSelected("=")
	b.fecha.SetPlaceHolder("dd/mm/aaaa")
	b.fecha.SetText(modelo.FechaActual())

	filtrar := widget.NewButton("Filtrar", func() {
		if onFiltrar(b.operador.Selected, b.fecha.Text) {
			b.restablecer.Show()
		}
	})
	b.restablecer = widget.NewButton("Restablecer", func() {
		b.operador.SetSelected("=")
		b.fecha.SetText(modelo.FechaActual())
		b.restablecer.Hide()
		onRestablecer()
	})
	b.restablecer.Hide()

	b.container = container.NewHBox(
		widget.NewLabel("Fecha"),
		b.operador,
		b.fecha,
		filtrar,
		b.restablecer,
	)
	return b
}

func (b *BarraFiltro) GetContainer() *fyne.Container {
	return b.container
}
