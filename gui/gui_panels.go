package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"contingencia/formulario"
)

const (
	VistaMercaderias = "Mercaderias"
	VistaRemitos     = "Remitos"
)

// PanelOpciones is the fixed left column: the view selector plus the
// operation buttons. Admin-only operations are simply not built for
// read-only sessions.
type PanelOpciones struct {
	container *fyne.Container
	selector  *widget.Select
	botones   []*widget.Button
}

func NewPanelOpciones(admin bool, onVista func(nombre string), onAgregar, onInventario, onBuscar, onVender func()) *PanelOpciones {
	p := &PanelOpciones{}

	p.selector = widget.NewSelect([]string{VistaMercaderias, VistaRemitos}, onVista)

	objetos := []fyne.CanvasObject{
		widget.NewLabelWithStyle("Opciones", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		p.selector,
		widget.NewSeparator(),
	}

	agregarBoton := func(texto string, accion func()) {
		b := widget.NewButton(texto, accion)
		p.botones = append(p.botones, b)
		objetos = append(objetos, b)
	}

	if admin {
		agregarBoton("Agregar", onAgregar)
	}
	agregarBoton("Inventario", onInventario)
	agregarBoton("Buscar", onBuscar)
	if admin {
		agregarBoton("Vender", onVender)
	}

	p.container = container.NewVBox(objetos...)
	return p
}

func (p *PanelOpciones) GetContainer() *fyne.Container {
	return p.container
}

// Initialize triggers the default view through the selector so the startup
// path is the same as a user switching views.
func (p *PanelOpciones) Initialize() {
	p.selector.SetSelected(VistaMercaderias)
}

// Desactivar locks the panel while a sale ticket is open.
func (p *PanelOpciones) Desactivar(bloqueado bool) {
	for _, b := range p.botones {
		if bloqueado {
			b.Disable()
		} else {
			b.Enable()
		}
	}
	if bloqueado {
		p.selector.Disable()
	} else {
		p.selector.Enable()
	}
}

// PanelAgregar is the side form for registering a new product.
type PanelAgregar struct {
	container *fyne.Container

	clave       *widget.Entry
	nombre      *widget.Entry
	descripcion *widget.Entry
	precio      *widget.Entry
	existencias *widget.Entry
	unidad      *widget.Entry
}

func NewPanelAgregar(onAgregar func(f formulario.Mercaderia) bool, onCerrar func()) *PanelAgregar {
	p := &PanelAgregar{
		clave:       widget.NewEntry(),
		nombre:      widget.NewEntry(),
		descripcion: widget.NewEntry(),
		precio:      widget.NewEntry(),
		existencias: widget.NewEntry(),
		unidad:      widget.NewEntry(),
	}

	agregar := widget.NewButton("Agregar", func() {
		if onAgregar(p.formulario()) {
			p.limpiar()
		}
	})
	cerrar := widget.NewButton("Cerrar", func() {
		p.limpiar()
		onCerrar()
	})

	p.container = container.NewVBox(
		widget.NewLabelWithStyle("Agregar mercaderia", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Clave"), p.clave,
		widget.NewLabel("Nombre"), p.nombre,
		widget.NewLabel("Descripción"), p.descripcion,
		widget.NewLabel("Precio de compra"), p.precio,
		widget.NewLabel("Existencias"), p.existencias,
		widget.NewLabel("Tipo de unidad"), p.unidad,
		agregar,
		cerrar,
	)
	return p
}

func (p *PanelAgregar) formulario() formulario.Mercaderia {
	return formulario.Mercaderia{
		Clave:       p.clave.Text,
		Nombre:      p.nombre.Text,
		Descripcion: p.descripcion.Text,
		Precio:      p.precio.Text,
		Existencias: p.existencias.Text,
		TipoUnidad:  p.unidad.Text,
	}
}

func (p *PanelAgregar) limpiar() {
	for _, e := range []*widget.Entry{p.clave, p.nombre, p.descripcion, p.precio, p.existencias, p.unidad} {
		e.SetText("")
	}
}

func (p *PanelAgregar) GetContainer() *fyne.Container {
	return p.container
}

// PanelBuscar is the side form for catalog lookups by key, name or
// description.
type PanelBuscar struct {
	container *fyne.Container
	criterio  *widget.Select
	texto     *widget.Entry
}

func NewPanelBuscar(onBuscar func(criterio, texto string), onCerrar func()) *PanelBuscar {
	p := &PanelBuscar{
		criterio: widget.NewSelect([]string{"Clave", "Nombre", "Descripcion"}, nil),
		texto:    widget.NewEntry(),
	}
	p.criterio.SetSelected("Clave")

	mostrar := widget.NewButton("Mostrar", func() {
		onBuscar(p.criterio.Selected, p.texto.Text)
		p.texto.SetText("")
	})
	cerrar := widget.NewButton("Cerrar", func() {
		p.texto.SetText("")
		onCerrar()
	})

	p.container = container.NewVBox(
		widget.NewLabelWithStyle("Buscar mercaderia", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		p.criterio,
		p.texto,
		mostrar,
		cerrar,
	)
	return p
}

func (p *PanelBuscar) GetContainer() *fyne.Container {
	return p.container
}

// PanelVender drives a sale ticket: one key per line, with the running
// receipt note shown below.
type PanelVender struct {
	container *fyne.Container
	clave     *widget.Entry
	nota      *widget.Label
}

func NewPanelVender(onLinea func(texto string) string, onListo func()) *PanelVender {
	p := &PanelVender{
		clave: widget.NewEntry(),
		nota:  widget.NewLabel(""),
	}
	p.clave.SetPlaceHolder("Clave")

	agregar := widget.NewButton("Agregar", func() {
		p.nota.SetText(onLinea(p.clave.Text))
		p.clave.SetText("")
	})
	listo := widget.NewButton("Listo", onListo)

	p.container = container.NewVBox(
		widget.NewLabelWithStyle("Vender", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		p.clave,
		agregar,
		p.nota,
		listo,
	)
	return p
}

// Reiniciar clears the panel for a fresh ticket.
func (p *PanelVender) Reiniciar() {
	p.clave.SetText("")
	p.nota.SetText("")
}

func (p *PanelVender) GetContainer() *fyne.Container {
	return p.container
}
