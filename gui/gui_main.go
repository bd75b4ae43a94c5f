package gui

import (
	"fyne.io/fyne/v2"

	"contingencia/formulario"
	"contingencia/modelo"
)

// Callbacks bundles every action the application shell handles for the GUI.
// Data flows out through the two provider funcs; everything else is an
// operator action.
type Callbacks struct {
	Mercaderias func() []modelo.Mercaderia
	Remitos     func() []modelo.Remito

	Vista               func(nombre string)
	SeleccionMercaderia func(fila int)
	SeleccionRemito     func(fila int)

	Agregar    func(f formulario.Mercaderia) bool
	Buscar     func(criterio, texto string)
	Inventario func()

	VenderInicio func()
	VenderLinea  func(texto string) string
	VenderListo  func()

	Filtrar     func(op, fecha string) bool
	Restablecer func()
}

type MainInterface struct {
	window        fyne.Window
	layoutManager *LayoutManager
}

func NewMainInterface(window fyne.Window, admin bool, callbacks Callbacks) *MainInterface {
	return &MainInterface{
		window:        window,
		layoutManager: NewLayoutManager(admin, callbacks),
	}
}

func (gui *MainInterface) Initialize() {
	gui.layoutManager.Initialize()
}

func (gui *MainInterface) GetMainContainer() *fyne.Container {
	return gui.layoutManager.GetMainContainer()
}

func (gui *MainInterface) RefrescarMercaderias() {
	gui.layoutManager.RefrescarMercaderias()
}

func (gui *MainInterface) RefrescarRemitos() {
	gui.layoutManager.RefrescarRemitos()
}

func (gui *MainInterface) SetStatus(status string) {
	gui.layoutManager.SetStatus(status)
}

func (gui *MainInterface) SetSesion(usuario string, admin bool) {
	gui.layoutManager.SetSesion(usuario, admin)
}
