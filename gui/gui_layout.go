package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// LayoutManager coordinates the main window layout: options panel on the
// left, the active table in the center, a side form panel on the right, and
// the status bar at the bottom. The sales view carries the date filter bar.
type LayoutManager struct {
	callbacks Callbacks

	mainContainer *fyne.Container
	centro        *fyne.Container // swaps between the two table views
	lateral       *fyne.Container // holds the open side panel, if any

	opciones         *PanelOpciones
	tablaMercaderias *TablaMercaderias
	tablaRemitos     *TablaRemitos
	barraFiltro      *BarraFiltro
	statusBar        *StatusBar

	panelAgregar *PanelAgregar
	panelBuscar  *PanelBuscar
	panelVender  *PanelVender

	vistaMercaderias fyne.CanvasObject
	vistaRemitos     fyne.CanvasObject
}

func NewLayoutManager(admin bool, callbacks Callbacks) *LayoutManager {
	lm := &LayoutManager{callbacks: callbacks}

	lm.tablaMercaderias = NewTablaMercaderias(callbacks.Mercaderias, callbacks.SeleccionMercaderia)
	lm.tablaRemitos = NewTablaRemitos(callbacks.Remitos, callbacks.SeleccionRemito)
	lm.barraFiltro = NewBarraFiltro(callbacks.Filtrar, callbacks.Restablecer)
	lm.statusBar = NewStatusBar()

	lm.panelAgregar = NewPanelAgregar(callbacks.Agregar, lm.OcultarPanel)
	lm.panelBuscar = NewPanelBuscar(callbacks.Buscar, lm.OcultarPanel)
	lm.panelVender = NewPanelVender(callbacks.VenderLinea, lm.venderListo)

	lm.opciones = NewPanelOpciones(admin,
		lm.mostrarVista,
		lm.abrirAgregar,
		callbacks.Inventario,
		lm.abrirBuscar,
		lm.abrirVender,
	)

	lm.vistaMercaderias = lm.tablaMercaderias.GetObjeto()
	lm.vistaRemitos = container.NewBorder(
		nil,                           // top
		lm.barraFiltro.GetContainer(), // bottom
		nil, nil,
		lm.tablaRemitos.GetObjeto(),
	)

	lm.centro = container.NewStack(lm.vistaMercaderias)
	lm.lateral = container.NewStack()

	lm.mainContainer = container.NewBorder(
		nil,                         // top
		lm.statusBar.GetContainer(), // bottom
		lm.opciones.GetContainer(),  // left
		lm.lateral,                  // right
		lm.centro,
	)

	return lm
}

func (lm *LayoutManager) GetMainContainer() *fyne.Container {
	return lm.mainContainer
}

// Initialize selects the default view, which also fires the Vista callback.
func (lm *LayoutManager) Initialize() {
	lm.opciones.Initialize()
}

func (lm *LayoutManager) mostrarVista(nombre string) {
	switch nombre {
	case VistaRemitos:
		lm.centro.Objects = []fyne.CanvasObject{lm.vistaRemitos}
	default:
		lm.centro.Objects = []fyne.CanvasObject{lm.vistaMercaderias}
	}
	lm.centro.Refresh()
	lm.OcultarPanel()
	lm.callbacks.Vista(nombre)
}

// MostrarPanel opens a form panel on the right edge, replacing whatever was
// open before.
func (lm *LayoutManager) MostrarPanel(obj fyne.CanvasObject) {
	lm.lateral.Objects = []fyne.CanvasObject{obj}
	lm.lateral.Refresh()
}

func (lm *LayoutManager) OcultarPanel() {
	lm.lateral.Objects = nil
	lm.lateral.Refresh()
}

func (lm *LayoutManager) abrirAgregar() {
	lm.MostrarPanel(lm.panelAgregar.GetContainer())
}

func (lm *LayoutManager) abrirBuscar() {
	lm.MostrarPanel(lm.panelBuscar.GetContainer())
}

// abrirVender starts a ticket and locks the options panel until the sale is
// closed, so a sale in progress cannot be abandoned halfway.
func (lm *LayoutManager) abrirVender() {
	lm.callbacks.VenderInicio()
	lm.panelVender.Reiniciar()
	lm.MostrarPanel(lm.panelVender.GetContainer())
	lm.opciones.Desactivar(true)
}

func (lm *LayoutManager) venderListo() {
	lm.callbacks.VenderListo()
	lm.opciones.Desactivar(false)
	lm.OcultarPanel()
}

func (lm *LayoutManager) RefrescarMercaderias() {
	lm.tablaMercaderias.Refrescar()
}

func (lm *LayoutManager) RefrescarRemitos() {
	lm.tablaRemitos.Refrescar()
}

func (lm *LayoutManager) SetStatus(status string) {
	lm.statusBar.SetStatus(status)
}

func (lm *LayoutManager) SetSesion(usuario string, admin bool) {
	lm.statusBar.SetSesion(usuario, admin)
}
