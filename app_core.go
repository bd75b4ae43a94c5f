package main

import (
	stdlog "log"
	"net/http"
	_ "net/http/pprof"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"contingencia/archivo"
	"contingencia/catalogo"
	"contingencia/config"
	"contingencia/gui"
	"contingencia/internal/logger"
	"contingencia/modelo"
	"contingencia/sesion"
	"contingencia/ventas"
)

// Collection names double as the persistence file names under the data
// directory.
const (
	coleccionMercaderias = "Mercaderia"
	coleccionRemitos     = "Remitos"
)

type ContingenciaApp struct {
	fyneApp fyne.App
	window  fyne.Window
	mainGUI *gui.MainInterface

	cfg    config.Config
	log    *logger.Adapter
	sesion sesion.Sesion

	catalogo *catalogo.Catalogo
	libro    *ventas.Libro
	ticket   *ventas.Ticket
}

func NewContingenciaApp(cfg config.Config) *ContingenciaApp {
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.SetFixedSize(true)

	return &ContingenciaApp{
		fyneApp: fyneApp,
		window:  window,
		cfg:     cfg,
		log:     logger.NewConsole(cfg.LogLevel),
	}
}

func (app *ContingenciaApp) Run() {
	// The data stays hidden until someone identifies themselves.
	app.window.SetContent(container.NewCenter(widget.NewLabel("Autentificación requerida")))

	gui.DialogoLogin(app.window,
		func(usuario, contrasena string) {
			app.sesion = sesion.Autenticar(usuario, contrasena, app.cfg.AdminUser, app.cfg.AdminHash)
			app.log.Info("sesion", "session started", map[string]interface{}{
				"usuario": app.sesion.Usuario,
				"admin":   app.sesion.Admin,
			})
			app.cargar()
		},
		func() {
			app.fyneApp.Quit()
		},
	)

	app.window.ShowAndRun()
}

// cargar reads both collections from disk and builds the main interface.
// A collection that cannot be read starts out empty; the operator is told
// and work continues in memory.
func (app *ContingenciaApp) cargar() {
	mercaderias, err := archivo.Cargar[modelo.Mercaderia](app.cfg.DataDir, coleccionMercaderias)
	if err != nil {
		app.showError("Mercaderias", err)
		mercaderias = nil
	}
	remitos, err := archivo.Cargar[modelo.Remito](app.cfg.DataDir, coleccionRemitos)
	if err != nil {
		app.showError("Remitos", err)
		remitos = nil
	}

	app.catalogo = catalogo.Nuevo(mercaderias)
	app.libro = ventas.NuevoLibro(remitos)

	app.log.Info("archivo", "collections loaded", map[string]interface{}{
		"mercaderias": app.catalogo.Len(),
		"remitos":     app.libro.Len(),
	})

	app.mainGUI = gui.NewMainInterface(app.window, app.sesion.Admin, gui.Callbacks{
		Mercaderias: func() []modelo.Mercaderia { return app.catalogo.Mercaderias() },
		Remitos:     func() []modelo.Remito { return app.libro.Vista() },

		Vista:               app.handleVista,
		SeleccionMercaderia: app.handleSeleccionMercaderia,
		SeleccionRemito:     app.handleSeleccionRemito,

		Agregar:    app.handleAgregar,
		Buscar:     app.handleBuscar,
		Inventario: app.handleInventario,

		VenderInicio: app.handleVenderInicio,
		VenderLinea:  app.handleVenderLinea,
		VenderListo:  app.handleVenderListo,

		Filtrar:     app.handleFiltrar,
		Restablecer: app.handleRestablecer,
	})

	app.window.SetContent(app.mainGUI.GetMainContainer())
	app.mainGUI.Initialize()
	app.mainGUI.SetSesion(app.sesion.Usuario, app.sesion.Admin)
	app.setupMenus()

	app.window.SetCloseIntercept(func() {
		app.guardar()
		app.window.Close()
	})
}

// guardar persists both collections. Read-only sessions never write, so a
// consultation can never alter the files.
func (app *ContingenciaApp) guardar() {
	if !app.sesion.Admin {
		return
	}
	if err := archivo.Guardar(app.cfg.DataDir, coleccionMercaderias, app.catalogo.Mercaderias()); err != nil {
		app.showError("Mercaderias", err)
	}
	if err := archivo.Guardar(app.cfg.DataDir, coleccionRemitos, app.libro.Todos()); err != nil {
		app.showError("Remitos", err)
	}
	app.log.Info("archivo", "collections saved", map[string]interface{}{
		"mercaderias": app.catalogo.Len(),
		"remitos":     app.libro.Len(),
	})
}

func main() {
	cfg := config.Load()

	// Start profiling server if enabled
	if cfg.Pprof {
		go func() {
			stdlog.Println("Starting profiling server on :6060")
			stdlog.Println(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	app := NewContingenciaApp(cfg)
	app.Run()
}
