package main

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

func (app *ContingenciaApp) setupMenus() {
	archivoMenu := fyne.NewMenu("Archivo",
		fyne.NewMenuItem("Guardar", func() {
			if !app.sesion.Admin {
				app.showError("Guardar", errors.New("solo el administrador puede guardar los datos"))
				return
			}
			app.guardar()
			app.mainGUI.SetStatus("Datos guardados")
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Salir", func() {
			app.guardar()
			app.fyneApp.Quit()
		}),
	)

	verMenu := fyne.NewMenu("Ver",
		fyne.NewMenuItem("Inventario", func() {
			app.handleInventario()
		}),
	)

	ayudaMenu := fyne.NewMenu("Ayuda",
		fyne.NewMenuItem("Acerca de", func() {
			detalle := fmt.Sprintf("%s %s\nControl de inventario y ventas", AppName, AppVersion)
			dialog.ShowInformation("Acerca de", detalle, app.window)
		}),
	)

	mainMenu := fyne.NewMainMenu(archivoMenu, verMenu, ayudaMenu)
	app.window.SetMainMenu(mainMenu)
}
