package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2/dialog"

	"contingencia/formulario"
	"contingencia/gui"
	"contingencia/modelo"
	"contingencia/ventas"
)

var errClaveNoEntera = errors.New("introduce un número entero valido")

func (app *ContingenciaApp) handleVista(nombre string) {
	app.window.SetTitle(fmt.Sprintf("%s - %s", AppName, nombre))
}

func (app *ContingenciaApp) handleSeleccionMercaderia(fila int) {
	mercaderias := app.catalogo.Mercaderias()
	if fila < 0 || fila >= len(mercaderias) {
		return
	}
	m := mercaderias[fila]

	gui.DialogoAcciones(app.window, fmt.Sprintf("Mercaderia #%d", m.Clave), app.sesion.Admin,
		func() { gui.MostrarMercaderia(app.window, m) },
		func() { app.handleEditar(m) },
		func() { app.handleEliminar(m) },
	)
}

func (app *ContingenciaApp) handleSeleccionRemito(fila int) {
	remitos := app.libro.Vista()
	if fila < 0 || fila >= len(remitos) {
		return
	}
	r := remitos[fila]

	gui.DialogoAcciones(app.window, fmt.Sprintf("Remito #%d", r.Folio), app.sesion.Admin,
		func() { gui.MostrarRemito(app.window, r) },
		nil, nil,
	)
}

func (app *ContingenciaApp) handleAgregar(f formulario.Mercaderia) bool {
	if errores := f.Validar(); errores != nil {
		app.showError("Agregar", erroresFormulario(errores))
		return false
	}
	m := f.AMercaderia()
	if err := app.catalogo.Agregar(m); err != nil {
		app.showError("Agregar", err)
		return false
	}
	app.mainGUI.RefrescarMercaderias()
	app.mainGUI.SetStatus(fmt.Sprintf("Mercaderia #%d agregada", m.Clave))
	app.log.Info("catalogo", "product added", map[string]interface{}{"clave": m.Clave})
	return true
}

func (app *ContingenciaApp) handleEditar(m modelo.Mercaderia) {
	gui.DialogoEditar(app.window, m, func(f formulario.Mercaderia) bool {
		if errores := f.Validar(); errores != nil {
			app.showError("Editar", erroresFormulario(errores))
			return false
		}
		actual := f.AMercaderia()
		if err := app.catalogo.Actualizar(actual); err != nil {
			app.showError("Editar", err)
			return false
		}
		app.mainGUI.RefrescarMercaderias()
		app.mainGUI.SetStatus(fmt.Sprintf("Mercaderia #%d actualizada", actual.Clave))
		app.log.Info("catalogo", "product updated", map[string]interface{}{"clave": actual.Clave})
		return true
	})
}

func (app *ContingenciaApp) handleEliminar(m modelo.Mercaderia) {
	pregunta := fmt.Sprintf("¿Estás seguro de eliminar la mercaderia con la clave #%d?", m.Clave)
	dialog.ShowConfirm("Eliminar", pregunta, func(ok bool) {
		if !ok {
			return
		}
		if err := app.catalogo.Eliminar(m.Clave); err != nil {
			app.showError("Eliminar", err)
			return
		}
		app.mainGUI.RefrescarMercaderias()
		app.mainGUI.SetStatus(fmt.Sprintf("Mercaderia #%d eliminada", m.Clave))
		app.log.Info("catalogo", "product removed", map[string]interface{}{"clave": m.Clave})
	}, app.window)
}

func (app *ContingenciaApp) handleBuscar(criterio, texto string) {
	texto = strings.TrimSpace(texto)
	if texto == "" {
		gui.MostrarInfo(app.window, "Buscar", "Introduce un dato para continuar.")
		return
	}

	var (
		m   *modelo.Mercaderia
		err error
	)
	switch criterio {
	case "Nombre":
		m, err = app.catalogo.BuscarNombre(texto)
	case "Descripcion":
		m, err = app.catalogo.BuscarDescripcion(texto)
	default:
		clave, convErr := strconv.Atoi(texto)
		if convErr != nil {
			app.showError("Buscar", errClaveNoEntera)
			return
		}
		m, err = app.catalogo.BuscarClave(clave)
	}
	if err != nil {
		app.showError("Buscar", err)
		return
	}
	gui.MostrarMercaderia(app.window, *m)
}

func (app *ContingenciaApp) handleInventario() {
	v := app.catalogo.Valuar()
	detalle := fmt.Sprintf("Mercaderias: %d\nExistencias: %d\nValor: $%s",
		v.Mercaderias, v.Existencias, v.Valor.StringFixed(2))
	dialog.ShowInformation("Inventario", detalle, app.window)
}

func (app *ContingenciaApp) handleVenderInicio() {
	app.ticket = ventas.NuevoTicket()
}

func (app *ContingenciaApp) handleVenderLinea(texto string) string {
	if app.ticket == nil {
		app.ticket = ventas.NuevoTicket()
	}
	clave, err := strconv.Atoi(strings.TrimSpace(texto))
	if err != nil {
		app.showError("Vender", errClaveNoEntera)
		return app.ticket.Nota()
	}
	nota, err := app.ticket.AgregarLinea(app.catalogo, clave)
	if err != nil {
		app.showError("Vender", err)
		return app.ticket.Nota()
	}
	app.mainGUI.RefrescarMercaderias()
	return nota
}

func (app *ContingenciaApp) handleVenderListo() {
	if app.ticket == nil {
		return
	}
	remito := app.ticket.Finalizar(app.libro)
	app.ticket = nil
	if remito == nil {
		app.mainGUI.SetStatus("Venta cancelada")
		return
	}
	app.mainGUI.RefrescarRemitos()
	app.mainGUI.SetStatus(fmt.Sprintf("Remito #%d registrado", remito.Folio))
	app.log.Info("ventas", "sale closed", map[string]interface{}{
		"folio": remito.Folio,
		"total": remito.Total.StringFixed(2),
	})
}

func (app *ContingenciaApp) handleFiltrar(op, fecha string) bool {
	referencia, err := modelo.ParseFecha(strings.TrimSpace(fecha))
	if err != nil {
		app.showError("Filtrar", errors.New("la fecha debe tener el formato dd/mm/aaaa"))
		return false
	}
	app.libro.Filtrar(ventas.Comparador(op), referencia)
	app.mainGUI.RefrescarRemitos()
	app.mainGUI.SetStatus(fmt.Sprintf("Remitos filtrados: %s %s", op, fecha))
	return true
}

func (app *ContingenciaApp) handleRestablecer() {
	if !app.libro.Filtrado() {
		return
	}
	app.libro.Restablecer()
	app.mainGUI.RefrescarRemitos()
	app.mainGUI.SetStatus("Filtro restablecido")
}

// erroresFormulario flattens the per-field validation map into one message,
// field order fixed so repeated attempts read the same.
func erroresFormulario(errores map[string]string) error {
	campos := make([]string, 0, len(errores))
	for campo := range errores {
		campos = append(campos, campo)
	}
	sort.Strings(campos)

	lineas := make([]string, 0, len(campos))
	for _, campo := range campos {
		lineas = append(lineas, errores[campo])
	}
	return errors.New(strings.Join(lineas, "\n"))
}

func (app *ContingenciaApp) showError(titulo string, err error) {
	app.log.Error("ui", err, map[string]interface{}{"titulo": titulo})
	dialog.ShowError(err, app.window)
}
