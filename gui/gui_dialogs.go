package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"contingencia/formulario"
	"contingencia/modelo"
)

func MostrarMercaderia(win fyne.Window, m modelo.Mercaderia) {
	detalle := fmt.Sprintf(
		"Clave: %d\nNombre: %s\nDescripción: %s\nPrecio de compra: $%s\nExistencias: %d\nTipo de unidad: %s",
		m.Clave, m.Nombre, m.Descripcion, m.PrecioCompra.StringFixed(2), m.Existencias, m.TipoUnidad,
	)
	dialog.ShowInformation("Mercaderia", detalle, win)
}

func MostrarRemito(win fyne.Window, r modelo.Remito) {
	detalle := fmt.Sprintf(
		"Folio: %d\nFecha: %s\n\n%s\nCantidad: %d\nSubtotal: $%s\nIVA: $%s\nTotal: $%s",
		r.Folio, r.Fecha, r.Mercaderias, r.Cantidad,
		r.Subtotal.StringFixed(2), r.IVA.StringFixed(2), r.Total.StringFixed(2),
	)
	dialog.ShowInformation("Remito", detalle, win)
}

func MostrarInfo(win fyne.Window, titulo, mensaje string) {
	dialog.ShowInformation(titulo, mensaje, win)
}

// DialogoAcciones offers the operations available on a selected row. Edit
// and delete are only shown to administrators; pass nil for actions that do
// not apply to the row type.
func DialogoAcciones(win fyne.Window, titulo string, admin bool, onMostrar, onEditar, onEliminar func()) {
	var d dialog.Dialog

	botones := []fyne.CanvasObject{}
	agregar := func(texto string, accion func()) {
		botones = append(botones, widget.NewButton(texto, func() {
			d.Hide()
			accion()
		}))
	}

	if onMostrar != nil {
		agregar("Mostrar", onMostrar)
	}
	if admin && onEditar != nil {
		agregar("Editar", onEditar)
	}
	if admin && onEliminar != nil {
		agregar("Eliminar", onEliminar)
	}
	botones = append(botones, widget.NewButton("Cancelar", func() { d.Hide() }))

	d = dialog.NewCustomWithoutButtons(titulo, container.NewVBox(botones...), win)
	d.Show()
}

// DialogoEditar opens the modal edit form prefilled with the product. The
// dialog stays open while onGuardar rejects the form, so the operator can
// correct it in place. The key is shown but cannot change.
func DialogoEditar(win fyne.Window, m modelo.Mercaderia, onGuardar func(f formulario.Mercaderia) bool) {
	f := formulario.DeMercaderia(m)

	clave := widget.NewEntry()
	clave.SetText(f.Clave)
	clave.Disable()

	nombre := widget.NewEntry()
	nombre.SetText(f.Nombre)
	descripcion := widget.NewEntry()
	descripcion.SetText(f.Descripcion)
	precio := widget.NewEntry()
	precio.SetText(f.Precio)
	existencias := widget.NewEntry()
	existencias.SetText(f.Existencias)
	unidad := widget.NewEntry()
	unidad.SetText(f.TipoUnidad)

	campos := container.New(layout.NewFormLayout(),
		widget.NewLabel("Clave"), clave,
		widget.NewLabel("Nombre"), nombre,
		widget.NewLabel("Descripción"), descripcion,
		widget.NewLabel("Precio de compra"), precio,
		widget.NewLabel("Existencias"), existencias,
		widget.NewLabel("Tipo de unidad"), unidad,
	)

	var d dialog.Dialog

	guardar := widget.NewButton("Guardar", func() {
		actual := formulario.Mercaderia{
			Clave:       f.Clave,
			Nombre:      nombre.Text,
			Descripcion: descripcion.Text,
			Precio:      precio.Text,
			Existencias: existencias.Text,
			TipoUnidad:  unidad.Text,
		}
		if onGuardar(actual) {
			d.Hide()
		}
	})
	cancelar := widget.NewButton("Cancelar", func() { d.Hide() })

	contenido := container.NewVBox(campos, container.NewHBox(guardar, cancelar))
	d = dialog.NewCustomWithoutButtons("Editar mercaderia", contenido, win)
	d.Show()
}

// DialogoLogin asks for credentials before the main interface is built.
// Dismissing the dialog exits the application.
func DialogoLogin(win fyne.Window, onEntrar func(usuario, contrasena string), onSalir func()) {
	usuario := widget.NewEntry()
	contrasena := widget.NewPasswordEntry()

	items := []*widget.FormItem{
		widget.NewFormItem("Usuario", usuario),
		widget.NewFormItem("Contraseña", contrasena),
	}

	dialog.ShowForm("Iniciar sesión", "Entrar", "Salir", items, func(ok bool) {
		if !ok {
			onSalir()
			return
		}
		onEntrar(usuario.Text, contrasena.Text)
	}, win)
}
