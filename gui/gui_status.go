package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the last operation result on the left and the active
// session on the right.
type StatusBar struct {
	container *fyne.Container
	status    *widget.Label
	sesion    *widget.Label
}

func NewStatusBar() *StatusBar {
	s := &StatusBar{
		status: widget.NewLabel("Listo"),
		sesion: widget.NewLabel(""),
	}
	s.container = container.NewBorder(nil, nil, s.status, s.sesion)
	return s
}

func (s *StatusBar) GetContainer() *fyne.Container {
	return s.container
}

func (s *StatusBar) SetStatus(status string) {
	s.status.SetText(status)
}

func (s *StatusBar) SetSesion(usuario string, admin bool) {
	modo := "solo lectura"
	if admin {
		modo = "administrador"
	}
	s.sesion.SetText(fmt.Sprintf("%s (%s)", usuario, modo))
}
