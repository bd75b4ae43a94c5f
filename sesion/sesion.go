// Package sesion carries the capability context the GUI attaches to the
// running window. The core packages never consult it; only the boundary
// decides which actions to expose.
package sesion

import "golang.org/x/crypto/bcrypt"

type Sesion struct {
	Usuario string
	Admin   bool
}

// Autenticar resolves a session from the typed credentials and the
// configured admin user. Anything that does not match the admin credentials
// yields a read-only session; login never fails outright.
func Autenticar(usuario, contrasena, adminUser, adminHash string) Sesion {
	s := Sesion{Usuario: usuario}
	if adminUser == "" || adminHash == "" {
		return s
	}
	if usuario != adminUser {
		return s
	}
	if err := bcrypt.CompareHashAndPassword([]byte(adminHash), []byte(contrasena)); err != nil {
		return s
	}
	s.Admin = true
	return s
}
