package catalogo

import "errors"

// ErrNoEncontrada is returned when a lookup misses so the boundary can tell
// the operator which record was asked for.
var ErrNoEncontrada = errors.New("la mercaderia no existe en el inventario")

// ErrClaveDuplicada rejects an add whose clave is already in the catalog.
var ErrClaveDuplicada = errors.New("una mercaderia con esta clave ya existe en el sistema")
