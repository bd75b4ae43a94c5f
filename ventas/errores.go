package ventas

import "errors"

// ErrSinExistencias signals a sale against a record whose stock is already
// zero. The record is left untouched.
var ErrSinExistencias = errors.New("la mercaderia no se encuentra en existencia")
