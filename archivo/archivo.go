// Package archivo persists a whole record collection to one local file per
// collection name. There is no incremental writing: the application loads
// everything at startup and saves everything at shutdown.
package archivo

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

// Ruta returns the file backing the named collection inside dir.
func Ruta(dir, nombre string) string {
	return filepath.Join(dir, nombre+".dat")
}

// Cargar reads the named collection. A file that does not exist yet is not
// an error: the collection simply starts empty. Any other failure is
// reported and the caller treats the collection as absent.
func Cargar[T any](dir, nombre string) ([]T, error) {
	f, err := os.Open(Ruta(dir, nombre))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("abrir %s: %w", nombre, err)
	}
	defer f.Close()

	var registros []T
	if err := gob.NewDecoder(f).Decode(&registros); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", nombre, err)
	}
	return registros, nil
}

// Guardar writes the whole collection. It encodes into a temporary file and
// renames it over the target, so a failed save leaves the previous file on
// disk unchanged.
func Guardar[T any](dir, nombre string, registros []T) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, nombre+"-*.tmp")
	if err != nil {
		return fmt.Errorf("crear temporal de %s: %w", nombre, err)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(registros); err != nil {
		tmp.Close()
		return fmt.Errorf("codificar %s: %w", nombre, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar temporal de %s: %w", nombre, err)
	}
	if err := os.Rename(tmp.Name(), Ruta(dir, nombre)); err != nil {
		return fmt.Errorf("guardar %s: %w", nombre, err)
	}
	return nil
}
