package filestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/printshop-catalog/internal/domain"
	"github.com/jhoicas/printshop-catalog/pkg/logger"
)

const recordExt = ".json"

// readDir recorre los archivos *.json de dir en orden de listado y entrega cada uno a fn
// junto con su clave (nombre sin extensión). Un directorio inexistente no es error; un
// archivo ilegible o que fn rechaza se omite con un warning.
func readDir(dir string, log *logger.Logger, fn func(key string, data []byte) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("leer directorio %s: %w", dir, err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, recordExt) {
			continue
		}
		key := strings.TrimSuffix(name, recordExt)
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn().Err(err).Str("file", name).Msg("no se pudo leer el registro, se omite")
			continue
		}
		if err := fn(key, data); err != nil {
			log.Warn().Err(err).Str("file", name).Msg("registro inválido, se omite")
			continue
		}
	}
	return nil
}

// writeRecord escribe data en dir/<key>.json creando el directorio si no existe.
// Sobrescribe un archivo existente con el mismo nombre.
func writeRecord(dir, key string, data []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	path := filepath.Join(dir, key+recordExt)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	return nil
}

// validKey impide que un ID escape del directorio del almacén.
func validKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("%w: clave de almacenamiento %q", domain.ErrInvalidInput, key)
	}
	return nil
}
