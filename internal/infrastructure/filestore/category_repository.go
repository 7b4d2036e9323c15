package filestore

import (
	"github.com/jhoicas/printshop-catalog/internal/domain/entity"
	"github.com/jhoicas/printshop-catalog/internal/domain/repository"
	"github.com/jhoicas/printshop-catalog/pkg/logger"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.CategoryWriter     = (*CategoryRepo)(nil)
)

// CategoryRepo implementación del puerto CategoryRepository sobre un directorio de archivos JSON.
type CategoryRepo struct {
	dir string
	log *logger.Logger
}

// NewCategoryRepository construye el adaptador sobre dir.
func NewCategoryRepository(dir string, log *logger.Logger) *CategoryRepo {
	return &CategoryRepo{dir: dir, log: log}
}

// List lee todas las categorías del directorio en orden de listado.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	categories := make([]*entity.Category, 0)
	err := readDir(r.dir, r.log, func(key string, data []byte) error {
		c, err := DecodeCategory(data)
		if err != nil {
			return err
		}
		if c.ID != "" && string(c.ID) != key {
			r.log.Warn().Str("file", key+recordExt).Str("embedded_id", string(c.ID)).
				Msg("id embebido distinto del nombre de archivo, se usa el nombre de archivo")
		}
		c.ID = entity.CategoryID(key)
		categories = append(categories, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// SaveCategory escribe la categoría en <dir>/<id>.json (sobrescribe si existe).
func (r *CategoryRepo) SaveCategory(category *entity.Category) error {
	data, err := EncodeCategory(category)
	if err != nil {
		return err
	}
	return writeRecord(r.dir, string(category.ID), data)
}
