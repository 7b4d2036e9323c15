package filestore

import (
	"github.com/jhoicas/printshop-catalog/internal/domain/entity"
	"github.com/jhoicas/printshop-catalog/internal/domain/repository"
	"github.com/jhoicas/printshop-catalog/pkg/logger"
)

var (
	_ repository.ProductRepository = (*ProductRepo)(nil)
	_ repository.ProductWriter     = (*ProductRepo)(nil)
)

// ProductRepo implementación del puerto ProductRepository sobre un directorio de archivos JSON.
type ProductRepo struct {
	dir string
	log *logger.Logger
}

// NewProductRepository construye el adaptador sobre dir (un archivo <id>.json por producto).
func NewProductRepository(dir string, log *logger.Logger) *ProductRepo {
	return &ProductRepo{dir: dir, log: log}
}

// List lee todos los productos del directorio en orden de listado.
// El nombre del archivo es la fuente de verdad del ID.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	products := make([]*entity.Product, 0)
	err := readDir(r.dir, r.log, func(key string, data []byte) error {
		p, err := DecodeProduct(data)
		if err != nil {
			return err
		}
		if p.ID != "" && p.ID != key {
			r.log.Warn().Str("file", key+recordExt).Str("embedded_id", p.ID).
				Msg("id embebido distinto del nombre de archivo, se usa el nombre de archivo")
		}
		p.ID = key
		if err := p.Validate(); err != nil {
			return err
		}
		products = append(products, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// SaveProduct escribe el producto en <dir>/<id>.json (sobrescribe si existe).
func (r *ProductRepo) SaveProduct(product *entity.Product) error {
	data, err := EncodeProduct(product)
	if err != nil {
		return err
	}
	return writeRecord(r.dir, product.ID, data)
}
