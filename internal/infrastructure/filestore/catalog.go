package filestore

import (
	"github.com/jhoicas/printshop-catalog/internal/domain/entity"
	"github.com/jhoicas/printshop-catalog/internal/domain/repository"
	"github.com/jhoicas/printshop-catalog/pkg/logger"
)

var (
	_ repository.ProductWriter  = Catalog{}
	_ repository.CategoryWriter = Catalog{}
)

// Catalog agrupa los repositorios de productos y categorías de un mismo almacén.
// Expone solo las escrituras (destino de la migración); las lecturas van por cada repo.
type Catalog struct {
	Products   *ProductRepo
	Categories *CategoryRepo
}

// NewCatalog construye ambos repositorios.
func NewCatalog(productsDir, categoriesDir string, log *logger.Logger) Catalog {
	return Catalog{
		Products:   NewProductRepository(productsDir, log),
		Categories: NewCategoryRepository(categoriesDir, log),
	}
}

// SaveProduct escribe en el directorio de productos.
func (c Catalog) SaveProduct(product *entity.Product) error {
	return c.Products.SaveProduct(product)
}

// SaveCategory escribe en el directorio de categorías.
func (c Catalog) SaveCategory(category *entity.Category) error {
	return c.Categories.SaveCategory(category)
}
