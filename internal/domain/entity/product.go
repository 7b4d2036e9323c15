package entity

import (
	"fmt"

	"github.com/jhoicas/printshop-catalog/internal/domain"
	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo (un archivo por producto en el Catalog Store).
// ID es la clave de almacenamiento; Price es por unidad y MinQuantity es el pedido mínimo.
type Product struct {
	ID          string
	Title       string
	Description string
	Price       decimal.Decimal
	MinQuantity int64
	Category    CategoryID
	Images      []string // orden de la galería
	Featured    bool     // aparece en la página de inicio
	Bestseller  bool     // solo insignia visual
}

// Validate verifica las restricciones del modelo que no expresa el tipo de Go.
func (p *Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: id vacío", domain.ErrInvalidRecord)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price negativo (%s)", domain.ErrInvalidRecord, p.Price)
	}
	if p.MinQuantity < 1 {
		return fmt.Errorf("%w: minQuantity debe ser positivo (%d)", domain.ErrInvalidRecord, p.MinQuantity)
	}
	return nil
}

// CoverImage devuelve la primera imagen de la galería o "" si no hay imágenes.
func (p *Product) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
