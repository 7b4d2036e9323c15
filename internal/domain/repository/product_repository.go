package repository

import "github.com/jhoicas/printshop-catalog/internal/domain/entity"

// ProductRepository define el puerto de lectura del Catalog Store para Product (DIP).
// List relee el almacén completo en cada llamada; no hay caché que mantener coherente.
type ProductRepository interface {
	List() ([]*entity.Product, error)
}

// ProductWriter persiste un producto bajo su ID (usado solo por la migración).
type ProductWriter interface {
	SaveProduct(product *entity.Product) error
}
