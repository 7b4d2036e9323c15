package repository

import "github.com/jhoicas/printshop-catalog/internal/domain/entity"

// CategoryRepository define el puerto de lectura del Catalog Store para Category (DIP).
type CategoryRepository interface {
	List() ([]*entity.Category, error)
}

// CategoryWriter persiste una categoría bajo su ID (usado solo por la migración).
type CategoryWriter interface {
	SaveCategory(category *entity.Category) error
}
