package migration

import (
	"context"

	"github.com/jhoicas/printshop-catalog/internal/domain/entity"
	"github.com/jhoicas/printshop-catalog/internal/domain/repository"
)

// Source entrega el catálogo completo del módulo legado. Debe fallar sin resultados
// parciales si falta alguno de los dos arreglos o alguno no se puede interpretar.
type Source interface {
	Load(ctx context.Context) ([]*entity.Product, []*entity.Category, error)
}

// Sink destino de la migración: un registro por elemento, clave = ID.
type Sink interface {
	repository.ProductWriter
	repository.CategoryWriter
}
