package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/printshop-catalog/internal/domain/entity"
	"github.com/jhoicas/printshop-catalog/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.CategoryWriter     = (*CategoryRepo)(nil)
)

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// List devuelve todas las categorías ordenadas por ID.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM catalog_categories ORDER BY id`)
	if err != nil {
		if isUndefinedTable(err) {
			return []*entity.Category{}, nil
		}
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Category, 0)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &entity.Category{ID: entity.CategoryID(id), Name: name})
	}
	return list, rows.Err()
}

// SaveCategory inserta o reemplaza la categoría con el mismo ID.
func (r *CategoryRepo) SaveCategory(category *entity.Category) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO catalog_categories (id, name, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, updated_at = now()`,
		string(category.ID), category.Name,
	)
	if err != nil {
		return fmt.Errorf("upsert category: %w", err)
	}
	return nil
}
