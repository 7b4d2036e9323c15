package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/printshop-catalog/internal/domain/entity"
	"github.com/jhoicas/printshop-catalog/internal/domain/repository"
	"github.com/jhoicas/printshop-catalog/pkg/logger"
)

var (
	_ repository.ProductRepository = (*ProductRepo)(nil)
	_ repository.ProductWriter     = (*ProductRepo)(nil)
)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q   Querier
	log *logger.Logger
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier, log *logger.Logger) *ProductRepo {
	return &ProductRepo{q: q, log: log}
}

// List devuelve todos los productos ordenados por ID (equivalente al orden por nombre de archivo).
// Las filas que no pasan la validación se omiten con una advertencia.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT id, title, description, price, min_quantity, category, images, featured, bestseller
		FROM catalog_products ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		if isUndefinedTable(err) {
			return []*entity.Product{}, nil
		}
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Product, 0)
	for rows.Next() {
		var (
			p        entity.Product
			category string
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.MinQuantity,
			&category, &p.Images, &p.Featured, &p.Bestseller); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Category = entity.CategoryID(category)
		if p.Images == nil {
			p.Images = []string{}
		}
		if err := p.Validate(); err != nil {
			r.log.Warn().Str("id", p.ID).Err(err).Msg("producto inválido omitido")
			continue
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

// SaveProduct inserta o reemplaza el producto con el mismo ID.
func (r *ProductRepo) SaveProduct(product *entity.Product) error {
	query := `
		INSERT INTO catalog_products (id, title, description, price, min_quantity, category, images, featured, bestseller, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, description = EXCLUDED.description, price = EXCLUDED.price,
			min_quantity = EXCLUDED.min_quantity, category = EXCLUDED.category, images = EXCLUDED.images,
			featured = EXCLUDED.featured, bestseller = EXCLUDED.bestseller, updated_at = now()`
	images := product.Images
	if images == nil {
		images = []string{}
	}
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Title, product.Description, product.Price, product.MinQuantity,
		string(product.Category), images, product.Featured, product.Bestseller,
	)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}
