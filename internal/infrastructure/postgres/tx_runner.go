package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/printshop-catalog/internal/domain/entity"
	"github.com/jhoicas/printshop-catalog/pkg/logger"
)

// CatalogSink agrupa los dos repositorios del catálogo atados a la misma transacción.
// Solo expone las escrituras; las lecturas van por cada repo.
type CatalogSink struct {
	Products   *ProductRepo
	Categories *CategoryRepo
}

// SaveProduct upsert del producto dentro de la transacción.
func (s CatalogSink) SaveProduct(product *entity.Product) error {
	return s.Products.SaveProduct(product)
}

// SaveCategory upsert de la categoría dentro de la transacción.
func (s CatalogSink) SaveCategory(category *entity.Category) error {
	return s.Categories.SaveCategory(category)
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool, log *logger.Logger) *TxRunner {
	return &TxRunner{pool: pool, log: log}
}

// Run inicia una transacción, crea el esquema si falta, ejecuta fn con un sink atado a la tx
// y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(sink CatalogSink) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := EnsureSchema(ctx, tx); err != nil {
		return err
	}
	sink := CatalogSink{
		Products:   NewProductRepository(tx, r.log),
		Categories: NewCategoryRepository(tx),
	}
	if err := fn(sink); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
