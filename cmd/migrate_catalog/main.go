// migrate_catalog convierte el módulo de datos legado (products.ts) en el Catalog Store:
// un archivo JSON por producto y por categoría, o filas en PostgreSQL con -sink postgres.
//
// Uso: go run ./cmd/migrate_catalog [-source src/lib/products.ts] [-sink file|postgres] [-dry-run]
// Se ejecuta a mano, una vez. Termina con código 1 ante cualquier error.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/printshop-catalog/internal/application/migration"
	"github.com/jhoicas/printshop-catalog/internal/infrastructure/filestore"
	"github.com/jhoicas/printshop-catalog/internal/infrastructure/legacy"
	"github.com/jhoicas/printshop-catalog/internal/infrastructure/postgres"
	"github.com/jhoicas/printshop-catalog/pkg/config"
	"github.com/jhoicas/printshop-catalog/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "migrate_catalog: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	source := flag.String("source", "src/lib/products.ts", "módulo de datos legado")
	encoding := flag.String("encoding", "utf-8", "codificación del módulo legado (utf-8 | latin1)")
	productsDir := flag.String("products-dir", cfg.Catalog.ProductsDir, "directorio destino de productos")
	categoriesDir := flag.String("categories-dir", cfg.Catalog.CategoriesDir, "directorio destino de categorías")
	sinkName := flag.String("sink", config.BackendFile, "destino: file | postgres")
	dryRun := flag.Bool("dry-run", false, "solo interpreta y valida, no escribe")
	flag.Parse()

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Named("migrate")

	enc, err := legacy.ParseEncoding(*encoding)
	if err != nil {
		return err
	}
	src := legacy.NewSource(*source).WithEncoding(enc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var report *migration.Report
	switch *sinkName {
	case config.BackendFile:
		sink := filestore.NewCatalog(*productsDir, *categoriesDir, log)
		report, err = migration.NewUseCase(src, sink, log).Run(ctx, *dryRun)
	case config.BackendPostgres:
		pool, perr := postgres.NewPool(ctx, cfg.DB)
		if perr != nil {
			return perr
		}
		defer pool.Close()
		// En PostgreSQL la migración completa va en una transacción.
		err = postgres.NewTxRunner(pool, log).Run(ctx, func(sink postgres.CatalogSink) error {
			var rerr error
			report, rerr = migration.NewUseCase(src, sink, log).Run(ctx, *dryRun)
			return rerr
		})
	default:
		return fmt.Errorf("sink desconocido: %q", *sinkName)
	}
	if err != nil {
		return err
	}

	log.Info().
		Str("source", *source).
		Str("sink", *sinkName).
		Bool("dry_run", report.DryRun).
		Int("products", report.ProductsWritten).
		Int("categories", report.CategoriesWritten).
		Int("duplicates", len(report.DuplicateIDs)).
		Int("dangling_categories", len(report.DanglingCategories)).
		Msg("migración terminada")
	return nil
}
