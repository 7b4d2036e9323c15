package migration

import (
	"context"
	"fmt"

	"github.com/jhoicas/printshop-catalog/internal/domain/entity"
	"github.com/jhoicas/printshop-catalog/pkg/logger"
)

// Report resumen de una ejecución.
type Report struct {
	ProductsFound      int
	CategoriesFound    int
	ProductsWritten    int
	CategoriesWritten  int
	DuplicateIDs       []string
	DanglingCategories map[string]entity.CategoryID // producto -> categoría inexistente
	DryRun             bool
}

// UseCase migra el módulo legado al Catalog Store. Se ejecuta una sola vez y a mano.
// Es idempotente por elemento pero no atómico: si una escritura falla, los archivos ya
// escritos en la misma ejecución quedan en disco.
type UseCase struct {
	source Source
	sink   Sink
	log    *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(source Source, sink Sink, log *logger.Logger) *UseCase {
	return &UseCase{source: source, sink: sink, log: log}
}

// Run carga todo el módulo antes de escribir nada; luego escribe productos y categorías.
// Con dryRun solo valida y reporta.
func (uc *UseCase) Run(ctx context.Context, dryRun bool) (*Report, error) {
	products, categories, err := uc.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar módulo legado: %w", err)
	}
	report := &Report{
		ProductsFound:      len(products),
		CategoriesFound:    len(categories),
		DanglingCategories: make(map[string]entity.CategoryID),
		DryRun:             dryRun,
	}
	uc.log.Info().Int("products", len(products)).Int("categories", len(categories)).Msg("módulo legado interpretado")

	uc.check(products, categories, report)
	if dryRun {
		return report, nil
	}

	for _, p := range products {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := uc.sink.SaveProduct(p); err != nil {
			return report, fmt.Errorf("escribir producto %s: %w", p.ID, err)
		}
		report.ProductsWritten++
	}
	uc.log.Info().Int("written", report.ProductsWritten).Msg("productos migrados")

	for _, c := range categories {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := uc.sink.SaveCategory(c); err != nil {
			return report, fmt.Errorf("escribir categoría %s: %w", c.ID, err)
		}
		report.CategoriesWritten++
	}
	uc.log.Info().Int("written", report.CategoriesWritten).Msg("categorías migradas")
	return report, nil
}

// check registra advertencias que no detienen la migración: IDs repetidos (el último
// sobrescribe al anterior) y productos cuya categoría no existe.
func (uc *UseCase) check(products []*entity.Product, categories []*entity.Category, report *Report) {
	known := make(map[entity.CategoryID]struct{}, len(categories))
	for _, c := range categories {
		if _, dup := known[c.ID]; dup {
			report.DuplicateIDs = append(report.DuplicateIDs, "categories/"+string(c.ID))
			uc.log.Warn().Str("category", string(c.ID)).Msg("id de categoría repetido, el último sobrescribe")
		}
		known[c.ID] = struct{}{}
	}
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if _, dup := seen[p.ID]; dup {
			report.DuplicateIDs = append(report.DuplicateIDs, "products/"+p.ID)
			uc.log.Warn().Str("product", p.ID).Msg("id de producto repetido, el último sobrescribe")
		}
		seen[p.ID] = struct{}{}
		if _, ok := known[p.Category]; !ok {
			report.DanglingCategories[p.ID] = p.Category
			uc.log.Warn().Str("product", p.ID).Str("category", string(p.Category)).
				Msg("la categoría del producto no existe; no aparecerá bajo ningún filtro")
		}
	}
}
