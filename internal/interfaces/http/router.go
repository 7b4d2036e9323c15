package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/printshop-catalog/internal/application/usecase"
	"github.com/jhoicas/printshop-catalog/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *usecase.CatalogUseCase
	Log       *logger.Logger
}

// Router registra las rutas de la API. Todas son públicas y de solo lectura, salvo el borrado
// de la cookie de vistos.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	h := NewCatalogHandler(deps.CatalogUC, deps.Log)

	api.Get("/categories", h.ListCategories)

	products := api.Group("/products")
	products.Get("/", h.ListProducts)
	products.Get("/featured", h.Featured) // antes de /:id
	products.Get("/:id", h.GetByID)

	api.Get("/recently-viewed", h.RecentlyViewed)
	api.Delete("/recently-viewed", h.ClearRecentlyViewed)

	api.Get("/contact", h.Contact)
}
