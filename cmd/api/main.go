package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/printshop-catalog/internal/application/usecase"
	"github.com/jhoicas/printshop-catalog/internal/domain/catalog"
	"github.com/jhoicas/printshop-catalog/internal/domain/repository"
	"github.com/jhoicas/printshop-catalog/internal/infrastructure/filestore"
	"github.com/jhoicas/printshop-catalog/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/printshop-catalog/internal/interfaces/http"
	"github.com/jhoicas/printshop-catalog/pkg/config"
	"github.com/jhoicas/printshop-catalog/pkg/logger"
	"github.com/jhoicas/printshop-catalog/pkg/whatsapp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Catalog.Backend).
		Msg("iniciando aplicación")

	var (
		productRepo  repository.ProductRepository
		categoryRepo repository.CategoryRepository
	)
	switch cfg.Catalog.Backend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(context.Background(), cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		productRepo = postgres.NewProductRepository(pool, log.Named("postgres"))
		categoryRepo = postgres.NewCategoryRepository(pool)
	default:
		store := filestore.NewCatalog(cfg.Catalog.ProductsDir, cfg.Catalog.CategoriesDir, log.Named("filestore"))
		productRepo, categoryRepo = store.Products, store.Categories
		log.Info().
			Str("products_dir", cfg.Catalog.ProductsDir).
			Str("categories_dir", cfg.Catalog.CategoriesDir).
			Msg("catalog store en archivos")
	}

	catalogUC := usecase.NewCatalogUseCase(productRepo, categoryRepo, whatsapp.NewContact(cfg.WhatsApp.Phone), usecase.CatalogConfig{
		PriceRange: catalog.PriceRange{
			Low:  decimal.NewFromFloat(cfg.Catalog.PriceMin),
			High: decimal.NewFromFloat(cfg.Catalog.PriceMax),
		},
		RecentlyViewedMax: cfg.Catalog.RecentlyViewedMax,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI: http://localhost:<port>/docs (solo si existe el archivo)
	if _, err := os.Stat(cfg.HTTP.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsPath,
			Path:     "docs",
			Title:    "Printshop Catalog API",
		}))
	} else {
		log.Warn().Str("path", cfg.HTTP.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC: catalogUC,
		Log:       log.Named("catalog"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
