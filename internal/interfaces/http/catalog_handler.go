package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/printshop-catalog/internal/application/dto"
	"github.com/jhoicas/printshop-catalog/internal/application/usecase"
	"github.com/jhoicas/printshop-catalog/internal/domain/catalog"
	"github.com/jhoicas/printshop-catalog/pkg/logger"
)

// CatalogHandler expone el catálogo en modo solo lectura.
type CatalogHandler struct {
	uc  *usecase.CatalogUseCase
	log *logger.Logger
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, log: log}
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   dto.CategoryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories()
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(out)
}

// ListProducts godoc
// @Summary      Listar productos con filtros
// @Tags         catalog
// @Produce      json
// @Param        category   query  string  false  "ID de categoría o all"
// @Param        q          query  string  false  "Texto en título o descripción"
// @Param        min_price  query  number  false  "Precio mínimo"
// @Param        max_price  query  number  false  "Precio máximo"
// @Param        sort       query  string  false  "featured | low-to-high | high-to-low"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	in, err := parseBrowseRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}
	out, err := h.uc.Browse(in)
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(out)
}

// Featured godoc
// @Summary      Productos destacados
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/featured [get]
func (h *CatalogHandler) Featured(c *fiber.Ctx) error {
	out, err := h.uc.GetFeaturedProducts()
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de producto
// @Description  Registra el producto en la cookie recentlyViewed.
// @Tags         catalog
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	id, err := url.PathUnescape(c.Params("id"))
	if err != nil || id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "id inválido"})
	}
	out, err := h.uc.ViewProduct(id, NewCookieViewStorage(c))
	if err != nil {
		return h.internal(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// RecentlyViewed godoc
// @Summary      Vistos recientemente
// @Tags         catalog
// @Produce      json
// @Param        exclude  query  string  false  "ID a omitir"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/recently-viewed [get]
func (h *CatalogHandler) RecentlyViewed(c *fiber.Ctx) error {
	out, err := h.uc.RecentlyViewed(NewCookieViewStorage(c), c.Query("exclude"))
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(out)
}

// ClearRecentlyViewed godoc
// @Summary      Borrar vistos recientemente
// @Tags         catalog
// @Success      204
// @Router       /api/recently-viewed [delete]
func (h *CatalogHandler) ClearRecentlyViewed(c *fiber.Ctx) error {
	if err := h.uc.ClearRecentlyViewed(NewCookieViewStorage(c)); err != nil {
		return h.internal(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Contact godoc
// @Summary      Enlace de contacto por WhatsApp
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.ContactResponse
// @Router       /api/contact [get]
func (h *CatalogHandler) Contact(c *fiber.Ctx) error {
	return c.JSON(h.uc.ContactLink())
}

func (h *CatalogHandler) internal(c *fiber.Ctx, err error) error {
	h.log.Error().Err(err).Str("path", c.Path()).Msg("error leyendo el catálogo")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

// parseBrowseRequest lee filtros y paginación de la query. La categoría se toma del
// parámetro de filtro compartible; los límites de precio no numéricos son un error.
func parseBrowseRequest(c *fiber.Ctx) (dto.BrowseRequest, error) {
	values, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return dto.BrowseRequest{}, err
	}
	in := dto.BrowseRequest{
		Category: catalog.CategoryFromQuery(values),
		Query:    values.Get("q"),
		Sort:     values.Get("sort"),
		PageRequest: dto.PageRequest{
			Limit:  c.QueryInt("limit", dto.DefaultLimit),
			Offset: c.QueryInt("offset", 0),
		},
	}
	if in.MinPrice, err = parsePrice(values.Get("min_price")); err != nil {
		return dto.BrowseRequest{}, err
	}
	if in.MaxPrice, err = parsePrice(values.Get("max_price")); err != nil {
		return dto.BrowseRequest{}, err
	}
	return in, nil
}

func parsePrice(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
