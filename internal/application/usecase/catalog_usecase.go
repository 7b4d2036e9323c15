package usecase

import (
	"github.com/jhoicas/printshop-catalog/internal/application/dto"
	"github.com/jhoicas/printshop-catalog/internal/domain/catalog"
	"github.com/jhoicas/printshop-catalog/internal/domain/entity"
	"github.com/jhoicas/printshop-catalog/internal/domain/repository"
	"github.com/jhoicas/printshop-catalog/pkg/whatsapp"
)

// CatalogConfig parámetros de la vista y del tracker.
type CatalogConfig struct {
	PriceRange        catalog.PriceRange
	RecentlyViewedMax int
}

// CatalogUseCase capa de acceso a datos del catálogo. Cada operación relee el almacén,
// así que siempre refleja el estado actual en disco.
type CatalogUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	contact    *whatsapp.Contact
	cfg        CatalogConfig
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	contact *whatsapp.Contact,
	cfg CatalogConfig,
) *CatalogUseCase {
	if cfg.RecentlyViewedMax <= 0 {
		cfg.RecentlyViewedMax = catalog.DefaultRecentlyViewedMax
	}
	return &CatalogUseCase{products: products, categories: categories, contact: contact, cfg: cfg}
}

// ListProducts devuelve todos los productos en orden del almacén.
func (uc *CatalogUseCase) ListProducts() ([]dto.ProductResponse, error) {
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListCategories devuelve todas las categorías en orden del almacén.
func (uc *CatalogUseCase) ListCategories() ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoryResponse{ID: string(c.ID), Name: c.Name})
	}
	return items, nil
}

// GetProductByID busca por coincidencia exacta de ID. Devuelve nil, nil si no existe.
func (uc *CatalogUseCase) GetProductByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.findProduct(id)
	if err != nil || p == nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// GetFeaturedProducts devuelve los productos con featured=true en orden del almacén.
func (uc *CatalogUseCase) GetFeaturedProducts() ([]dto.ProductResponse, error) {
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	featured := make([]*entity.Product, 0, len(list))
	for _, p := range list {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return toProductResponses(featured), nil
}

// DefaultViewState estado inicial de la vista con el rango de precio configurado.
func (uc *CatalogUseCase) DefaultViewState() catalog.ViewState {
	return catalog.DefaultViewState(uc.cfg.PriceRange)
}

// Browse aplica filtros, orden y paginación sobre la colección completa.
func (uc *CatalogUseCase) Browse(in dto.BrowseRequest) (*dto.ProductListResponse, error) {
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	in.DefaultPage()

	state := uc.DefaultViewState()
	state.SetCategory(in.Category)
	state.Query = in.Query
	state.Price = catalog.ParsePriceRange(in.MinPrice, in.MaxPrice, uc.cfg.PriceRange)
	state.Sort = catalog.ParseSortMode(in.Sort)

	res := catalog.Apply(list, state)
	return &dto.ProductListResponse{
		Items: toProductResponses(res.Page(in.Limit, in.Offset)),
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: res.Total},
		Filter: dto.AppliedFilter{
			Category: state.Category,
			Query:    state.Query,
			MinPrice: state.Price.Low,
			MaxPrice: state.Price.High,
			Sort:     string(state.Sort),
			Token:    state.Token().Encode(),
		},
		StoreEmpty: res.StoreEmpty,
		NoMatch:    res.NoMatch(),
	}, nil
}

// ViewProduct obtiene el detalle de un producto y lo registra como visto en storage.
// Devuelve nil, nil si no existe (no se registra nada).
func (uc *CatalogUseCase) ViewProduct(id string, storage catalog.ViewStorage) (*dto.ProductDetailResponse, error) {
	p, err := uc.findProduct(id)
	if err != nil || p == nil {
		return nil, err
	}
	if _, err := uc.tracker(storage).RecordView(p.ID); err != nil {
		return nil, err
	}
	return &dto.ProductDetailResponse{
		Product:    toProductResponse(p),
		InquiryURL: uc.contact.ProductInquiry(p.Title, p.Price),
	}, nil
}

// RecentlyViewed resuelve los IDs vistos contra el almacén actual, más reciente primero.
// exclude omite un ID (el producto que se está mostrando).
func (uc *CatalogUseCase) RecentlyViewed(storage catalog.ViewStorage, exclude string) ([]dto.ProductResponse, error) {
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	resolved := uc.tracker(storage).Resolve(list)
	out := make([]*entity.Product, 0, len(resolved))
	for _, p := range resolved {
		if p.ID != exclude {
			out = append(out, p)
		}
	}
	return toProductResponses(out), nil
}

// ClearRecentlyViewed borra la lista persistida.
func (uc *CatalogUseCase) ClearRecentlyViewed(storage catalog.ViewStorage) error {
	return uc.tracker(storage).Clear()
}

// ContactLink enlace de contacto general.
func (uc *CatalogUseCase) ContactLink() dto.ContactResponse {
	return dto.ContactResponse{URL: uc.contact.General()}
}

func (uc *CatalogUseCase) tracker(storage catalog.ViewStorage) *catalog.RecentlyViewed {
	return catalog.NewRecentlyViewed(storage, uc.cfg.RecentlyViewedMax)
}

func (uc *CatalogUseCase) findProduct(id string) (*entity.Product, error) {
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return items
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return dto.ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		MinQuantity: p.MinQuantity,
		Category:    string(p.Category),
		Images:      images,
		Featured:    p.Featured,
		Bestseller:  p.Bestseller,
	}
}
