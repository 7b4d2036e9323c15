package dto

import "github.com/shopspring/decimal"

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	MinQuantity int64           `json:"minQuantity"`
	Category    string          `json:"category"`
	Images      []string        `json:"images"`
	Featured    bool            `json:"featured"`
	Bestseller  bool            `json:"bestseller"`
}

// ProductDetailResponse producto con su enlace de consulta por WhatsApp.
type ProductDetailResponse struct {
	Product    ProductResponse `json:"product"`
	InquiryURL string          `json:"inquiry_url"`
}

// BrowseRequest filtros, orden y paginación del listado. Los límites de precio nil usan
// el rango por defecto.
type BrowseRequest struct {
	Category string           `query:"category"`
	Query    string           `query:"q"`
	MinPrice *decimal.Decimal `query:"min_price"`
	MaxPrice *decimal.Decimal `query:"max_price"`
	Sort     string           `query:"sort"`
	PageRequest
}

// AppliedFilter eco del estado efectivo de la vista.
type AppliedFilter struct {
	Category string          `json:"category"`
	Query    string          `json:"q"`
	MinPrice decimal.Decimal `json:"min_price"`
	MaxPrice decimal.Decimal `json:"max_price"`
	Sort     string          `json:"sort"`
	Token    string          `json:"token"` // query string compartible; vacío sin filtro de categoría
}

// ProductListResponse lista paginada y filtrada de productos.
// StoreEmpty y NoMatch distinguen "almacén vacío" de "ningún producto coincide".
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Page       PageResponse      `json:"page"`
	Filter     AppliedFilter     `json:"filter"`
	StoreEmpty bool              `json:"store_empty"`
	NoMatch    bool              `json:"no_match"`
}
