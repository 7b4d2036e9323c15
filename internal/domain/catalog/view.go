package catalog

import (
	"slices"
	"strings"

	"github.com/jhoicas/printshop-catalog/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// AllCategories es el centinela "sin filtro" de categoría.
const AllCategories = "all"

// SortMode orden del listado.
type SortMode string

// Modos de orden soportados.
const (
	SortFeatured  SortMode = "featured"
	SortLowToHigh SortMode = "low-to-high"
	SortHighToLow SortMode = "high-to-low"
)

// ParseSortMode convierte el valor recibido; cualquier valor desconocido es SortFeatured.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortLowToHigh:
		return SortLowToHigh
	case SortHighToLow:
		return SortHighToLow
	default:
		return SortFeatured
	}
}

// PriceRange intervalo cerrado [Low, High].
type PriceRange struct {
	Low  decimal.Decimal
	High decimal.Decimal
}

// DefaultPriceRange rango por defecto del control de precio: [0, 2000].
func DefaultPriceRange() PriceRange {
	return PriceRange{Low: decimal.Zero, High: decimal.NewFromInt(2000)}
}

// Contains indica si price está dentro del rango (inclusivo en ambos extremos).
func (r PriceRange) Contains(price decimal.Decimal) bool {
	return price.GreaterThanOrEqual(r.Low) && price.LessThanOrEqual(r.High)
}

func (r PriceRange) clamp(v decimal.Decimal) decimal.Decimal {
	return decimal.Min(decimal.Max(v, r.Low), r.High)
}

// ParsePriceRange construye un rango a partir de límites opcionales (nil = límite de bounds).
// Cada límite se recorta a [bounds.Low, bounds.High] y un rango invertido se normaliza
// intercambiando extremos, así que el resultado nunca sale de bounds.
func ParsePriceRange(low, high *decimal.Decimal, bounds PriceRange) PriceRange {
	r := bounds
	if low != nil {
		r.Low = bounds.clamp(*low)
	}
	if high != nil {
		r.High = bounds.clamp(*high)
	}
	if r.Low.GreaterThan(r.High) {
		r.Low, r.High = r.High, r.Low
	}
	return r
}

// Filter los tres filtros del listado.
type Filter struct {
	Category string // AllCategories o "" = sin filtro
	Query    string // texto libre; "" = sin filtro
	Price    PriceRange
}

// HasCategory indica si hay un filtro de categoría activo.
func (f Filter) HasCategory() bool {
	return f.Category != "" && f.Category != AllCategories
}

// Matches evalúa el predicado completo sobre un producto.
func (f Filter) Matches(p *entity.Product) bool {
	return newMatcher(f).matches(p)
}

// matcher precalcula el texto plegado de la consulta para evaluar muchos productos.
type matcher struct {
	f      Filter
	folder cases.Caser
	query  string
}

func newMatcher(f Filter) *matcher {
	m := &matcher{f: f, folder: cases.Fold()}
	if f.Query != "" {
		m.query = m.folder.String(f.Query)
	}
	return m
}

func (m *matcher) matches(p *entity.Product) bool {
	if p == nil {
		return false
	}
	if m.f.HasCategory() && string(p.Category) != m.f.Category {
		return false
	}
	if m.query != "" &&
		!strings.Contains(m.folder.String(p.Title), m.query) &&
		!strings.Contains(m.folder.String(p.Description), m.query) {
		return false
	}
	return m.f.Price.Contains(p.Price)
}

// Result resultado de aplicar la vista sobre la colección completa.
// StoreEmpty distingue "el almacén está vacío" de "ningún producto coincide".
type Result struct {
	Products   []*entity.Product
	Total      int
	StoreEmpty bool
}

// NoMatch indica que hay productos en el almacén pero ninguno pasa los filtros.
func (r Result) NoMatch() bool {
	return !r.StoreEmpty && r.Total == 0
}

// Page devuelve la ventana [offset, offset+limit) del resultado. limit <= 0 devuelve todo desde offset.
func (r Result) Page(limit, offset int) []*entity.Product {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(r.Products) {
		return []*entity.Product{}
	}
	end := len(r.Products)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return r.Products[offset:end]
}

// Apply filtra y ordena products según el estado de la vista. No modifica la entrada;
// el orden por precio es estable (empates conservan el orden de entrada).
func Apply(products []*entity.Product, state ViewState) Result {
	m := newMatcher(state.Filter)
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if m.matches(p) {
			out = append(out, p)
		}
	}
	switch state.Sort {
	case SortLowToHigh:
		slices.SortStableFunc(out, func(a, b *entity.Product) int { return a.Price.Cmp(b.Price) })
	case SortHighToLow:
		slices.SortStableFunc(out, func(a, b *entity.Product) int { return b.Price.Cmp(a.Price) })
	}
	return Result{Products: out, Total: len(out), StoreEmpty: len(products) == 0}
}
