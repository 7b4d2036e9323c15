package catalog

import "net/url"

// CategoryParam nombre del parámetro de query que transporta el filtro de categoría.
const CategoryParam = "category"

// ViewState entradas de la vista del listado: filtros y orden.
// El rango de precio por defecto se conserva para Reset.
type ViewState struct {
	Filter
	Sort SortMode

	defaultPrice PriceRange
}

// DefaultViewState estado inicial: sin categoría, sin texto, rango completo y orden featured.
func DefaultViewState(priceRange PriceRange) ViewState {
	return ViewState{
		Filter:       Filter{Category: AllCategories, Price: priceRange},
		Sort:         SortFeatured,
		defaultPrice: priceRange,
	}
}

// Reset limpia los tres filtros y el orden a sus valores por defecto.
func (s *ViewState) Reset() {
	*s = DefaultViewState(s.defaultPrice)
}

// DefaultPrice rango de precio al que vuelve Reset.
func (s ViewState) DefaultPrice() PriceRange {
	return s.defaultPrice
}

// IsDefault indica si el estado coincide con el de Reset.
func (s ViewState) IsDefault() bool {
	return !s.HasCategory() && s.Query == "" && s.Sort == SortFeatured &&
		s.Price.Low.Equal(s.defaultPrice.Low) && s.Price.High.Equal(s.defaultPrice.High)
}

// SetCategory cambia el filtro de categoría; "" y AllCategories significan sin filtro.
func (s *ViewState) SetCategory(id string) {
	if id == "" {
		id = AllCategories
	}
	s.Category = id
}

// Token devuelve la representación compartible del filtro de categoría.
// Sin filtro no hay parámetro (nunca se escribe el centinela).
func (s ViewState) Token() url.Values {
	return WithCategory(url.Values{}, s.Category)
}

// CategoryFromQuery lee el filtro de categoría de la query; ausente o vacío = AllCategories.
func CategoryFromQuery(values url.Values) string {
	if c := values.Get(CategoryParam); c != "" {
		return c
	}
	return AllCategories
}

// WithCategory devuelve una copia de values con el filtro de categoría actualizado.
// Para AllCategories (o "") el parámetro se elimina.
func WithCategory(values url.Values, category string) url.Values {
	out := make(url.Values, len(values)+1)
	for k, v := range values {
		out[k] = append([]string(nil), v...)
	}
	if category == "" || category == AllCategories {
		out.Del(CategoryParam)
	} else {
		out.Set(CategoryParam, category)
	}
	return out
}
