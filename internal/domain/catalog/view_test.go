package catalog_test

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/printshop-catalog/internal/domain/catalog"
	"github.com/jhoicas/printshop-catalog/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func product(id string, category entity.CategoryID, price int64, title string) *entity.Product {
	return &entity.Product{
		ID:          id,
		Title:       title,
		Description: "Impresión premium " + id,
		Price:       decimal.NewFromInt(price),
		MinQuantity: 1,
		Category:    category,
		Images:      []string{"/images/" + id + ".jpg"},
	}
}

// Escenario base: A(wedding-cards, 500), B(photo-frames, 1500), C(wedding-cards, 200).
func scenario() []*entity.Product {
	return []*entity.Product{
		product("A", entity.CategoryWeddingCards, 500, "Wedding Card Elite"),
		product("B", entity.CategoryPhotoFrames, 1500, "Photo Frame Deluxe"),
		product("C", entity.CategoryWeddingCards, 200, "Floral Wedding Card"),
	}
}

func ids(products []*entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func defaultState() catalog.ViewState {
	return catalog.DefaultViewState(catalog.DefaultPriceRange())
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_SinFiltrosConservaOrdenDelAlmacen(t *testing.T) {
	res := catalog.Apply(scenario(), defaultState())

	assert.Equal(t, []string{"A", "B", "C"}, ids(res.Products))
	assert.Equal(t, 3, res.Total)
	assert.False(t, res.StoreEmpty)
	assert.False(t, res.NoMatch())
}

func TestApply_FiltroCategoriaYOrdenAscendente(t *testing.T) {
	state := defaultState()
	state.SetCategory(string(entity.CategoryWeddingCards))

	res := catalog.Apply(scenario(), state)
	assert.Equal(t, []string{"A", "C"}, ids(res.Products))

	state.Sort = catalog.SortLowToHigh
	res = catalog.Apply(scenario(), state)
	assert.Equal(t, []string{"C", "A"}, ids(res.Products))
}

func TestApply_BusquedaTextoSinDistinguirMayusculas(t *testing.T) {
	state := defaultState()
	state.Query = "frame"

	res := catalog.Apply(scenario(), state)
	assert.Equal(t, []string{"B"}, ids(res.Products), "Photo Frame Deluxe debe coincidir, Wedding Card Elite no")

	state.Query = "FRAME"
	res = catalog.Apply(scenario(), state)
	assert.Equal(t, []string{"B"}, ids(res.Products))
}

func TestApply_BusquedaEnDescripcion(t *testing.T) {
	products := scenario()
	products[0].Description = "Tarjetas con lámina dorada"
	state := defaultState()
	state.Query = "LÁMINA"

	res := catalog.Apply(products, state)
	assert.Equal(t, []string{"A"}, ids(res.Products))
}

func TestApply_RangoDePrecioInclusivo(t *testing.T) {
	state := defaultState()
	state.Price = catalog.PriceRange{Low: decimal.NewFromInt(200), High: decimal.NewFromInt(500)}

	res := catalog.Apply(scenario(), state)
	assert.Equal(t, []string{"A", "C"}, ids(res.Products), "los extremos del rango son inclusivos")
}

func TestApply_NoModificaLaEntrada(t *testing.T) {
	products := scenario()
	state := defaultState()
	state.Sort = catalog.SortHighToLow

	_ = catalog.Apply(products, state)
	assert.Equal(t, []string{"A", "B", "C"}, ids(products))
}

func TestApply_FiltroIdempotente(t *testing.T) {
	state := defaultState()
	state.Query = "wedding"
	state.Price = catalog.PriceRange{Low: decimal.NewFromInt(100), High: decimal.NewFromInt(1000)}

	once := catalog.Apply(scenario(), state)
	twice := catalog.Apply(once.Products, state)
	assert.Equal(t, ids(once.Products), ids(twice.Products))
}

func TestApply_OrdenEstableEnAmbasDirecciones(t *testing.T) {
	products := []*entity.Product{
		product("p1", entity.CategoryAlbums, 300, "Album uno"),
		product("p2", entity.CategoryAlbums, 100, "Album dos"),
		product("p3", entity.CategoryAlbums, 300, "Album tres"),
		product("p4", entity.CategoryAlbums, 100, "Album cuatro"),
		product("p5", entity.CategoryAlbums, 200, "Album cinco"),
	}
	state := defaultState()

	state.Sort = catalog.SortLowToHigh
	asc := catalog.Apply(products, state)
	assert.Equal(t, []string{"p2", "p4", "p5", "p1", "p3"}, ids(asc.Products))

	state.Sort = catalog.SortHighToLow
	desc := catalog.Apply(products, state)
	assert.Equal(t, []string{"p1", "p3", "p5", "p2", "p4"}, ids(desc.Products),
		"los empates conservan el orden relativo de entrada también en descendente")
}

func TestApply_DistingueAlmacenVacioDeSinCoincidencias(t *testing.T) {
	empty := catalog.Apply(nil, defaultState())
	assert.True(t, empty.StoreEmpty)
	assert.False(t, empty.NoMatch())
	assert.NotNil(t, empty.Products)

	state := defaultState()
	state.Query = "no existe"
	none := catalog.Apply(scenario(), state)
	assert.False(t, none.StoreEmpty)
	assert.True(t, none.NoMatch())
}

func TestApply_CategoriaHuerfanaSoloEnTodos(t *testing.T) {
	products := append(scenario(), product("D", entity.CategoryID("calendars"), 100, "Desk Calendar"))

	all := catalog.Apply(products, defaultState())
	assert.Contains(t, ids(all.Products), "D")

	for _, c := range entity.KnownCategories() {
		state := defaultState()
		state.SetCategory(string(c))
		assert.NotContains(t, ids(catalog.Apply(products, state).Products), "D")
	}
}

func TestResult_Page(t *testing.T) {
	res := catalog.Apply(scenario(), defaultState())

	assert.Equal(t, []string{"A", "B"}, ids(res.Page(2, 0)))
	assert.Equal(t, []string{"C"}, ids(res.Page(2, 2)))
	assert.Empty(t, res.Page(2, 10))
	assert.Equal(t, []string{"B", "C"}, ids(res.Page(0, 1)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Estado de la vista y token de filtro
// ──────────────────────────────────────────────────────────────────────────────

func TestViewState_Reset(t *testing.T) {
	state := defaultState()
	state.SetCategory("albums")
	state.Query = "album"
	state.Price = catalog.PriceRange{Low: decimal.NewFromInt(10), High: decimal.NewFromInt(20)}
	state.Sort = catalog.SortHighToLow
	require.False(t, state.IsDefault())

	state.Reset()

	assert.True(t, state.IsDefault())
	assert.Equal(t, catalog.AllCategories, state.Category)
	assert.Equal(t, "", state.Query)
	assert.Equal(t, catalog.SortFeatured, state.Sort)
	assert.True(t, state.Price.High.Equal(decimal.NewFromInt(2000)))
}

func TestViewState_TokenSinFiltroNoEscribeCentinela(t *testing.T) {
	state := defaultState()
	state.SetCategory("photo-frames")
	assert.Equal(t, "category=photo-frames", state.Token().Encode())

	state.SetCategory(catalog.AllCategories)
	assert.Equal(t, "", state.Token().Encode())
}

func TestWithCategory_ConservaOtrosParametros(t *testing.T) {
	in := url.Values{"q": {"card"}, "category": {"albums"}}

	out := catalog.WithCategory(in, "wedding-cards")
	assert.Equal(t, "wedding-cards", out.Get("category"))
	assert.Equal(t, "card", out.Get("q"))
	assert.Equal(t, "albums", in.Get("category"), "la entrada no se modifica")

	cleared := catalog.WithCategory(out, catalog.AllCategories)
	_, present := cleared["category"]
	assert.False(t, present)
	assert.Equal(t, "card", cleared.Get("q"))
}

func TestCategoryFromQuery(t *testing.T) {
	assert.Equal(t, catalog.AllCategories, catalog.CategoryFromQuery(url.Values{}))
	assert.Equal(t, "albums", catalog.CategoryFromQuery(url.Values{"category": {"albums"}}))
}

func TestParseSortMode(t *testing.T) {
	cases := map[string]catalog.SortMode{
		"":            catalog.SortFeatured,
		"featured":    catalog.SortFeatured,
		"low-to-high": catalog.SortLowToHigh,
		"high-to-low": catalog.SortHighToLow,
		"price-desc":  catalog.SortFeatured,
	}
	for in, want := range cases {
		assert.Equal(t, want, catalog.ParseSortMode(in), "entrada %q", in)
	}
}

func TestParsePriceRange(t *testing.T) {
	bounds := catalog.DefaultPriceRange()
	d := func(v int64) *decimal.Decimal { x := decimal.NewFromInt(v); return &x }

	r := catalog.ParsePriceRange(nil, nil, bounds)
	assert.True(t, r.Low.Equal(decimal.Zero))
	assert.True(t, r.High.Equal(decimal.NewFromInt(2000)))

	r = catalog.ParsePriceRange(d(-50), d(5000), bounds)
	assert.True(t, r.Low.Equal(decimal.Zero), "se recorta al límite inferior")
	assert.True(t, r.High.Equal(decimal.NewFromInt(2000)), "se recorta al límite superior")

	r = catalog.ParsePriceRange(d(900), d(100), bounds)
	assert.True(t, r.Low.Equal(decimal.NewFromInt(100)))
	assert.True(t, r.High.Equal(decimal.NewFromInt(900)))

	r = catalog.ParsePriceRange(d(3000), nil, bounds)
	assert.True(t, r.Low.Equal(decimal.NewFromInt(2000)), "un mínimo sobre el máximo se recorta al máximo")
	assert.True(t, r.High.Equal(decimal.NewFromInt(2000)))

	r = catalog.ParsePriceRange(nil, d(-10), bounds)
	assert.True(t, r.Low.Equal(decimal.Zero))
	assert.True(t, r.High.Equal(decimal.Zero), "un máximo bajo el mínimo se recorta al mínimo")
}

func TestParsePriceRange_NuncaSaleDelRangoConfigurado(t *testing.T) {
	bounds := catalog.DefaultPriceRange()
	values := []int64{-500, 0, 700, 2000, 3000}
	for _, lo := range values {
		for _, hi := range values {
			low, high := decimal.NewFromInt(lo), decimal.NewFromInt(hi)
			r := catalog.ParsePriceRange(&low, &high, bounds)
			assert.True(t, r.Low.GreaterThanOrEqual(bounds.Low), "low=%d high=%d", lo, hi)
			assert.True(t, r.High.LessThanOrEqual(bounds.High), "low=%d high=%d", lo, hi)
			assert.True(t, r.Low.LessThanOrEqual(r.High), "low=%d high=%d", lo, hi)
		}
	}
}
