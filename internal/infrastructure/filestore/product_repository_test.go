package filestore_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/printshop-catalog/internal/domain/entity"
	"github.com/jhoicas/printshop-catalog/internal/infrastructure/filestore"
	"github.com/jhoicas/printshop-catalog/pkg/logger"
)

// writeFile escribe un archivo de fixture en dir.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestProductRepo_DirectorioInexistenteEsColeccionVacia(t *testing.T) {
	repo := filestore.NewProductRepository(filepath.Join(t.TempDir(), "no-existe"), logger.Nop())

	products, err := repo.List()
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductRepo_ListAplicaDefaultsYOrdenDeListado(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b-frame.json", `{
		"id": "b-frame", "title": "Photo Frame Deluxe", "description": "Marco",
		"price": 1500, "minQuantity": 1, "category": "photo-frames",
		"images": ["/img/b1.jpg", "/img/b2.jpg"], "featured": true
	}`)
	writeFile(t, dir, "a-card.json", `{
		"title": "Wedding Card Elite", "description": "Tarjeta",
		"price": "500", "minQuantity": "100", "category": "wedding-cards"
	}`)
	writeFile(t, dir, "README.md", "no es un registro")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0o755))

	repo := filestore.NewProductRepository(dir, logger.Nop())
	products, err := repo.List()
	require.NoError(t, err)
	require.Len(t, products, 2)

	a := products[0]
	assert.Equal(t, "a-card", a.ID, "sin id embebido se deriva del nombre de archivo")
	assert.True(t, a.Price.Equal(decimal.NewFromInt(500)), "price en string se convierte a número")
	assert.Equal(t, int64(100), a.MinQuantity)
	assert.False(t, a.Featured)
	assert.False(t, a.Bestseller)
	assert.NotNil(t, a.Images)
	assert.Empty(t, a.Images)

	b := products[1]
	assert.Equal(t, "b-frame", b.ID)
	assert.True(t, b.Featured)
	assert.Equal(t, []string{"/img/b1.jpg", "/img/b2.jpg"}, b.Images)
	assert.Equal(t, "/img/b1.jpg", b.CoverImage())
}

func TestProductRepo_RegistroMalformadoSeOmiteYSeRegistra(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.json", `{"title": "Album", "price": 900, "minQuantity": 1, "category": "albums", "images": []}`)
	writeFile(t, dir, "roto.json", `{"title": "Album", "price": `)
	writeFile(t, dir, "tipo.json", `{"title": 42, "price": 10}`)
	writeFile(t, dir, "negativo.json", `{"title": "x", "price": -1}`)
	writeFile(t, dir, "sin-precio.json", `{"title": "x"}`)
	writeFile(t, dir, "fraccion.json", `{"title": "x", "price": 1, "minQuantity": 2.5}`)
	writeFile(t, dir, "cero.json", `{"title": "x", "price": 1, "minQuantity": 0}`)

	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})
	repo := filestore.NewProductRepository(dir, log)

	products, err := repo.List()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "ok", products[0].ID)

	for _, name := range []string{"roto.json", "tipo.json", "negativo.json", "sin-precio.json", "fraccion.json", "cero.json"} {
		assert.Contains(t, buf.String(), name, "el archivo omitido debe aparecer en el log")
	}
}

func TestProductRepo_ClaveDeAlmacenamientoPrevaleceSobreIDEmbebido(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "real-id.json", `{"id": "otro-id", "title": "x", "price": 1, "minQuantity": 1, "category": "albums"}`)

	products, err := filestore.NewProductRepository(dir, logger.Nop()).List()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "real-id", products[0].ID)
}

func TestProductRepo_SaveYListIdaYVuelta(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "products")
	repo := filestore.NewProductRepository(dir, logger.Nop())
	in := &entity.Product{
		ID:          "royal-invite",
		Title:       "Royal Invite",
		Description: "Tarjeta con sello de lacre",
		Price:       decimal.RequireFromString("45.5"),
		MinQuantity: 50,
		Category:    entity.CategoryWeddingCards,
		Images:      []string{"/a.jpg"},
		Bestseller:  true,
	}

	require.NoError(t, repo.SaveProduct(in))
	require.NoError(t, repo.SaveProduct(in), "sobrescribir es válido")

	raw, err := os.ReadFile(filepath.Join(dir, "royal-invite.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"price": 45.5`)
	assert.Contains(t, string(raw), `"minQuantity": 50`)
	assert.Contains(t, string(raw), "\n  \"title\"", "salida indentada con 2 espacios")

	out, err := repo.List()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, in.ID, out[0].ID)
	assert.Equal(t, in.Title, out[0].Title)
	assert.True(t, in.Price.Equal(out[0].Price))
	assert.Equal(t, in.MinQuantity, out[0].MinQuantity)
	assert.Equal(t, in.Images, out[0].Images)
	assert.True(t, out[0].Bestseller)
}

func TestProductRepo_SaveRechazaClavesPeligrosas(t *testing.T) {
	repo := filestore.NewProductRepository(t.TempDir(), logger.Nop())

	for _, id := range []string{"", "..", "a/b", `a\b`} {
		err := repo.SaveProduct(&entity.Product{ID: id, Price: decimal.Zero})
		assert.Error(t, err, "id %q", id)
	}
}

func TestProductRepo_ReflejaCambiosEnDisco(t *testing.T) {
	dir := t.TempDir()
	repo := filestore.NewProductRepository(dir, logger.Nop())
	writeFile(t, dir, "uno.json", `{"title": "uno", "price": 1}`)

	first, err := repo.List()
	require.NoError(t, err)
	require.Len(t, first, 1)

	writeFile(t, dir, "dos.json", `{"title": "dos", "price": 2}`)
	second, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, second, 2, "cada lectura refleja el estado actual del disco")
}
