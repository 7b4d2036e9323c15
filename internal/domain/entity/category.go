package entity

// CategoryID identificador de categoría; es el valor de filtro y la clave de almacenamiento.
type CategoryID string

// Categorías conocidas del negocio.
const (
	CategoryWeddingCards  CategoryID = "wedding-cards"
	CategoryVisitingCards CategoryID = "visiting-cards"
	CategoryPhotoFrames   CategoryID = "photo-frames"
	CategoryAlbums        CategoryID = "albums"
)

// KnownCategories devuelve la enumeración cerrada de categorías en orden de menú.
func KnownCategories() []CategoryID {
	return []CategoryID{CategoryWeddingCards, CategoryVisitingCards, CategoryPhotoFrames, CategoryAlbums}
}

// IsKnown indica si el valor pertenece a la enumeración.
func (c CategoryID) IsKnown() bool {
	for _, k := range KnownCategories() {
		if c == k {
			return true
		}
	}
	return false
}

// Category representa una categoría de productos.
type Category struct {
	ID   CategoryID
	Name string
}
