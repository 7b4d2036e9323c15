package catalog

import (
	"encoding/json"

	"github.com/jhoicas/printshop-catalog/internal/domain/entity"
)

const (
	// RecentlyViewedKey nombre fijo bajo el que el cliente persiste la lista.
	RecentlyViewedKey = "recentlyViewed"
	// DefaultRecentlyViewedMax tamaño máximo de la lista.
	DefaultRecentlyViewedMax = 8
)

// ViewStorage puerto de persistencia local del cliente para la lista de IDs vistos.
type ViewStorage interface {
	Read() ([]string, error)
	Write(ids []string) error
	Clear() error
}

// RecentlyViewed mantiene un conjunto ordenado (más reciente primero) de IDs de producto.
type RecentlyViewed struct {
	storage ViewStorage
	max     int
}

// NewRecentlyViewed construye el tracker. maxItems <= 0 usa DefaultRecentlyViewedMax.
func NewRecentlyViewed(storage ViewStorage, maxItems int) *RecentlyViewed {
	if maxItems <= 0 {
		maxItems = DefaultRecentlyViewedMax
	}
	return &RecentlyViewed{storage: storage, max: maxItems}
}

// IDs devuelve la lista persistida. Un valor ausente o corrupto se trata como lista vacía.
func (r *RecentlyViewed) IDs() []string {
	ids, err := r.storage.Read()
	if err != nil {
		return []string{}
	}
	return r.normalize(ids)
}

// RecordView antepone id, elimina su aparición previa, trunca al máximo y persiste.
func (r *RecentlyViewed) RecordView(id string) ([]string, error) {
	prev := r.IDs()
	if id == "" {
		return prev, nil
	}
	ids := make([]string, 0, len(prev)+1)
	ids = append(ids, id)
	for _, pid := range prev {
		if pid != id {
			ids = append(ids, pid)
		}
	}
	if len(ids) > r.max {
		ids = ids[:r.max]
	}
	if err := r.storage.Write(ids); err != nil {
		return prev, err
	}
	return ids, nil
}

// Resolve traduce los IDs a productos de la colección dada, descartando IDs que ya no
// existen y conservando el orden de recencia.
func (r *RecentlyViewed) Resolve(products []*entity.Product) []*entity.Product {
	return ResolveIDs(r.IDs(), products)
}

// Clear elimina la lista persistida.
func (r *RecentlyViewed) Clear() error {
	return r.storage.Clear()
}

// normalize quita vacíos y duplicados y aplica el máximo, por si el valor se escribió a mano.
func (r *RecentlyViewed) normalize(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
		if len(out) == r.max {
			break
		}
	}
	return out
}

// ResolveIDs mapea ids a productos conservando el orden de ids.
func ResolveIDs(ids []string, products []*entity.Product) []*entity.Product {
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		if _, ok := byID[p.ID]; !ok {
			byID[p.ID] = p
		}
	}
	out := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// EncodeIDs serializa la lista como arreglo JSON (formato del valor persistido).
func EncodeIDs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeIDs interpreta el valor persistido. "" es una lista vacía.
func DecodeIDs(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// MemoryViewStorage almacenamiento clave/valor en memoria con la misma forma que el del
// navegador: guarda el JSON crudo bajo RecentlyViewedKey.
type MemoryViewStorage struct {
	values map[string]string
}

// NewMemoryViewStorage crea un almacenamiento vacío.
func NewMemoryViewStorage() *MemoryViewStorage {
	return &MemoryViewStorage{values: make(map[string]string)}
}

// SetRaw escribe el valor crudo tal cual (útil para simular datos corruptos).
func (m *MemoryViewStorage) SetRaw(raw string) {
	m.values[RecentlyViewedKey] = raw
}

// Raw devuelve el valor crudo persistido.
func (m *MemoryViewStorage) Raw() string {
	return m.values[RecentlyViewedKey]
}

func (m *MemoryViewStorage) Read() ([]string, error) {
	return DecodeIDs(m.values[RecentlyViewedKey])
}

func (m *MemoryViewStorage) Write(ids []string) error {
	raw, err := EncodeIDs(ids)
	if err != nil {
		return err
	}
	m.values[RecentlyViewedKey] = raw
	return nil
}

func (m *MemoryViewStorage) Clear() error {
	delete(m.values, RecentlyViewedKey)
	return nil
}
