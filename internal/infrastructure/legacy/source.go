package legacy

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jhoicas/printshop-catalog/internal/domain"
	"github.com/jhoicas/printshop-catalog/internal/domain/entity"
	"github.com/jhoicas/printshop-catalog/internal/infrastructure/filestore"
)

// numericFields campos de producto que pueden venir como string en el módulo legado.
var numericFields = []string{"price", "minQuantity"}

// Source lee el módulo legado desde disco y lo convierte en entidades.
type Source struct {
	path     string
	encoding Encoding
}

// NewSource construye la fuente sobre el archivo .ts indicado (UTF-8).
func NewSource(path string) *Source {
	return &Source{path: path, encoding: EncodingUTF8}
}

// WithEncoding cambia la codificación con la que se lee el archivo.
func (s *Source) WithEncoding(enc Encoding) *Source {
	s.encoding = enc
	return s
}

// Load lee, parsea y decodifica el módulo. Cualquier error aborta sin resultados parciales.
func (s *Source) Load(ctx context.Context) ([]*entity.Product, []*entity.Category, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("leer módulo legado: %w", err)
	}
	src, err := toUTF8(raw, s.encoding)
	if err != nil {
		return nil, nil, err
	}
	mod, err := Parse(ctx, src)
	if err != nil {
		return nil, nil, err
	}
	return mod.Decode()
}

// Decode convierte los valores planos en entidades, normalizando price y minQuantity a número.
func (m *Module) Decode() ([]*entity.Product, []*entity.Category, error) {
	products := make([]*entity.Product, 0, len(m.Products))
	for i, v := range m.Products {
		p, err := decodeProduct(v)
		if err != nil {
			return nil, nil, fmt.Errorf("products[%d]: %w", i, err)
		}
		products = append(products, p)
	}
	categories := make([]*entity.Category, 0, len(m.Categories))
	for i, v := range m.Categories {
		c, err := decodeCategory(v)
		if err != nil {
			return nil, nil, fmt.Errorf("categories[%d]: %w", i, err)
		}
		categories = append(categories, c)
	}
	return products, categories, nil
}

func decodeProduct(v any) (*entity.Product, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: se esperaba un objeto", domain.ErrInvalidRecord)
	}
	if err := requireID(obj); err != nil {
		return nil, err
	}
	for _, field := range numericFields {
		if s, ok := obj[field].(string); ok {
			obj[field] = json.Number(strings.TrimSpace(s))
		}
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRecord, err)
	}
	p, err := filestore.DecodeProduct(data)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeCategory(v any) (*entity.Category, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: se esperaba un objeto", domain.ErrInvalidRecord)
	}
	if err := requireID(obj); err != nil {
		return nil, err
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRecord, err)
	}
	return filestore.DecodeCategory(data)
}

func requireID(obj map[string]any) error {
	id, ok := obj["id"].(string)
	if !ok || id == "" {
		return fmt.Errorf("%w: id ausente o no es string", domain.ErrInvalidRecord)
	}
	return nil
}
