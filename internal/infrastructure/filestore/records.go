package filestore

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jhoicas/printshop-catalog/internal/domain"
	"github.com/jhoicas/printshop-catalog/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// productRecord forma JSON de un producto en disco. Price y MinQuantity aceptan número o
// string numérico al leer y siempre se escriben como número.
type productRecord struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	MinQuantity json.Number `json:"minQuantity"`
	Category    string      `json:"category"`
	Images      []string    `json:"images"`
	Featured    bool        `json:"featured,omitempty"`
	Bestseller  bool        `json:"bestseller,omitempty"`
}

// categoryRecord forma JSON de una categoría en disco.
type categoryRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DecodeProduct interpreta el contenido de un archivo de producto. El ID lo decide el
// llamador (clave de almacenamiento); aquí se devuelve el embebido tal cual.
func DecodeProduct(data []byte) (*entity.Product, error) {
	var rec productRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRecord, err)
	}
	return rec.toEntity()
}

// EncodeProduct serializa un producto con indentación de 2 espacios.
func EncodeProduct(p *entity.Product) ([]byte, error) {
	return json.MarshalIndent(productRecordFrom(p), "", "  ")
}

// DecodeCategory interpreta el contenido de un archivo de categoría.
func DecodeCategory(data []byte) (*entity.Category, error) {
	var rec categoryRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRecord, err)
	}
	return &entity.Category{ID: entity.CategoryID(rec.ID), Name: rec.Name}, nil
}

// EncodeCategory serializa una categoría con indentación de 2 espacios.
func EncodeCategory(c *entity.Category) ([]byte, error) {
	return json.MarshalIndent(categoryRecord{ID: string(c.ID), Name: c.Name}, "", "  ")
}

func (r productRecord) toEntity() (*entity.Product, error) {
	if r.Price == "" {
		return nil, fmt.Errorf("%w: price ausente", domain.ErrInvalidRecord)
	}
	price, err := decimal.NewFromString(r.Price.String())
	if err != nil {
		return nil, fmt.Errorf("%w: price %q: %v", domain.ErrInvalidRecord, r.Price, err)
	}
	minQty := int64(1)
	if r.MinQuantity != "" {
		q, err := decimal.NewFromString(r.MinQuantity.String())
		if err != nil || !q.IsInteger() {
			return nil, fmt.Errorf("%w: minQuantity %q no es entero", domain.ErrInvalidRecord, r.MinQuantity)
		}
		minQty = q.IntPart()
	}
	images := r.Images
	if images == nil {
		images = []string{}
	}
	return &entity.Product{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Price:       price,
		MinQuantity: minQty,
		Category:    entity.CategoryID(r.Category),
		Images:      images,
		Featured:    r.Featured,
		Bestseller:  r.Bestseller,
	}, nil
}

func productRecordFrom(p *entity.Product) productRecord {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return productRecord{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       json.Number(p.Price.String()),
		MinQuantity: json.Number(strconv.FormatInt(p.MinQuantity, 10)),
		Category:    string(p.Category),
		Images:      images,
		Featured:    p.Featured,
		Bestseller:  p.Bestseller,
	}
}
