package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ProductStatusActive = "Active"
	ProductStatusDraft  = "Draft"

	DefaultLanguage = "en"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// LocalizedText maps a language code to its text, e.g. {"en": "Widget"}.
type LocalizedText map[string]string

// Resolve returns the text for lang, falling back to English and then to the
// alphabetically first language present.
func (t LocalizedText) Resolve(lang string) string {
	if len(t) == 0 {
		return ""
	}
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	if v, ok := t[DefaultLanguage]; ok && v != "" {
		return v
	}
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if t[k] != "" {
			return t[k]
		}
	}
	return ""
}

// Values returns every translation, ordered by language code.
func (t LocalizedText) Values() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, t[k])
	}
	return out
}

func (t *LocalizedText) Scan(value interface{}) error {
	if value == nil {
		*t = LocalizedText{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan LocalizedText")
	}
	return json.Unmarshal(bytes, t)
}

func (t LocalizedText) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal(map[string]string{})
	}
	return json.Marshal(t)
}

// Prices is the price block shown on product cards. Discount is 0 when the
// product is not on sale.
type Prices struct {
	Price         float64 `json:"price" gorm:"column:price;type:numeric(12,2);not null;default:0"`
	OriginalPrice float64 `json:"originalPrice" gorm:"column:original_price;type:numeric(12,2);not null;default:0"`
	Discount      float64 `json:"discount" gorm:"column:discount;type:numeric(12,2);not null;default:0"`
}

// UnitPrice is the sale price, or the original price when no sale price is set.
func (p Prices) UnitPrice() float64 {
	if p.Price != 0 {
		return p.Price
	}
	return p.OriginalPrice
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID            uuid.UUID                   `json:"_id" gorm:"type:uuid;primaryKey"`
	Title         LocalizedText               `json:"title" gorm:"type:jsonb;not null;default:'{}'"`
	Slug          string                      `json:"slug,omitempty" gorm:"index"`
	BrandID       *uuid.UUID                  `json:"-" gorm:"type:uuid;index"`
	Brand         *Brand                      `json:"brand" gorm:"foreignKey:BrandID;references:ID"`
	CategoryID    *uuid.UUID                  `json:"-" gorm:"type:uuid;index"`
	Category      *Category                   `json:"category" gorm:"foreignKey:CategoryID;references:ID"`
	Categories    []Category                  `json:"categories,omitempty" gorm:"many2many:product_categories"`
	Images        datatypes.JSONSlice[string] `json:"image" gorm:"type:jsonb;not null;default:'[]'"`
	Prices        Prices                      `json:"prices" gorm:"embedded"`
	AverageRating float64                     `json:"averageRating" gorm:"type:numeric(3,2);not null;default:0"`
	Stock         int                         `json:"stock" gorm:"not null;default:0"`
	Sales         int                         `json:"sales" gorm:"not null;default:0;index:idx_products_sales,sort:desc"`
	Status        string                      `json:"status" gorm:"not null;default:'Active';check:status IN ('Active', 'Draft');index"`
	CreatedAt     time.Time                   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt     time.Time                   `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// FirstImage returns the first image URL or "".
func (p *Product) FirstImage() string {
	if p == nil || len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Brand is referenced by products; it carries no behaviour of its own.
type Brand struct {
	ID        uuid.UUID `json:"_id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"-" gorm:"autoCreateTime"`
}

func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Brand) TableName() string {
	return "brands"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Title         map[string]string `json:"title" binding:"required" example:"{\"en\":\"Widget\"}"`
	Slug          string            `json:"slug"`
	BrandID       *uuid.UUID        `json:"brand_id"`
	CategoryID    *uuid.UUID        `json:"category_id"`
	CategoryIDs   []uuid.UUID       `json:"category_ids"`
	Images        []string          `json:"image"`
	Price         float64           `json:"price" binding:"min=0" example:"10"`
	OriginalPrice float64           `json:"original_price" binding:"min=0" example:"12"`
	Stock         int               `json:"stock" binding:"min=0" example:"50"`
	Status        string            `json:"status" binding:"omitempty,oneof=Active Draft" example:"Active"`
}

// ToProduct builds the persisted model, deriving the discount from the two prices.
func (r ProductRequest) ToProduct() Product {
	status := r.Status
	if status == "" {
		status = ProductStatusDraft
	}
	discount := 0.0
	if r.OriginalPrice > r.Price && r.Price > 0 {
		discount = r.OriginalPrice - r.Price
	}
	p := Product{
		Title:      LocalizedText(r.Title),
		Slug:       r.Slug,
		BrandID:    r.BrandID,
		CategoryID: r.CategoryID,
		Images:     datatypes.JSONSlice[string](r.Images),
		Prices: Prices{
			Price:         r.Price,
			OriginalPrice: r.OriginalPrice,
			Discount:      discount,
		},
		Stock:  r.Stock,
		Status: status,
	}
	if p.Images == nil {
		p.Images = datatypes.JSONSlice[string]{}
	}
	for _, id := range r.CategoryIDs {
		p.Categories = append(p.Categories, Category{ID: id})
	}
	return p
}
