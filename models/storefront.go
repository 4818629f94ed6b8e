// ════════════════════════════════════════════════════════════
// STOREFRONT MODELS
// File: models/storefront.go
// ════════════════════════════════════════════════════════════

package models

import "time"

// ProductCard is the thin listing shape returned by the catalog endpoint.
type ProductCard struct {
	ID            string    `json:"_id"`
	Title         string    `json:"title"`
	Image         string    `json:"image"`
	Brand         string    `json:"brand,omitempty"`
	Category      string    `json:"category,omitempty"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice"`
	Discount      float64   `json:"discount"`
	AverageRating float64   `json:"averageRating"`
	Stock         int       `json:"stock"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToCard resolves the product title in lang and flattens references.
func (p *Product) ToCard(lang string) ProductCard {
	card := ProductCard{
		ID:            p.ID.String(),
		Title:         p.Title.Resolve(lang),
		Image:         p.FirstImage(),
		Price:         p.Prices.Price,
		OriginalPrice: p.Prices.OriginalPrice,
		Discount:      p.Prices.Discount,
		AverageRating: p.AverageRating,
		Stock:         p.Stock,
		CreatedAt:     p.CreatedAt,
	}
	if p.Brand != nil {
		card.Brand = p.Brand.Name
	}
	if p.Category != nil {
		card.Category = p.Category.Name
	}
	return card
}
