// Package catalog derives filtered, ordered views of the product catalog.
package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// item is a product with every optional field resolved to its default, so
// that filter stages never have to check for missing data.
type item struct {
	Product *models.Product

	searchText  []string
	brandID     string
	categoryIDs []string
	price       float64
	rating      float64
	discount    float64
	sales       int
	createdAt   time.Time
}

// Snapshot is a normalized catalog. It is immutable once built and safe for
// concurrent use.
type Snapshot struct {
	items []item
}

// Normalize builds a snapshot of products. A nil or empty input yields an
// empty snapshot.
func Normalize(products []models.Product) *Snapshot {
	s := &Snapshot{items: make([]item, len(products))}
	for i := range products {
		s.items[i] = normalizeOne(&products[i])
	}
	return s
}

// Len is the number of products in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

func normalizeOne(p *models.Product) item {
	it := item{
		Product:   p,
		price:     p.Prices.Price,
		rating:    p.AverageRating,
		discount:  p.Prices.Discount,
		sales:     p.Sales,
		createdAt: p.CreatedAt,
	}

	for _, title := range p.Title.Values() {
		if title != "" {
			it.searchText = append(it.searchText, strings.ToLower(title))
		}
	}
	if p.Brand != nil {
		it.brandID = idString(p.Brand.ID)
		if p.Brand.Name != "" {
			it.searchText = append(it.searchText, strings.ToLower(p.Brand.Name))
		}
	}
	if p.Category != nil {
		if id := idString(p.Category.ID); id != "" {
			it.categoryIDs = append(it.categoryIDs, id)
		}
		if p.Category.Name != "" {
			it.searchText = append(it.searchText, strings.ToLower(p.Category.Name))
		}
	}
	for _, c := range p.Categories {
		if id := idString(c.ID); id != "" {
			it.categoryIDs = append(it.categoryIDs, id)
		}
		if c.Name != "" {
			it.searchText = append(it.searchText, strings.ToLower(c.Name))
		}
	}
	return it
}

// idString renders an identifier, treating the zero UUID as absent.
func idString(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
