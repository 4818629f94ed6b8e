// models/filters.go
package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// SortKey selects the ordering of a catalog view.
type SortKey string

const (
	SortDefault        SortKey = ""
	SortPriceLow       SortKey = "Low"
	SortPriceHigh      SortKey = "High"
	SortNewest         SortKey = "newest"
	SortBestSelling    SortKey = "best-selling"
	SortMostDiscounted SortKey = "most-discounted"
)

// PriceRange is a closed interval.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DefaultPriceRange applies when no range is given.
var DefaultPriceRange = PriceRange{Min: 0, Max: 100000}

// Contains reports whether price lies in [Min, Max].
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// FilterCriteria are the user-selected constraints of a catalog view. The zero
// value constrains nothing except the default price range.
type FilterCriteria struct {
	Search      string      `json:"q,omitempty"`
	Brands      []string    `json:"brands,omitempty"`
	Categories  []string    `json:"categories,omitempty"`
	PriceRange  *PriceRange `json:"priceRange,omitempty"`
	MinRating   int         `json:"rating,omitempty"`
	MinDiscount float64     `json:"discount,omitempty"`
	Sort        SortKey     `json:"sort,omitempty"`
}

// EffectivePriceRange returns the configured range or the default one.
func (c FilterCriteria) EffectivePriceRange() PriceRange {
	if c.PriceRange == nil {
		return DefaultPriceRange
	}
	return *c.PriceRange
}

// Key is a canonical string for the criteria, usable as a memo key. Set
// members are sorted so that selection order does not matter.
func (c FilterCriteria) Key() string {
	pr := c.EffectivePriceRange()
	norm := FilterCriteria{
		Search:      strings.ToLower(strings.TrimSpace(c.Search)),
		Brands:      sortedSet(c.Brands),
		Categories:  sortedSet(c.Categories),
		PriceRange:  &pr,
		MinRating:   c.MinRating,
		MinDiscount: c.MinDiscount,
		Sort:        c.Sort,
	}
	key, err := json.Marshal(norm)
	if err != nil {
		// NaN or Inf bounds; %#v quotes every string field
		return fmt.Sprintf("%#v|%v", norm, pr)
	}
	return string(key)
}

func sortedSet(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	cp := append([]string(nil), in...)
	sort.Strings(cp)
	return cp
}

// FilterMetadata represents all filter data for the storefront
type FilterMetadata struct {
	Brands     []FilterOption `json:"brands"`
	Categories []CategoryData `json:"categories"`
	PriceRange *PriceRange    `json:"priceRange"`
}

// FilterOption is a selectable facet value with the number of active products carrying it.
type FilterOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CategoryData represents a category with optional subcategories
type CategoryData struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	ParentID      string         `json:"parentId,omitempty"`
	Subcategories []CategoryData `json:"subcategories,omitempty"`
}
