package catalog

import (
	"sort"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// SortProducts returns a stably sorted copy of products. Unknown keys keep the
// incoming order.
func SortProducts(products []models.Product, key models.SortKey) []models.Product {
	s := Normalize(products)
	items := make([]*item, len(s.items))
	for i := range s.items {
		items[i] = &s.items[i]
	}
	sortItems(items, key)

	out := make([]models.Product, len(items))
	for i, it := range items {
		out[i] = *it.Product
	}
	return out
}

// IsSortKey reports whether key names a known ordering.
func IsSortKey(key models.SortKey) bool {
	return less(key) != nil || key == models.SortDefault || key == "default"
}

func sortItems(items []*item, key models.SortKey) {
	cmp := less(key)
	if cmp == nil {
		return
	}
	sort.SliceStable(items, func(i, j int) bool { return cmp(items[i], items[j]) })
}

func less(key models.SortKey) func(a, b *item) bool {
	switch key {
	case models.SortPriceLow:
		return func(a, b *item) bool { return a.price < b.price }
	case models.SortPriceHigh:
		return func(a, b *item) bool { return a.price > b.price }
	case models.SortNewest:
		return func(a, b *item) bool { return a.createdAt.After(b.createdAt) }
	case models.SortBestSelling:
		return func(a, b *item) bool { return a.sales > b.sales }
	case models.SortMostDiscounted:
		return func(a, b *item) bool { return a.discount > b.discount }
	default:
		return nil
	}
}
