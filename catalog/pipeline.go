package catalog

import (
	"strings"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

type predicate func(*item) bool

// DeriveView filters and orders products according to criteria. It never
// fails: products missing optional data simply do not match identifier
// filters and count as zero for numeric ones.
func DeriveView(products []models.Product, criteria models.FilterCriteria) []models.Product {
	return Normalize(products).View(criteria)
}

// View applies criteria to the snapshot. The returned slice is newly
// allocated; its elements are copies of the snapshot's products.
func (s *Snapshot) View(criteria models.FilterCriteria) []models.Product {
	if s.Len() == 0 {
		return []models.Product{}
	}

	stages := buildStages(criteria)
	kept := make([]*item, 0, len(s.items))
	for i := range s.items {
		it := &s.items[i]
		if matchesAll(it, stages) {
			kept = append(kept, it)
		}
	}

	sortItems(kept, criteria.Sort)

	out := make([]models.Product, len(kept))
	for i, it := range kept {
		out[i] = *it.Product
	}
	return out
}

func matchesAll(it *item, stages []predicate) bool {
	for _, keep := range stages {
		if !keep(it) {
			return false
		}
	}
	return true
}

// buildStages returns the active predicates, cheapest first. The stages are
// conjunctive so their order only changes cost.
func buildStages(c models.FilterCriteria) []predicate {
	stages := make([]predicate, 0, 6)

	pr := c.EffectivePriceRange()
	stages = append(stages, func(it *item) bool { return pr.Contains(it.price) })

	if c.MinRating > 0 {
		min := float64(c.MinRating)
		stages = append(stages, func(it *item) bool { return it.rating >= min })
	}
	if c.MinDiscount > 0 {
		min := c.MinDiscount
		stages = append(stages, func(it *item) bool { return it.discount >= min })
	}
	if brands := toSet(c.Brands); len(brands) > 0 {
		stages = append(stages, func(it *item) bool {
			if it.brandID == "" {
				return false
			}
			_, ok := brands[it.brandID]
			return ok
		})
	}
	if cats := toSet(c.Categories); len(cats) > 0 {
		stages = append(stages, func(it *item) bool {
			for _, id := range it.categoryIDs {
				if _, ok := cats[id]; ok {
					return true
				}
			}
			return false
		})
	}
	if q := strings.ToLower(strings.TrimSpace(c.Search)); q != "" {
		stages = append(stages, func(it *item) bool {
			for _, text := range it.searchText {
				if strings.Contains(text, q) {
					return true
				}
			}
			return false
		})
	}
	return stages
}

// toSet drops blank members; a set with no usable members disables its stage.
func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}
