package product_controller

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ovs-innovation/farmcykart1-sub002/catalog"
	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// queryList accepts both repeated (?brand=a&brand=b), bracketed
// (?brand[]=a) and comma separated (?brand=a,b) forms.
func queryList(c *gin.Context, name string) []string {
	raw := append(c.QueryArray(name), c.QueryArray(name+"[]")...)
	var out []string
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func queryFloat(c *gin.Context, name string) (float64, bool) {
	v, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseCriteria maps query parameters onto filter criteria. Malformed numbers
// are ignored; an unknown sort key keeps the incoming order.
func parseCriteria(c *gin.Context) models.FilterCriteria {
	criteria := models.FilterCriteria{
		Search:     c.Query("q"),
		Brands:     queryList(c, "brand"),
		Categories: queryList(c, "category"),
		Sort:       models.SortKey(c.Query("sort")),
	}

	minPrice, hasMin := queryFloat(c, "minPrice")
	maxPrice, hasMax := queryFloat(c, "maxPrice")
	if hasMin || hasMax {
		pr := models.DefaultPriceRange
		if hasMin {
			pr.Min = minPrice
		}
		if hasMax {
			pr.Max = maxPrice
		}
		criteria.PriceRange = &pr
	}

	if rating, err := strconv.Atoi(c.Query("rating")); err == nil && rating > 0 {
		criteria.MinRating = rating
	}
	if discount, ok := queryFloat(c, "discount"); ok && discount > 0 {
		criteria.MinDiscount = discount
	}
	if !catalog.IsSortKey(criteria.Sort) {
		criteria.Sort = models.SortDefault
	}
	return criteria
}

// language picks ?lang, then Accept-Language's first tag, then fallback.
func language(c *gin.Context, fallback string) string {
	if lang := c.Query("lang"); lang != "" {
		return lang
	}
	if al := c.GetHeader("Accept-Language"); al != "" {
		tag := strings.SplitN(strings.SplitN(al, ",", 2)[0], ";", 2)[0]
		if base := strings.SplitN(strings.TrimSpace(tag), "-", 2)[0]; base != "" && base != "*" {
			return strings.ToLower(base)
		}
	}
	return fallback
}

// pageOf slices one page out of a derived view.
func pageOf(products []models.Product, page, limit int) []models.Product {
	start := (page - 1) * limit
	if start >= len(products) {
		return nil
	}
	end := start + limit
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
