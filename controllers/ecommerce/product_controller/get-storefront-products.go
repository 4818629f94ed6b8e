package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ovs-innovation/farmcykart1-sub002/middleware"
	"github.com/ovs-innovation/farmcykart1-sub002/models"
	"github.com/ovs-innovation/farmcykart1-sub002/services"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products
// @Description Filtered, sorted and paginated catalog view
// @Tags store
// @Produce json
// @Param q query string false "Search text (title, brand, category)"
// @Param brand query []string false "Brand IDs (repeatable ?brand=ID&brand=ID)"
// @Param category query []string false "Category IDs (repeatable ?category=ID&category=ID)"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param rating query int false "Minimum average rating"
// @Param discount query number false "Minimum discount"
// @Param sort query string false "Sort key" Enums(Low, High, newest, best-selling, most-discounted)
// @Param scope query string false "Category ID the listing is opened from"
// @Param lang query string false "Title language" default(en)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products [get]
func (h *Handler) GetStorefrontProducts(c *gin.Context) {
	scope := c.Query("scope")
	criteria := parseCriteria(c)
	page, limit := parsePagination(c)
	lang := language(c, h.lang)

	products, version, err := h.catalog.Get(c.Request.Context(), scope)
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid scope"))
			return
		}
		middleware.GetLogger(c).Error("failed to load catalog", zap.String("scope", scope), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	view := h.memo.View(scope, version, products, criteria)

	paged := pageOf(view, page, limit)
	cards := make([]models.ProductCard, 0, len(paged))
	for i := range paged {
		cards = append(cards, paged[i].ToCard(lang))
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", cards,
		models.NewPagination(page, limit, len(view))))
}
