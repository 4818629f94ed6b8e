package filter_controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ovs-innovation/farmcykart1-sub002/config"
	"github.com/ovs-innovation/farmcykart1-sub002/middleware"
	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// MetadataSource answers the three facet queries.
type MetadataSource interface {
	BrandFacets(ctx context.Context) ([]models.FilterOption, error)
	CategoryTree(ctx context.Context) ([]models.CategoryData, error)
	PriceBounds(ctx context.Context) (*models.PriceRange, error)
}

type Handler struct {
	source MetadataSource
}

func NewHandler(source MetadataSource) *Handler {
	return &Handler{source: source}
}

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns brand facets, categories, and price range for storefront filters
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters/metadata [get]
func (h *Handler) GetFilterMetadata(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), config.QueryTimeout)
	defer cancel()

	// the three queries are independent; the first failure cancels the rest
	g, gctx := errgroup.WithContext(ctx)
	metadata := &models.FilterMetadata{}

	g.Go(func() error {
		brands, err := h.source.BrandFacets(gctx)
		metadata.Brands = brands
		return err
	})
	g.Go(func() error {
		categories, err := h.source.CategoryTree(gctx)
		metadata.Categories = categories
		return err
	})
	g.Go(func() error {
		priceRange, err := h.source.PriceBounds(gctx)
		metadata.PriceRange = priceRange
		return err
	})

	if err := g.Wait(); err != nil {
		middleware.GetLogger(c).Error("failed to fetch filter metadata", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}
