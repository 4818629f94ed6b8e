package category_controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ovs-innovation/farmcykart1-sub002/config"
	"github.com/ovs-innovation/farmcykart1-sub002/middleware"
	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

type TreeSource interface {
	CategoryTree(ctx context.Context) ([]models.CategoryData, error)
}

type Handler struct {
	tree TreeSource
}

func NewHandler(tree TreeSource) *Handler {
	return &Handler{tree: tree}
}

// GetCategories godoc
// @Summary Get storefront categories
// @Description Active categories as a two-level tree, sorted by name
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.CategoryData}
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories, err := h.tree.CategoryTree(ctx)
	if err != nil {
		middleware.GetLogger(c).Error("failed to fetch categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}
