package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ovs-innovation/farmcykart1-sub002/middleware"
	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// GetProductRatingSummary godoc
// @Summary Rating summary of a product
// @Description Review count, average and per-star breakdown
// @Tags store
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.RatingSummary}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/{id}/reviews/summary [get]
func (h *Handler) GetProductRatingSummary(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	summary, err := h.ratings.Summary(c.Request.Context(), productID)
	if err != nil {
		middleware.GetLogger(c).Error("failed to summarise ratings", zap.Stringer("product_id", productID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch rating summary"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Rating summary fetched", summary))
}
