package shipping_controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ovs-innovation/farmcykart1-sub002/middleware"
	"github.com/ovs-innovation/farmcykart1-sub002/models"
	"github.com/ovs-innovation/farmcykart1-sub002/services"
)

type Quoter interface {
	Serviceability(ctx context.Context, req models.ServiceabilityRequest) ([]models.CourierOption, error)
}

type Handler struct {
	quoter Quoter
}

func NewHandler(quoter Quoter) *Handler {
	return &Handler{quoter: quoter}
}

// GetServiceability godoc
// @Summary Courier quotes for a delivery
// @Tags store
// @Produce json
// @Param pickup_postcode query string false "Pickup pincode (defaults to the warehouse)"
// @Param delivery_postcode query string true "Delivery pincode"
// @Param weight query number true "Weight in kg"
// @Param cod query bool false "Cash on delivery"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /store/shipping/serviceability [get]
func (h *Handler) GetServiceability(c *gin.Context) {
	var req models.ServiceabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "delivery_postcode and weight are required"))
		return
	}

	options, err := h.quoter.Serviceability(c.Request.Context(), req)
	if err != nil {
		var upstream *services.UpstreamError
		if errors.As(err, &upstream) {
			middleware.GetLogger(c).Warn("carrier rejected quote", zap.Int("status", upstream.Status))
		} else {
			middleware.GetLogger(c).Error("carrier unreachable", zap.Error(err))
		}
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Shipping quote unavailable"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Couriers fetched", options))
}
