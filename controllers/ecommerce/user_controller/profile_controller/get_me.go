package profile_controller

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

type CustomerFetcher interface {
	FetchCustomer(ctx context.Context, id string) (*models.Customer, error)
}

type Handler struct {
	customers CustomerFetcher
}

func NewHandler(customers CustomerFetcher) *Handler {
	return &Handler{customers: customers}
}

// GetMe godoc
// @Summary Get current authenticated user
// @Description Check authentication status and return the customer record
// @Tags User - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.Customer}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /user/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	customer, err := h.customers.FetchCustomer(c.Request.Context(), userID)
	if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrInvalidID) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "User not found"))
		return
	}
	if err != nil {
		middleware.GetLogger(c).Error("failed to fetch customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch user"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Authenticated", customer))
}
