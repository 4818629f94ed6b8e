package review_controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ovs-innovation/farmcykart1-sub002/middleware"
	"github.com/ovs-innovation/farmcykart1-sub002/models"
	"github.com/ovs-innovation/farmcykart1-sub002/services"
)

type ReviewWriter interface {
	Create(ctx context.Context, customerID uuid.UUID, req models.CreateReviewRequest) (*models.Review, error)
}

// Invalidator drops cached catalog data after a write that changes ratings.
type Invalidator interface {
	Invalidate()
}

type Handler struct {
	reviews ReviewWriter
	cache   Invalidator
}

func NewHandler(reviews ReviewWriter, cache Invalidator) *Handler {
	return &Handler{reviews: reviews, cache: cache}
}

// CreateReview godoc
// @Summary Review a product
// @Description Stores a 1-5 star review and refreshes the product's average rating
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateReviewRequest true "Review"
// @Success 201 {object} models.ApiResponse{data=models.Review}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /user/reviews [post]
func (h *Handler) CreateReview(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	customerID, err := uuid.Parse(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user"))
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	review, err := h.reviews.Create(c.Request.Context(), customerID, req)
	switch {
	case errors.Is(err, services.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	case err != nil:
		middleware.GetLogger(c).Error("failed to create review", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create review"))
		return
	}

	if h.cache != nil {
		h.cache.Invalidate()
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Review created", review))
}
