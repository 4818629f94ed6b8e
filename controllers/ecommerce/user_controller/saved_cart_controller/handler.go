package saved_cart_controller

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

// CustomerStore is the durable cart side of the customer service.
type CustomerStore interface {
	FetchCustomer(ctx context.Context, id string) (*models.Customer, error)
	SetCartQuantity(ctx context.Context, customerID, productID uuid.UUID, quantity int) error
}

// Handler serves the durable (account) cart.
type Handler struct {
	customers CustomerStore
	lang      string
}

func NewHandler(customers CustomerStore, lang string) *Handler {
	return &Handler{customers: customers, lang: lang}
}

// customer loads the signed-in customer or writes the error response.
func (h *Handler) customer(c *gin.Context) *models.Customer {
	userID, _ := middleware.GetUserIDFromContext(c)
	customer, err := h.customers.FetchCustomer(c.Request.Context(), userID)
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrInvalidID):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "User not found"))
		return nil
	case err != nil:
		middleware.GetLogger(c).Error("failed to fetch customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return nil
	}
	return customer
}
