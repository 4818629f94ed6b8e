package saved_cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// GetSavedCart godoc
// @Summary Get the account cart
// @Description Entries whose product was deleted carry "productId": null
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /user/cart [get]
func (h *Handler) GetSavedCart(c *gin.Context) {
	customer := h.customer(c)
	if customer == nil {
		return
	}
	entries := customer.Cart
	if entries == nil {
		entries = []models.CartEntry{}
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched", entries))
}
