package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// RemoveCartItem godoc
// @Summary Remove a cart line
// @Tags store
// @Produce json
// @Param id path string true "Line ID"
// @Success 200 {object} models.ApiResponse{data=models.CartView}
// @Failure 404 {object} models.ApiResponse
// @Router /store/cart/items/{id} [delete]
func (h *Handler) RemoveCartItem(c *gin.Context) {
	cart := h.openCart(c)
	if cart == nil {
		return
	}
	if err := cart.RemoveItem(c.Request.Context(), c.Param("id")); err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", models.NewCartView(cart.Items(), "")))
}
