package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// UpdateCartItem godoc
// @Summary Set the quantity of a cart line
// @Description A quantity of 0 removes the line
// @Tags store
// @Accept json
// @Produce json
// @Param id path string true "Line ID"
// @Param body body models.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartView}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/cart/items/{id} [patch]
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	cart := h.openCart(c)
	if cart == nil {
		return
	}
	if err := cart.UpdateItemQuantity(c.Request.Context(), c.Param("id"), req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", models.NewCartView(cart.Items(), "")))
}
