package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// AddCartItem godoc
// @Summary Add a line to the session cart
// @Description Adding an existing line id increases its quantity
// @Tags store
// @Accept json
// @Produce json
// @Param body body models.AddCartItemRequest true "Line and quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartView}
// @Failure 400 {object} models.ApiResponse
// @Router /store/cart/items [post]
func (h *Handler) AddCartItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	cart := h.openCart(c)
	if cart == nil {
		return
	}
	if err := cart.AddItem(c.Request.Context(), req.Item, req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", models.NewCartView(cart.Items(), "")))
}
