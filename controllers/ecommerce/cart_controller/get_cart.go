package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// GetCart godoc
// @Summary Get the session cart
// @Description Returns the cart of the cart_session cookie. When a customer is signed in, their saved cart is merged in once per login.
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartView}
// @Failure 500 {object} models.ApiResponse
// @Router /store/cart [get]
func (h *Handler) GetCart(c *gin.Context) {
	cart := h.openCart(c)
	if cart == nil {
		return
	}
	outcome := h.sync(c, cart)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched", models.NewCartView(cart.Items(), string(outcome))))
}
