package saved_cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovs-innovation/farmcykart1-sub002/cartsync"
	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// PreviewReconcile godoc
// @Summary Compute login cart actions for a client-held cart
// @Description Pure: compares the account cart with the posted local cart and returns what the client should add or update. Nothing is written.
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lang query string false "Title language" default(en)
// @Param body body []models.CartLineItem true "Local cart lines"
// @Success 200 {object} models.ApiResponse{data=models.CartActions}
// @Failure 400 {object} models.ApiResponse
// @Router /user/cart/reconcile [post]
func (h *Handler) PreviewReconcile(c *gin.Context) {
	var local []models.CartLineItem
	if err := c.ShouldBindJSON(&local); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}
	customer := h.customer(c)
	if customer == nil {
		return
	}

	lang := c.DefaultQuery("lang", h.lang)
	actions := cartsync.Reconcile(customer.Cart, local, lang)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart actions computed", actions))
}
