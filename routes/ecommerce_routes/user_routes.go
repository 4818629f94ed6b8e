package ecommerce_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ovs-innovation/farmcykart1-sub002/controllers/ecommerce/review_controller"
	"github.com/ovs-innovation/farmcykart1-sub002/controllers/ecommerce/user_controller/profile_controller"
	"github.com/ovs-innovation/farmcykart1-sub002/controllers/ecommerce/user_controller/saved_cart_controller"
	"github.com/ovs-innovation/farmcykart1-sub002/middleware"
)

// UserHandlers groups the signed-in customer controllers.
type UserHandlers struct {
	Profile   *profile_controller.Handler
	SavedCart *saved_cart_controller.Handler
	Reviews   *review_controller.Handler
}

// SetupUserRoutes sets up all customer account routes
func SetupUserRoutes(router *gin.RouterGroup, h UserHandlers, verifier middleware.TokenVerifier) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware(verifier)) // All routes require auth
	{
		user.GET("/me", h.Profile.GetMe)

		// Durable cart
		user.GET("/cart", h.SavedCart.GetSavedCart)
		user.PUT("/cart/items/:productId", h.SavedCart.SetSavedCartItem)
		user.POST("/cart/reconcile", h.SavedCart.PreviewReconcile)

		// Reviews
		user.POST("/reviews", h.Reviews.CreateReview)
	}
}
