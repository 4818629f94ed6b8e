package ecommerce_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	store_cart "github.com/ovs-innovation/farmcykart1-sub002/controllers/ecommerce/cart_controller"
	store_category "github.com/ovs-innovation/farmcykart1-sub002/controllers/ecommerce/category_controller"
	store_filter "github.com/ovs-innovation/farmcykart1-sub002/controllers/ecommerce/filter_controller"
	store_product "github.com/ovs-innovation/farmcykart1-sub002/controllers/ecommerce/product_controller"
	store_shipping "github.com/ovs-innovation/farmcykart1-sub002/controllers/ecommerce/shipping_controller"
	store_wishlist "github.com/ovs-innovation/farmcykart1-sub002/controllers/ecommerce/wishlist_controller"
	"github.com/ovs-innovation/farmcykart1-sub002/middleware"
)

// StorefrontHandlers groups the public storefront controllers.
type StorefrontHandlers struct {
	Products   *store_product.Handler
	Categories *store_category.Handler
	Filters    *store_filter.Handler
	Cart       *store_cart.Handler
	Wishlist   *store_wishlist.Handler
	Shipping   *store_shipping.Handler
}

// SessionOptions configures the anonymous cart cookie.
type SessionOptions struct {
	TTL    time.Duration
	Secure bool
}

func SetupStorefrontRoutes(router *gin.RouterGroup, h StorefrontHandlers, verifier middleware.TokenVerifier, session SessionOptions) {
	// Storefront routes (public; a valid token only enriches the request)
	store := router.Group("/store")
	store.Use(middleware.OptionalAuth(verifier))

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", h.Products.GetStorefrontProducts)
		products.GET("/:id", h.Products.GetStorefrontProductByID)
		products.GET("/:id/reviews/summary", h.Products.GetProductRatingSummary)
	}

	store.GET("/categories", h.Categories.GetCategories)
	store.GET("/filters/metadata", h.Filters.GetFilterMetadata)
	store.GET("/shipping/serviceability", h.Shipping.GetServiceability)

	// Session-keyed routes
	sessioned := store.Group("")
	sessioned.Use(middleware.CartSession(session.TTL, session.Secure))

	cart := sessioned.Group("/cart")
	{
		cart.GET("", h.Cart.GetCart)
		cart.GET("/stream", h.Cart.StreamCart)
		cart.POST("/items", h.Cart.AddCartItem)
		cart.PATCH("/items/:id", h.Cart.UpdateCartItem)
		cart.DELETE("/items/:id", h.Cart.RemoveCartItem)
	}

	wishlist := sessioned.Group("/wishlist")
	{
		wishlist.GET("", h.Wishlist.GetWishlist)
		wishlist.POST("/:productId", h.Wishlist.AddToWishlist)
		wishlist.DELETE("/:productId", h.Wishlist.RemoveFromWishlist)
	}
}
