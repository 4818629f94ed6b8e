package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ovs-innovation/farmcykart1-sub002/controllers/cms/product_controller"
	"github.com/ovs-innovation/farmcykart1-sub002/middleware"
	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

func SetupProductRoutes(rg *gin.RouterGroup, h *product_controller.Handler, verifier middleware.TokenVerifier) {
	product := rg.Group("/products")

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Admin role)
	// ════════════════════════════════════════════════════════════
	product.Use(middleware.AuthMiddleware(verifier))
	product.Use(middleware.RequireRole(models.RoleAdmin))
	{
		product.POST("", h.CreateProduct)
		product.POST("/:id/images", h.UploadProductImage)
	}
}
