package product_controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ovs-innovation/farmcykart1-sub002/middleware"
	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a product. Status defaults to Draft; the discount is derived from price and original_price.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.ProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	log := middleware.GetLogger(c)
	start := time.Now()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	product, err := h.products.Create(ctx, req)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}
	h.cache.Invalidate()

	log.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.Duration("elapsed", time.Since(start)))
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
