package product_controller

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ovs-innovation/farmcykart1-sub002/middleware"
	"github.com/ovs-innovation/farmcykart1-sub002/models"
	"github.com/ovs-innovation/farmcykart1-sub002/services"
)

const maxImageSize = 10 << 20

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadProductImage godoc
// @Summary Upload a product image
// @Description Uploads the "image" form file to Cloudinary and appends its URL to the product
// @Tags CMS - Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param image formData file true "Image file (jpg, png, webp; max 10MB)"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /admin/products/{id}/images [post]
func (h *Handler) UploadProductImage(c *gin.Context) {
	log := middleware.GetLogger(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image file is required"))
		return
	}
	if header.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image exceeds 10MB"))
		return
	}
	if !allowedImageExt[strings.ToLower(filepath.Ext(header.Filename))] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unsupported image type"))
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read image"))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	url, publicID, err := h.images.UploadImage(ctx, file, header.Filename)
	if err != nil {
		log.Error("image upload failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to upload image"))
		return
	}

	product, err := h.products.AttachImage(ctx, id, url)
	if err != nil {
		// The asset is orphaned once the row update fails.
		if derr := h.images.DeleteImage(context.WithoutCancel(ctx), publicID); derr != nil {
			log.Warn("failed to delete orphaned image", zap.String("public_id", publicID), zap.Error(derr))
		}
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Error("failed to attach image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to attach image"))
		return
	}
	h.cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Image uploaded successfully", product))
}
