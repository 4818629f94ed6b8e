package wishlist_controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ovs-innovation/farmcykart1-sub002/cartstore"
	"github.com/ovs-innovation/farmcykart1-sub002/middleware"
	"github.com/ovs-innovation/farmcykart1-sub002/models"
	"github.com/ovs-innovation/farmcykart1-sub002/services"
)

type ProductReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type Handler struct {
	backend cartstore.Backend
	reader  ProductReader
	lang    string
}

func NewHandler(backend cartstore.Backend, reader ProductReader, lang string) *Handler {
	return &Handler{backend: backend, reader: reader, lang: lang}
}

func (h *Handler) open(c *gin.Context) *cartstore.Wishlist {
	w, err := cartstore.OpenWishlist(c.Request.Context(), h.backend, "wishlist:"+middleware.GetCartSession(c))
	if err != nil {
		middleware.GetLogger(c).Error("failed to open wishlist", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load wishlist"))
		return nil
	}
	return w
}

// cards resolves wishlist ids to product cards, skipping products that are
// gone or no longer active.
func (h *Handler) cards(c *gin.Context, ids []string) []models.ProductCard {
	cards := make([]models.ProductCard, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		p, err := h.reader.GetByID(c.Request.Context(), id)
		if err != nil {
			if !errors.Is(err, services.ErrNotFound) {
				middleware.GetLogger(c).Warn("wishlist product lookup failed", zap.String("product_id", raw), zap.Error(err))
			}
			continue
		}
		cards = append(cards, p.ToCard(h.lang))
	}
	return cards
}

// GetWishlist godoc
// @Summary Get the session wishlist
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/wishlist [get]
func (h *Handler) GetWishlist(c *gin.Context) {
	w := h.open(c)
	if w == nil {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist fetched", h.cards(c, w.Items())))
}

// AddToWishlist godoc
// @Summary Add a product to the wishlist
// @Tags store
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/wishlist/{productId} [post]
func (h *Handler) AddToWishlist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}
	if _, err := h.reader.GetByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	w := h.open(c)
	if w == nil {
		return
	}
	if err := w.Add(c.Request.Context(), id.String()); err != nil {
		middleware.GetLogger(c).Error("wishlist write failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update wishlist"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Added to wishlist", w.Items()))
}

// RemoveFromWishlist godoc
// @Summary Remove a product from the wishlist
// @Tags store
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/wishlist/{productId} [delete]
func (h *Handler) RemoveFromWishlist(c *gin.Context) {
	w := h.open(c)
	if w == nil {
		return
	}
	err := w.Remove(c.Request.Context(), c.Param("productId"))
	if errors.Is(err, cartstore.ErrItemNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not in wishlist"))
		return
	}
	if err != nil {
		middleware.GetLogger(c).Error("wishlist write failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update wishlist"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Removed from wishlist", w.Items()))
}
