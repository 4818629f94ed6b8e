package cart_controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ovs-innovation/farmcykart1-sub002/cartstore"
	"github.com/ovs-innovation/farmcykart1-sub002/cartsync"
	"github.com/ovs-innovation/farmcykart1-sub002/middleware"
	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// Handler serves the session cart. Every read runs the login reconciliation
// for the session before answering.
type Handler struct {
	backend   cartstore.Backend
	registry  *cartsync.Registry
	heartbeat time.Duration
}

func NewHandler(backend cartstore.Backend, registry *cartsync.Registry) *Handler {
	return &Handler{backend: backend, registry: registry, heartbeat: 25 * time.Second}
}

func cartKey(session string) string {
	return "cart:" + session
}

// openCart loads the session cart or writes a 500 and returns nil.
func (h *Handler) openCart(c *gin.Context) *cartstore.Cart {
	session := middleware.GetCartSession(c)
	cart, err := cartstore.OpenCart(c.Request.Context(), h.backend, cartKey(session))
	if err != nil {
		middleware.GetLogger(c).Error("failed to open cart", zap.String("session", session), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load cart"))
		return nil
	}
	return cart
}

// sync runs the reconciliation trigger for the current identity.
func (h *Handler) sync(c *gin.Context, cart *cartstore.Cart) cartsync.Outcome {
	identity, _ := middleware.GetUserIDFromContext(c)
	res := h.registry.Syncer(middleware.GetCartSession(c)).Trigger(c.Request.Context(), identity, cart)
	return res.Outcome
}

func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cartstore.ErrInvalidQuantity), errors.Is(err, cartstore.ErrInvalidItem):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
	case errors.Is(err, cartstore.ErrItemNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Item not in cart"))
	default:
		middleware.GetLogger(c).Error("cart write failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
	}
}
