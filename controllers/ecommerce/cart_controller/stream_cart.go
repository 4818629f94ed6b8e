package cart_controller

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ovs-innovation/farmcykart1-sub002/middleware"
	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// StreamCart godoc
// @Summary Stream session cart changes
// @Description Server-sent events: one "cart" event with the current view, then one per change made by any writer of the session
// @Tags store
// @Produce text/event-stream
// @Router /store/cart/stream [get]
func (h *Handler) StreamCart(c *gin.Context) {
	cart := h.openCart(c)
	if cart == nil {
		return
	}
	ctx := c.Request.Context()
	log := middleware.GetLogger(c)

	updates := make(chan []models.CartLineItem, 1)
	unsubscribe := cart.Subscribe(func(items []models.CartLineItem) {
		// keep only the latest state when the client lags
		select {
		case <-updates:
		default:
		}
		select {
		case updates <- items:
		default:
		}
	})
	defer unsubscribe()

	if err := cart.Watch(ctx, func(err error) {
		log.Warn("cart reload failed", zap.Error(err))
	}); err != nil {
		log.Error("failed to watch cart", zap.Error(err))
		respondCartError(c, err)
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	seq := 0
	send := func(items []models.CartLineItem) {
		seq++
		data, _ := json.Marshal(models.NewCartView(items, ""))
		writeEvent(c.Writer, "cart", fmt.Sprint(seq), data)
		c.Writer.Flush()
	}
	send(cart.Items())

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case items := <-updates:
			send(items)
		case <-ticker.C:
			fmt.Fprint(c.Writer, ": ping\n\n")
			c.Writer.Flush()
		}
	}
}

func writeEvent(w io.Writer, event, id string, data []byte) {
	fmt.Fprintf(w, "event: %s\n", event)
	fmt.Fprintf(w, "id: %s\n", id)
	fmt.Fprintf(w, "data: %s\n\n", data)
}
