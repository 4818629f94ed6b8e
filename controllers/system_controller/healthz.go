package system_controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ovs-innovation/farmcykart1-sub002/middleware"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts clients whose ping has another shape, such as go-redis.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type Handler struct {
	postgres Pinger
	redis    Pinger
	timeout  time.Duration
}

func NewHandler(postgres, redis Pinger) *Handler {
	return &Handler{postgres: postgres, redis: redis, timeout: 2 * time.Second}
}

// Healthz godoc
// @Summary Liveness and dependency check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthz [get]
func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status := map[string]string{"postgres": "ok", "redis": "ok"}
	results := make([]error, 2)

	var g errgroup.Group
	for i, p := range []Pinger{h.postgres, h.redis} {
		if p == nil {
			continue
		}
		i, p := i, p
		g.Go(func() error {
			results[i] = p.Ping(ctx)
			return nil
		})
	}
	_ = g.Wait()

	code := http.StatusOK
	for i, name := range []string{"postgres", "redis"} {
		if results[i] != nil {
			status[name] = "down"
			code = http.StatusServiceUnavailable
			middleware.GetLogger(c).Warn("health check failed", zap.String("dependency", name), zap.Error(results[i]))
		}
	}
	c.JSON(code, status)
}
