package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CartSessionCookie = "cart_session"
	ctxCartSession    = "cartSession"
)

// CartSession makes sure every request carries a cart session id, issuing a
// new cookie when the client has none or sends a malformed one.
func CartSession(ttl time.Duration, secure bool) gin.HandlerFunc {
	maxAge := int(ttl.Seconds())
	return func(c *gin.Context) {
		id, err := c.Cookie(CartSessionCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}
		// refresh on every request so active carts don't expire
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(CartSessionCookie, id, maxAge, "/", "", secure, true)
		c.Set(ctxCartSession, id)
		c.Next()
	}
}

// GetCartSession returns the session id set by CartSession.
func GetCartSession(c *gin.Context) string {
	return c.GetString(ctxCartSession)
}
