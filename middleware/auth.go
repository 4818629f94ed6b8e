package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
	"github.com/ovs-innovation/farmcykart1-sub002/services"
)

const (
	authCookie = "auth_token"

	ctxUserID    = "userID"
	ctxUserEmail = "userEmail"
	ctxUserName  = "userName"
	ctxUserRole  = "userRole"
)

// TokenVerifier checks a bearer token.
type TokenVerifier interface {
	Verify(token string) (*services.Claims, error)
}

// tokenFromRequest reads the token from the auth cookie first, then from the
// Authorization header. ok is false when the header is present but malformed.
func tokenFromRequest(c *gin.Context) (token string, ok bool) {
	if cookieToken, err := c.Cookie(authCookie); err == nil && cookieToken != "" {
		return cookieToken, true
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", true
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func setClaims(c *gin.Context, claims *services.Claims) {
	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxUserEmail, claims.Email)
	c.Set(ctxUserName, claims.Name)
	c.Set(ctxUserRole, claims.Role)
}

// AuthMiddleware validates JWT token from cookie or Authorization header
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := tokenFromRequest(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid authorization header format"))
			c.Abort()
			return
		}
		if token == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization header required"))
			c.Abort()
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches the user when a valid token is present and otherwise
// lets the request through anonymously.
func OptionalAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := tokenFromRequest(c)
		if ok && token != "" {
			if claims, err := verifier.Verify(token); err == nil {
				setClaims(c, claims)
			} else {
				GetLogger(c).Debug("ignoring invalid token on optional route")
			}
		}
		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated user has one of roles.
// It must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := GetUserRoleFromContext(c)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden"))
		c.Abort()
	}
}

func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserID)
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok && id != ""
}

func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	role, exists := c.Get(ctxUserRole)
	if !exists {
		return "", false
	}
	r, ok := role.(string)
	return r, ok
}
