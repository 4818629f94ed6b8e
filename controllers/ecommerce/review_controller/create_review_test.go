package review_controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
	"github.com/ovs-innovation/farmcykart1-sub002/services"
)

type stubWriter struct{ known uuid.UUID }

func (s stubWriter) Create(_ context.Context, customerID uuid.UUID, req models.CreateReviewRequest) (*models.Review, error) {
	if req.ProductID != s.known {
		return nil, services.ErrNotFound
	}
	return &models.Review{ProductID: req.ProductID, CustomerID: customerID, Rating: req.Rating}, nil
}

type countingCache struct{ n int }

func (c *countingCache) Invalidate() { c.n++ }

func TestCreateReview(t *testing.T) {
	gin.SetMode(gin.TestMode)
	known := uuid.New()
	cache := &countingCache{}
	h := NewHandler(stubWriter{known: known}, cache)

	r := gin.New()
	r.POST("/user/reviews", func(c *gin.Context) {
		if id := c.GetHeader("X-User"); id != "" {
			c.Set("userID", id)
		}
	}, h.CreateReview)

	post := func(user, body string) int {
		req := httptest.NewRequest(http.MethodPost, "/user/reviews", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User", user)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	user := uuid.NewString()
	assert.Equal(t, http.StatusUnauthorized, post("", `{}`))
	assert.Equal(t, http.StatusBadRequest, post(user, `{"product_id":"`+known.String()+`","rating":9}`))
	assert.Equal(t, http.StatusNotFound, post(user, `{"product_id":"`+uuid.NewString()+`","rating":4}`))
	assert.Equal(t, 0, cache.n)
	assert.Equal(t, http.StatusCreated, post(user, `{"product_id":"`+known.String()+`","rating":4}`))
	assert.Equal(t, 1, cache.n)
}
