package saved_cart_controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
	"github.com/ovs-innovation/farmcykart1-sub002/services"
)

var (
	customerID = uuid.MustParse("00000000-0000-0000-0000-0000000000aa")
	productP   = uuid.MustParse("00000000-0000-0000-0000-0000000000bb")
)

type stubStore struct {
	set map[uuid.UUID]int
}

func (s *stubStore) FetchCustomer(_ context.Context, id string) (*models.Customer, error) {
	if id != customerID.String() {
		return nil, services.ErrNotFound
	}
	pid := productP
	return &models.Customer{ID: customerID, Cart: []models.CartEntry{
		{ProductID: &pid, Product: &models.Product{
			ID:     productP,
			Title:  models.LocalizedText{"en": "Widget", "fr": "Gadget"},
			Images: []string{"w.png"},
			Prices: models.Prices{OriginalPrice: 12},
		}, Quantity: 3},
		{Quantity: 1},
	}}, nil
}

func (s *stubStore) SetCartQuantity(_ context.Context, _ uuid.UUID, productID uuid.UUID, quantity int) error {
	if productID != productP {
		return services.ErrNotFound
	}
	s.set[productID] = quantity
	return nil
}

func router(store *stubStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(store, "en")
	r := gin.New()
	g := r.Group("/user/cart", func(c *gin.Context) { c.Set("userID", c.GetHeader("X-User")) })
	g.GET("", h.GetSavedCart)
	g.PUT("/items/:productId", h.SetSavedCartItem)
	g.POST("/reconcile", h.PreviewReconcile)
	return r
}

func send(r http.Handler, method, path, user, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User", user)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetSavedCart(t *testing.T) {
	r := router(&stubStore{})

	w := send(r, http.MethodGet, "/user/cart", customerID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Nil(t, resp.Data[1]["productId"], "deleted product serialises as null")

	assert.Equal(t, http.StatusUnauthorized, send(r, http.MethodGet, "/user/cart", uuid.NewString(), "").Code)
}

func TestSetSavedCartItem(t *testing.T) {
	store := &stubStore{set: map[uuid.UUID]int{}}
	r := router(store)

	w := send(r, http.MethodPut, "/user/cart/items/"+productP.String(), customerID.String(), `{"quantity":4}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, store.set[productP])

	w = send(r, http.MethodPut, "/user/cart/items/"+uuid.NewString(), customerID.String(), `{"quantity":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = send(r, http.MethodPut, "/user/cart/items/x", customerID.String(), `{"quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPreviewReconcile(t *testing.T) {
	r := router(&stubStore{})

	w := send(r, http.MethodPost, "/user/cart/reconcile?lang=fr", customerID.String(), `[]`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data models.CartActions `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.ToAdd, 1)
	assert.Equal(t, "Gadget", resp.Data.ToAdd[0].Title)
	assert.Equal(t, 12.0, resp.Data.ToAdd[0].Price)
	assert.Equal(t, 3, resp.Data.ToAdd[0].Quantity)
	assert.Empty(t, resp.Data.ToUpdateQuantity)

	w = send(r, http.MethodPost, "/user/cart/reconcile", customerID.String(),
		`[{"id":"`+productP.String()+`-large","title":"Widget L","price":15,"quantity":1}]`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.ToAdd, "variant line suppresses the add")
}
