package cart_controller

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovs-innovation/farmcykart1-sub002/cartstore"
	"github.com/ovs-innovation/farmcykart1-sub002/cartsync"
	"github.com/ovs-innovation/farmcykart1-sub002/middleware"
	"github.com/ovs-innovation/farmcykart1-sub002/models"
	"github.com/ovs-innovation/farmcykart1-sub002/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var savedProduct = uuid.MustParse("00000000-0000-0000-0000-00000000beef")

type stubVerifier struct{}

func (stubVerifier) Verify(token string) (*services.Claims, error) {
	if token == "alice" {
		return &services.Claims{UserID: "alice", Role: models.RoleCustomer}, nil
	}
	return nil, errors.New("bad token")
}

type stubFetcher struct{ calls int }

func (f *stubFetcher) FetchCustomer(_ context.Context, _ string) (*models.Customer, error) {
	f.calls++
	id := savedProduct
	return &models.Customer{Cart: []models.CartEntry{{
		ProductID: &id,
		Product: &models.Product{
			ID:     savedProduct,
			Title:  models.LocalizedText{"en": "Ghee"},
			Prices: models.Prices{Price: 250},
		},
		Quantity: 2,
	}}}, nil
}

type harness struct {
	router  *gin.Engine
	backend *cartstore.MemoryBackend
	fetcher *stubFetcher
	cookie  *http.Cookie
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{backend: cartstore.NewMemoryBackend(), fetcher: &stubFetcher{}}
	handler := NewHandler(h.backend, cartsync.NewRegistry(h.fetcher, nil, "en", time.Hour))

	r := gin.New()
	g := r.Group("/store", middleware.CartSession(time.Hour, false), middleware.OptionalAuth(stubVerifier{}))
	g.GET("/cart", handler.GetCart)
	g.GET("/cart/stream", handler.StreamCart)
	g.POST("/cart/items", handler.AddCartItem)
	g.PATCH("/cart/items/:id", handler.UpdateCartItem)
	g.DELETE("/cart/items/:id", handler.RemoveCartItem)
	h.router = r
	return h
}

type cartResponse struct {
	Data  models.CartView `json:"data"`
	Error bool            `json:"error"`
}

func (h *harness) do(t *testing.T, method, path, body, token string) (int, cartResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if h.cookie != nil {
		req.AddCookie(h.cookie)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.CartSessionCookie {
			h.cookie = ck
		}
	}
	var resp cartResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w.Code, resp
}

func TestCart_AnonymousLifecycle(t *testing.T) {
	h := newHarness(t)

	code, resp := h.do(t, http.MethodGet, "/store/cart", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, resp.Data.Items)
	assert.Equal(t, string(cartsync.OutcomeReset), resp.Data.Sync)

	code, resp = h.do(t, http.MethodPost, "/store/cart/items",
		`{"item":{"id":"p1","title":"Rice","price":50},"quantity":2}`, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2, resp.Data.TotalItems)
	assert.Equal(t, 100.0, resp.Data.Subtotal)

	code, resp = h.do(t, http.MethodPost, "/store/cart/items",
		`{"item":{"id":"p1","title":"Rice","price":50},"quantity":1}`, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 3, resp.Data.Items[0].Quantity)

	code, _ = h.do(t, http.MethodPatch, "/store/cart/items/missing", `{"quantity":1}`, "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = h.do(t, http.MethodPost, "/store/cart/items", `{"item":{"id":"p2"},"quantity":0}`, "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, resp = h.do(t, http.MethodPatch, "/store/cart/items/p1", `{"quantity":0}`, "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, resp.Data.Items)

	code, _ = h.do(t, http.MethodDelete, "/store/cart/items/p1", "", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCart_LoginMergesSavedCartOnce(t *testing.T) {
	h := newHarness(t)
	h.do(t, http.MethodPost, "/store/cart/items", `{"item":{"id":"p1","price":10},"quantity":1}`, "")

	code, resp := h.do(t, http.MethodGet, "/store/cart", "", "alice")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, string(cartsync.OutcomeApplied), resp.Data.Sync)
	require.Len(t, resp.Data.Items, 2)
	assert.Equal(t, "Ghee", resp.Data.Items[1].Title)
	assert.Equal(t, 2, resp.Data.Items[1].Quantity)

	// a local change after the merge is not overwritten on the next read
	h.do(t, http.MethodPatch, "/store/cart/items/"+savedProduct.String(), `{"quantity":5}`, "alice")
	_, resp = h.do(t, http.MethodGet, "/store/cart", "", "alice")
	assert.Equal(t, string(cartsync.OutcomeSkipped), resp.Data.Sync)
	assert.Equal(t, 5, resp.Data.Items[1].Quantity)
	assert.Equal(t, 1, h.fetcher.calls)
}

func TestCart_Stream(t *testing.T) {
	h := newHarness(t)
	h.do(t, http.MethodGet, "/store/cart", "", "")
	session := h.cookie.Value

	srv := httptest.NewServer(h.router)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/store/cart/stream", nil)
	require.NoError(t, err)
	req.AddCookie(h.cookie)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	events := make(chan models.CartView, 4)
	go func() {
		defer close(events)
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := scanner.Text()
			if data, ok := strings.CutPrefix(line, "data: "); ok {
				var view models.CartView
				if json.Unmarshal([]byte(data), &view) == nil {
					events <- view
				}
			}
		}
	}()

	first := <-events
	assert.Empty(t, first.Items)

	// another writer of the same session
	other, err := cartstore.OpenCart(context.Background(), h.backend, cartKey(session))
	require.NoError(t, err)
	require.NoError(t, other.AddItem(context.Background(), models.CartLineItem{ID: "p9", Price: 3}, 4))

	select {
	case view := <-events:
		require.Len(t, view.Items, 1)
		assert.Equal(t, 4, view.TotalItems)
	case <-time.After(2 * time.Second):
		t.Fatal("no update event")
	}
}
