package system_controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func probe(t *testing.T, h *Handler) (int, map[string]string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthz", h.Healthz)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHealthzOK(t *testing.T) {
	ok := PingerFunc(func(context.Context) error { return nil })
	code, body := probe(t, NewHandler(ok, ok))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]string{"postgres": "ok", "redis": "ok"}, body)
}

func TestHealthzReportsFailedDependency(t *testing.T) {
	ok := PingerFunc(func(context.Context) error { return nil })
	down := PingerFunc(func(context.Context) error { return errors.New("connection refused") })

	code, body := probe(t, NewHandler(ok, down))
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "ok", body["postgres"])
	assert.Equal(t, "down", body["redis"])
}
