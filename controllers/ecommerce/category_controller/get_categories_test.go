package category_controller

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

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

type treeFunc func(ctx context.Context) ([]models.CategoryData, error)

func (f treeFunc) CategoryTree(ctx context.Context) ([]models.CategoryData, error) { return f(ctx) }

func TestGetCategories(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewHandler(treeFunc(func(context.Context) ([]models.CategoryData, error) {
		return []models.CategoryData{{ID: "c1", Name: "Herbs", Subcategories: []models.CategoryData{{ID: "c2", Name: "Basil", ParentID: "c1"}}}}, nil
	}))
	r := gin.New()
	r.GET("/store/categories", h.GetCategories)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/store/categories", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.CategoryData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Basil", resp.Data[0].Subcategories[0].Name)
}

func TestGetCategoriesError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewHandler(treeFunc(func(context.Context) ([]models.CategoryData, error) {
		return nil, errors.New("db down")
	}))
	r := gin.New()
	r.GET("/store/categories", h.GetCategories)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/store/categories", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
