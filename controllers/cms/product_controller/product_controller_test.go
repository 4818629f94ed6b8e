package product_controller

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
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

type fakeWriter struct {
	created  []models.ProductRequest
	attached []string
	fail     error
}

func (f *fakeWriter) Create(_ context.Context, req models.ProductRequest) (*models.Product, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.created = append(f.created, req)
	p := req.ToProduct()
	p.ID = uuid.New()
	return &p, nil
}

func (f *fakeWriter) AttachImage(_ context.Context, id uuid.UUID, url string) (*models.Product, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.attached = append(f.attached, url)
	return &models.Product{ID: id, Images: []string{url}}, nil
}

type fakeImages struct {
	uploaded []string
	deleted  []string
}

func (f *fakeImages) UploadImage(_ context.Context, file io.Reader, filename string) (string, string, error) {
	if _, err := io.ReadAll(file); err != nil {
		return "", "", err
	}
	f.uploaded = append(f.uploaded, filename)
	return "https://cdn.example/" + filename, "products/" + filename, nil
}

func (f *fakeImages) DeleteImage(_ context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return nil
}

type countingCache struct{ n int }

func (c *countingCache) Invalidate() { c.n++ }

func setup(w *fakeWriter, img *fakeImages, cache *countingCache) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(w, img, cache)
	r := gin.New()
	r.POST("/admin/products", h.CreateProduct)
	r.POST("/admin/products/:id/images", h.UploadProductImage)
	return r
}

func multipartImage(t *testing.T, filename string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestCreateProduct(t *testing.T) {
	w, cache := &fakeWriter{}, &countingCache{}
	r := setup(w, &fakeImages{}, cache)

	req := httptest.NewRequest(http.MethodPost, "/admin/products",
		strings.NewReader(`{"title":{"en":"Widget"},"price":10,"original_price":12,"status":"Active"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, w.created, 1)
	assert.Equal(t, "Widget", w.created[0].Title["en"])
	assert.Equal(t, 1, cache.n)
}

func TestCreateProductRejectsInvalidBody(t *testing.T) {
	w, cache := &fakeWriter{}, &countingCache{}
	r := setup(w, &fakeImages{}, cache)

	req := httptest.NewRequest(http.MethodPost, "/admin/products",
		strings.NewReader(`{"title":{"en":"Widget"},"status":"Archived"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, w.created)
	assert.Zero(t, cache.n)
}

func TestUploadProductImage(t *testing.T) {
	w, img, cache := &fakeWriter{}, &fakeImages{}, &countingCache{}
	r := setup(w, img, cache)

	body, ct := multipartImage(t, "front.png")
	req := httptest.NewRequest(http.MethodPost, "/admin/products/"+uuid.NewString()+"/images", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"https://cdn.example/front.png"}, w.attached)
	assert.Empty(t, img.deleted)
	assert.Equal(t, 1, cache.n)
}

func TestUploadProductImageRollsBackOnMissingProduct(t *testing.T) {
	w, img, cache := &fakeWriter{fail: services.ErrNotFound}, &fakeImages{}, &countingCache{}
	r := setup(w, img, cache)

	body, ct := multipartImage(t, "front.png")
	req := httptest.NewRequest(http.MethodPost, "/admin/products/"+uuid.NewString()+"/images", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, []string{"products/front.png"}, img.deleted)
	assert.Zero(t, cache.n)
}

func TestUploadProductImageValidation(t *testing.T) {
	w, img := &fakeWriter{fail: errors.New("unused")}, &fakeImages{}
	r := setup(w, img, &countingCache{})

	body, ct := multipartImage(t, "notes.txt")
	req := httptest.NewRequest(http.MethodPost, "/admin/products/"+uuid.NewString()+"/images", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body, ct = multipartImage(t, "front.png")
	req = httptest.NewRequest(http.MethodPost, "/admin/products/not-a-uuid/images", body)
	req.Header.Set("Content-Type", ct)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, img.uploaded)
}
