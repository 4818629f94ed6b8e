package product_controller

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// ProductWriter persists catalog changes.
type ProductWriter interface {
	Create(ctx context.Context, req models.ProductRequest) (*models.Product, error)
	AttachImage(ctx context.Context, id uuid.UUID, url string) (*models.Product, error)
}

// ImageStore uploads product media.
type ImageStore interface {
	UploadImage(ctx context.Context, file io.Reader, filename string) (url, publicID string, err error)
	DeleteImage(ctx context.Context, publicID string) error
}

// Invalidator drops cached storefront listings after a write.
type Invalidator interface {
	Invalidate()
}

type Handler struct {
	products ProductWriter
	images   ImageStore
	cache    Invalidator
}

func NewHandler(products ProductWriter, images ImageStore, cache Invalidator) *Handler {
	return &Handler{products: products, images: images, cache: cache}
}
