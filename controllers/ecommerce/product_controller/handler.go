package product_controller

import (
	"context"

	"github.com/google/uuid"

	"github.com/ovs-innovation/farmcykart1-sub002/catalog"
	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// CatalogSource returns the active products of a scope and the catalog
// version they were read under.
type CatalogSource interface {
	Get(ctx context.Context, scope string) ([]models.Product, uint64, error)
}

type ProductReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type RatingSummarizer interface {
	Summary(ctx context.Context, productID uuid.UUID) (models.RatingSummary, error)
}

// Handler serves the storefront catalog.
type Handler struct {
	catalog CatalogSource
	reader  ProductReader
	ratings RatingSummarizer
	memo    *catalog.Memo
	lang    string
}

func NewHandler(source CatalogSource, reader ProductReader, ratings RatingSummarizer, memo *catalog.Memo, lang string) *Handler {
	if memo == nil {
		memo = catalog.NewMemo(0)
	}
	if lang == "" {
		lang = models.DefaultLanguage
	}
	return &Handler{catalog: source, reader: reader, ratings: ratings, memo: memo, lang: lang}
}
