package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// ProductService reads the catalog for the storefront and writes it for the CMS.
type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) withRefs(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Brand").
		Preload("Category").
		Preload("Categories")
}

// ListActive returns every active product, newest first. A non-empty scope
// restricts the list to products whose primary or associated category is scope.
func (s *ProductService) ListActive(ctx context.Context, scope string) ([]models.Product, error) {
	q := s.withRefs(ctx).Where("status = ?", models.ProductStatusActive)
	if scope != "" {
		categoryID, err := uuid.Parse(scope)
		if err != nil {
			return nil, fmt.Errorf("scope %q: %w", scope, ErrInvalidID)
		}
		q = q.Where(
			"category_id = ? OR id IN (SELECT product_id FROM product_categories WHERE category_id = ?)",
			categoryID, categoryID,
		)
	}

	products := make([]models.Product, 0)
	if err := q.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	return products, nil
}

// GetByID returns an active product.
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	err := s.withRefs(ctx).
		Where("id = ? AND status = ?", id, models.ProductStatusActive).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return &p, nil
}

// Create inserts a product. Associated categories must already exist; only
// the join rows are written.
func (s *ProductService) Create(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	p := req.ToProduct()
	if err := s.db.WithContext(ctx).Omit("Categories.*").Create(&p).Error; err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &p, nil
}

// AttachImage appends url to the product's images regardless of status.
func (s *ProductService) AttachImage(ctx context.Context, id uuid.UUID, url string) (*models.Product, error) {
	var p models.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		p.Images = append(p.Images, url)
		return tx.Model(&p).Update("images", p.Images).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("attach image to %s: %w", id, err)
	}
	return &p, nil
}

// ─────────────────────────────────────────────────────────────
// Filter metadata
// ─────────────────────────────────────────────────────────────

// BrandFacets lists brands carried by at least one active product.
func (s *ProductService) BrandFacets(ctx context.Context) ([]models.FilterOption, error) {
	facets := make([]models.FilterOption, 0)
	err := s.db.WithContext(ctx).Raw(`
		SELECT b.id::text AS id, b.name AS label, COUNT(p.id) AS count
		FROM brands b
		JOIN products p ON p.brand_id = b.id AND p.status = ?
		GROUP BY b.id, b.name
		ORDER BY b.name ASC
	`, models.ProductStatusActive).Scan(&facets).Error
	if err != nil {
		return nil, fmt.Errorf("brand facets: %w", err)
	}
	return facets, nil
}

// CategoryTree returns active top-level categories with their subcategories.
func (s *ProductService) CategoryTree(ctx context.Context) ([]models.CategoryData, error) {
	var rows []models.Category
	if err := s.db.WithContext(ctx).
		Where("status = ?", "Active").
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("category tree: %w", err)
	}
	return BuildCategoryTree(rows), nil
}

// BuildCategoryTree nests categories under their parents. Orphans whose parent
// is missing are promoted to the top level.
func BuildCategoryTree(rows []models.Category) []models.CategoryData {
	present := make(map[uuid.UUID]bool, len(rows))
	for _, c := range rows {
		present[c.ID] = true
	}
	children := make(map[uuid.UUID][]models.CategoryData)
	var roots []models.Category
	for _, c := range rows {
		if c.ParentID != nil && present[*c.ParentID] {
			children[*c.ParentID] = append(children[*c.ParentID], models.CategoryData{
				ID:       c.ID.String(),
				Name:     c.Name,
				ParentID: c.ParentID.String(),
			})
			continue
		}
		roots = append(roots, c)
	}

	tree := make([]models.CategoryData, 0, len(roots))
	for _, c := range roots {
		subs := children[c.ID]
		sort.SliceStable(subs, func(i, j int) bool { return subs[i].Name < subs[j].Name })
		tree = append(tree, models.CategoryData{ID: c.ID.String(), Name: c.Name, Subcategories: subs})
	}
	sort.SliceStable(tree, func(i, j int) bool { return tree[i].Name < tree[j].Name })
	return tree
}

// PriceBounds is the price span of active products.
func (s *ProductService) PriceBounds(ctx context.Context) (*models.PriceRange, error) {
	var bounds models.PriceRange
	err := s.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MIN(price), 0) AS min, COALESCE(MAX(price), 0) AS max
		FROM products
		WHERE status = ?
	`, models.ProductStatusActive).Scan(&bounds).Error
	if err != nil {
		return nil, fmt.Errorf("price bounds: %w", err)
	}
	return &bounds, nil
}
