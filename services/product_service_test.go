package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

func TestProductService_ListActive_InvalidScope(t *testing.T) {
	db, mock, _ := newMockDB(t)
	svc := NewProductService(db)

	products, err := svc.ListActive(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Nil(t, products)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductService_GetByID(t *testing.T) {
	t.Run("missing product maps to ErrNotFound", func(t *testing.T) {
		db, mock, _ := newMockDB(t)
		svc := NewProductService(db)

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		p, err := svc.GetByID(context.Background(), uuid.New())

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, p)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductService_BrandFacets(t *testing.T) {
	db, mock, _ := newMockDB(t)
	svc := NewProductService(db)

	mock.ExpectQuery(`SELECT b.id::text AS id, b.name AS label, COUNT\(p.id\) AS count`).
		WithArgs(models.ProductStatusActive).
		WillReturnRows(sqlmock.NewRows([]string{"id", "label", "count"}).
			AddRow("b1", "Amul", 3).
			AddRow("b2", "Tata", 1))

	facets, err := svc.BrandFacets(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.FilterOption{
		{ID: "b1", Label: "Amul", Count: 3},
		{ID: "b2", Label: "Tata", Count: 1},
	}, facets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductService_PriceBounds(t *testing.T) {
	db, mock, _ := newMockDB(t)
	svc := NewProductService(db)

	mock.ExpectQuery(`SELECT COALESCE\(MIN\(price\), 0\) AS min`).
		WithArgs(models.ProductStatusActive).
		WillReturnRows(sqlmock.NewRows([]string{"min", "max"}).AddRow(4.5, 320.0))

	bounds, err := svc.PriceBounds(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &models.PriceRange{Min: 4.5, Max: 320}, bounds)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildCategoryTree(t *testing.T) {
	dairy := uuid.New()
	fruit := uuid.New()
	gone := uuid.New()
	rows := []models.Category{
		{ID: uuid.New(), Name: "Milk", ParentID: &dairy},
		{ID: fruit, Name: "Fruit"},
		{ID: dairy, Name: "Dairy"},
		{ID: uuid.New(), Name: "Cheese", ParentID: &dairy},
		{ID: uuid.New(), Name: "Orphan", ParentID: &gone},
	}

	tree := BuildCategoryTree(rows)

	require.Len(t, tree, 3)
	assert.Equal(t, "Dairy", tree[0].Name)
	assert.Equal(t, "Fruit", tree[1].Name)
	assert.Equal(t, "Orphan", tree[2].Name)
	require.Len(t, tree[0].Subcategories, 2)
	assert.Equal(t, "Cheese", tree[0].Subcategories[0].Name)
	assert.Equal(t, dairy.String(), tree[0].Subcategories[0].ParentID)
	assert.Empty(t, tree[1].Subcategories)
}

func TestBuildCategoryTree_Empty(t *testing.T) {
	tree := BuildCategoryTree(nil)
	assert.NotNil(t, tree)
	assert.Empty(t, tree)
}
