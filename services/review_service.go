package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"gorm.io/gorm"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// Querier is the subset of *pgxpool.Pool used for aggregate reads.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type ReviewService struct {
	db   *gorm.DB
	pool Querier
}

func NewReviewService(db *gorm.DB, pool Querier) *ReviewService {
	return &ReviewService{db: db, pool: pool}
}

// Create stores a review and refreshes the product's average rating in the
// same transaction.
func (s *ReviewService) Create(ctx context.Context, customerID uuid.UUID, req models.CreateReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	review := models.Review{
		ProductID:  req.ProductID,
		CustomerID: customerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Product{}).Where("id = ?", req.ProductID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		return tx.Exec(`
			UPDATE products
			SET average_rating = (SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE product_id = ?)
			WHERE id = ?
		`, req.ProductID, req.ProductID).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("create review: %w", err)
	}
	return &review, nil
}

// Summary aggregates the ratings of a product.
func (s *ReviewService) Summary(ctx context.Context, productID uuid.UUID) (models.RatingSummary, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT rating, COUNT(*) FROM reviews WHERE product_id = $1 GROUP BY rating`, productID)
	if err != nil {
		return models.RatingSummary{}, fmt.Errorf("rating summary: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var rating, n int
		if err := rows.Scan(&rating, &n); err != nil {
			return models.RatingSummary{}, fmt.Errorf("rating summary scan: %w", err)
		}
		counts[rating] = n
	}
	if err := rows.Err(); err != nil {
		return models.RatingSummary{}, fmt.Errorf("rating summary rows: %w", err)
	}
	return BuildRatingSummary(counts), nil
}

// BuildRatingSummary folds per-star counts into a summary. Ratings outside
// 1..5 are ignored. Average and percentages are rounded to one decimal.
func BuildRatingSummary(counts map[int]int) models.RatingSummary {
	var sum models.RatingSummary
	weighted := 0
	for star := 1; star <= 5; star++ {
		n := counts[star]
		if n < 0 {
			n = 0
		}
		sum.Counts[star] = n
		sum.Total += n
		weighted += star * n
	}
	if sum.Total == 0 {
		return sum
	}
	sum.Average = round1(float64(weighted) / float64(sum.Total))
	for star := 1; star <= 5; star++ {
		sum.Percentages[star] = round1(float64(sum.Counts[star]) * 100 / float64(sum.Total))
	}
	return sum
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
