package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID         uuid.UUID `json:"_id" gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID `json:"productId" gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `json:"customerId" gorm:"type:uuid;not null;index"`
	Rating     int       `json:"rating" gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Comment    string    `json:"comment" gorm:"type:text"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type CreateReviewRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comment   string    `json:"comment" binding:"max=2000"`
}

// RatingSummary aggregates the reviews of one product. Counts and Percentages
// are indexed by star value (index 0 is unused).
type RatingSummary struct {
	Average     float64    `json:"average"`
	Total       int        `json:"total"`
	Counts      [6]int     `json:"counts"`
	Percentages [6]float64 `json:"percentages"`
}
