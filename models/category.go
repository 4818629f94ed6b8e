package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a catalog category; ParentID is nil for top-level ones.
type Category struct {
	ID        uuid.UUID  `json:"_id" gorm:"type:uuid;primaryKey"`
	Name      string     `json:"name" gorm:"not null"`
	Status    string     `json:"status,omitempty" gorm:"type:varchar(20);default:'Active';check:status IN ('Active', 'Inactive')"`
	ParentID  *uuid.UUID `json:"parentId,omitempty" gorm:"type:uuid;index"`
	CreatedAt time.Time  `json:"-" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"-" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - runs automatically before creating a record
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}
