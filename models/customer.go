package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is the storefront account. Its Cart is the durable cart, read at
// login time by the reconciliation routine.
type Customer struct {
	ID        uuid.UUID   `json:"_id" gorm:"type:uuid;primaryKey"`
	Name      string      `json:"name" gorm:"type:varchar(255);not null"`
	Email     string      `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone     *string     `json:"phone,omitempty" gorm:"type:varchar(50)"`
	Role      string      `json:"role,omitempty" gorm:"type:varchar(20);not null;default:'customer'"`
	Cart      []CartEntry `json:"cart" gorm:"foreignKey:CustomerID"`
	CreatedAt time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time   `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)
