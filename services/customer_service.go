package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// CustomerService owns customer records and their durable carts.
type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

// FetchCustomer loads a customer with the durable cart. Entries whose product
// was deleted keep a nil Product.
func (s *CustomerService) FetchCustomer(ctx context.Context, id string) (*models.Customer, error) {
	customerID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("customer %q: %w", id, ErrInvalidID)
	}

	var customer models.Customer
	err = s.db.WithContext(ctx).
		Preload("Cart", func(db *gorm.DB) *gorm.DB { return db.Order("updated_at ASC") }).
		Preload("Cart.Product").
		Preload("Cart.Product.Brand").
		Where("id = ?", customerID).
		First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch customer %s: %w", customerID, err)
	}
	return &customer, nil
}

// SetCartQuantity writes one durable cart line. quantity <= 0 removes it.
func (s *CustomerService) SetCartQuantity(ctx context.Context, customerID, productID uuid.UUID, quantity int) error {
	db := s.db.WithContext(ctx)
	if quantity <= 0 {
		if err := db.Where("customer_id = ? AND product_id = ?", customerID, productID).
			Delete(&models.CartEntry{}).Error; err != nil {
			return fmt.Errorf("remove cart entry: %w", err)
		}
		return nil
	}

	var count int64
	if err := db.Model(&models.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
		return fmt.Errorf("check product: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}

	entry := models.CartEntry{CustomerID: customerID, ProductID: &productID, Quantity: quantity}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}, {Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("upsert cart entry: %w", err)
	}
	return nil
}
