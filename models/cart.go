package models

import (
	"time"

	"github.com/google/uuid"
)

// CartEntry is one line of the durable cart stored on the customer record.
// Product is nil when the referenced product has been deleted since the entry
// was written.
type CartEntry struct {
	ID         uuid.UUID  `json:"-" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID uuid.UUID  `json:"-" gorm:"type:uuid;not null;uniqueIndex:idx_cart_customer_product"`
	ProductID  *uuid.UUID `json:"-" gorm:"type:uuid;uniqueIndex:idx_cart_customer_product"`
	Product    *Product   `json:"productId" gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:SET NULL"`
	Quantity   int        `json:"quantity" gorm:"not null;check:quantity > 0"`
	UpdatedAt  time.Time  `json:"-" gorm:"autoUpdateTime"`
}

func (CartEntry) TableName() string {
	return "customer_cart_items"
}

// CartLineItem is a line of the session (working) cart. Variant selections use
// an ID of the form "<productId>-<variantSuffix>".
type CartLineItem struct {
	ID        string  `json:"id" binding:"required"`
	ProductID string  `json:"productId,omitempty"`
	Title     string  `json:"title"`
	Image     string  `json:"image"`
	Price     float64 `json:"price" binding:"min=0"`
	Quantity  int     `json:"quantity"`
	Variant   *string `json:"variant,omitempty"`
}

// QuantityUpdate sets the quantity of an existing session cart line.
type QuantityUpdate struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// CartActions is the outcome of reconciling the durable cart into the session cart.
type CartActions struct {
	ToAdd            []CartLineItem   `json:"toAdd"`
	ToUpdateQuantity []QuantityUpdate `json:"toUpdateQuantity"`
}

// Empty reports whether there is nothing to apply.
func (a CartActions) Empty() bool {
	return len(a.ToAdd) == 0 && len(a.ToUpdateQuantity) == 0
}

// AddCartItemRequest is the body of a session cart add.
type AddCartItemRequest struct {
	Item     CartLineItem `json:"item" binding:"required"`
	Quantity int          `json:"quantity" binding:"required,min=1"`
}

// UpdateQuantityRequest is the body of a quantity change.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

// CartView is what the session cart endpoint returns.
type CartView struct {
	Items      []CartLineItem `json:"items"`
	TotalItems int            `json:"totalItems"`
	Subtotal   float64        `json:"subtotal"`
	Sync       string         `json:"sync,omitempty"`
}

// NewCartView totals the given lines.
func NewCartView(items []CartLineItem, sync string) CartView {
	view := CartView{Items: items, Sync: sync}
	if view.Items == nil {
		view.Items = []CartLineItem{}
	}
	for _, it := range items {
		view.TotalItems += it.Quantity
		view.Subtotal += it.Price * float64(it.Quantity)
	}
	return view
}
