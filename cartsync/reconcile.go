// Package cartsync merges a customer's durable cart into the session cart
// once per login.
package cartsync

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// Reconcile computes the actions that bring the durable cart into the local
// one. For every durable entry whose product still exists:
//
//   - an identical local line with a different quantity is set to the durable
//     quantity;
//   - a local variant line ("<productId>-<suffix>") wins and the entry is
//     skipped, quantity included;
//   - otherwise a new line is added.
//
// lang selects the title translation of added lines.
func Reconcile(serverCart []models.CartEntry, localCart []models.CartLineItem, lang string) models.CartActions {
	actions := models.CartActions{
		ToAdd:            []models.CartLineItem{},
		ToUpdateQuantity: []models.QuantityUpdate{},
	}

	local := make(map[string]int, len(localCart))
	for _, it := range localCart {
		local[it.ID] = it.Quantity
	}

	for _, entry := range serverCart {
		p := entry.Product
		if p == nil || p.ID == uuid.Nil || entry.Quantity <= 0 {
			continue
		}
		id := p.ID.String()

		if qty, ok := local[id]; ok {
			if qty != entry.Quantity {
				actions.ToUpdateQuantity = append(actions.ToUpdateQuantity, models.QuantityUpdate{ID: id, Quantity: entry.Quantity})
				local[id] = entry.Quantity
			}
			continue
		}

		if hasVariantLine(localCart, id) {
			continue
		}

		actions.ToAdd = append(actions.ToAdd, models.CartLineItem{
			ID:        id,
			ProductID: id,
			Title:     p.Title.Resolve(lang),
			Image:     p.FirstImage(),
			Price:     p.Prices.UnitPrice(),
			Quantity:  entry.Quantity,
		})
		local[id] = entry.Quantity
	}
	return actions
}

func hasVariantLine(localCart []models.CartLineItem, productID string) bool {
	prefix := productID + "-"
	for _, it := range localCart {
		if strings.HasPrefix(it.ID, prefix) {
			return true
		}
	}
	return false
}
