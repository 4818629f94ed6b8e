package cartsync

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

var productP = uuid.MustParse("0190c000-0000-7000-8000-0000000000aa")

func entry(p *models.Product, qty int) models.CartEntry {
	e := models.CartEntry{Product: p, Quantity: qty}
	if p != nil {
		e.ProductID = &p.ID
	}
	return e
}

func widget() *models.Product {
	return &models.Product{
		ID:     productP,
		Title:  models.LocalizedText{"en": "Widget"},
		Images: datatypes.JSONSlice[string]{"img.png", "img-2.png"},
		Prices: models.Prices{Price: 10},
	}
}

func TestReconcile_VariantLineSuppressesServerEntry(t *testing.T) {
	local := []models.CartLineItem{{ID: productP.String() + "-red", Quantity: 1}}

	actions := Reconcile([]models.CartEntry{entry(widget(), 3)}, local, "en")

	assert.True(t, actions.Empty())
}

func TestReconcile_ServerQuantityWins(t *testing.T) {
	local := []models.CartLineItem{{ID: productP.String(), Quantity: 2}}

	actions := Reconcile([]models.CartEntry{entry(widget(), 5)}, local, "en")

	assert.Empty(t, actions.ToAdd)
	assert.Equal(t, []models.QuantityUpdate{{ID: productP.String(), Quantity: 5}}, actions.ToUpdateQuantity)
}

func TestReconcile_SameQuantityIsNoop(t *testing.T) {
	local := []models.CartLineItem{{ID: productP.String(), Quantity: 5}}

	actions := Reconcile([]models.CartEntry{entry(widget(), 5)}, local, "en")

	assert.True(t, actions.Empty())
}

func TestReconcile_AddsOnFirstLogin(t *testing.T) {
	actions := Reconcile([]models.CartEntry{entry(widget(), 1)}, nil, "en")

	require.Len(t, actions.ToAdd, 1)
	assert.Empty(t, actions.ToUpdateQuantity)
	assert.Equal(t, models.CartLineItem{
		ID:        productP.String(),
		ProductID: productP.String(),
		Title:     "Widget",
		Image:     "img.png",
		Price:     10,
		Quantity:  1,
	}, actions.ToAdd[0])
}

func TestReconcile_PriceFallsBackToOriginalPrice(t *testing.T) {
	p := widget()
	p.Prices = models.Prices{OriginalPrice: 14}

	actions := Reconcile([]models.CartEntry{entry(p, 2)}, nil, "en")

	require.Len(t, actions.ToAdd, 1)
	assert.Equal(t, 14.0, actions.ToAdd[0].Price)
}

func TestReconcile_TitleLanguage(t *testing.T) {
	p := widget()
	p.Title["de"] = "Ding"

	de := Reconcile([]models.CartEntry{entry(p, 1)}, nil, "de")
	fr := Reconcile([]models.CartEntry{entry(p, 1)}, nil, "fr")

	assert.Equal(t, "Ding", de.ToAdd[0].Title)
	assert.Equal(t, "Widget", fr.ToAdd[0].Title)
}

func TestReconcile_DropsUnusableEntries(t *testing.T) {
	noImage := &models.Product{ID: uuid.Must(uuid.NewV7()), Prices: models.Prices{Price: 3}}

	server := []models.CartEntry{
		entry(nil, 2),
		entry(&models.Product{}, 2),
		entry(widget(), 0),
		entry(noImage, 1),
	}

	actions := Reconcile(server, nil, "en")

	require.Len(t, actions.ToAdd, 1)
	assert.Equal(t, noImage.ID.String(), actions.ToAdd[0].ID)
	assert.Equal(t, "", actions.ToAdd[0].Image)
	assert.Equal(t, "", actions.ToAdd[0].Title)
}

func TestReconcile_DuplicateServerEntriesAddOnce(t *testing.T) {
	actions := Reconcile([]models.CartEntry{entry(widget(), 1), entry(widget(), 4)}, nil, "en")

	require.Len(t, actions.ToAdd, 1)
	assert.Equal(t, []models.QuantityUpdate{{ID: productP.String(), Quantity: 4}}, actions.ToUpdateQuantity)
}

func TestReconcile_VariantPrefixMustIncludeSeparator(t *testing.T) {
	// "<id>9" is another product, not a variant of <id>
	local := []models.CartLineItem{{ID: productP.String() + "9", Quantity: 1}}

	actions := Reconcile([]models.CartEntry{entry(widget(), 1)}, local, "en")

	assert.Len(t, actions.ToAdd, 1)
}
