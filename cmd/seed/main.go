package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ovs-innovation/farmcykart1-sub002/config"
	"github.com/ovs-innovation/farmcykart1-sub002/models"
	"github.com/ovs-innovation/farmcykart1-sub002/services"
)

// main seeds a small demo catalog and a customer with a saved cart, then
// prints a token for that customer.
// Usage: go run ./cmd/seed
func main() {
	settings := config.Load()
	log := config.NewLogger(settings)
	defer func() { _ = log.Sync() }()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("FARMCYKART - Demo Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")

	if err := config.InitDB(settings, log); err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer config.CloseDB()

	if err := config.Migrate(
		&models.Brand{},
		&models.Category{},
		&models.Product{},
		&models.Customer{},
		&models.CartEntry{},
		&models.Review{},
	); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	ctx, cancel := config.WithCustomTimeout(time.Minute)
	defer cancel()

	customer, err := seed(ctx, config.DB)
	if err != nil {
		log.Fatal("seeding failed", zap.Error(err))
	}
	fmt.Printf("✓ Customer %s <%s>\n", customer.Name, customer.Email)

	if settings.JWTSecret == "" {
		fmt.Println("JWT_SECRET not set; skipping token")
		return
	}
	jwtService, err := services.NewJWTService(settings.JWTSecret, settings.JWTExpiry)
	if err != nil {
		log.Fatal("jwt service", zap.Error(err))
	}
	token, err := jwtService.Generate(customer.ID.String(), customer.Email, customer.Name, customer.Role)
	if err != nil {
		log.Fatal("token generation failed", zap.Error(err))
	}
	fmt.Println()
	fmt.Println("Bearer token:")
	fmt.Println(token)
}

func seed(ctx context.Context, db *gorm.DB) (*models.Customer, error) {
	var customer models.Customer
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		herbal := models.Brand{ID: uuid.MustParse("0190a000-0000-7000-8000-000000000001"), Name: "Herbal Roots"}
		green := models.Brand{ID: uuid.MustParse("0190a000-0000-7000-8000-000000000002"), Name: "Green Valley"}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&[]models.Brand{herbal, green}).Error; err != nil {
			return fmt.Errorf("brands: %w", err)
		}

		wellness := models.Category{ID: uuid.MustParse("0190a000-0000-7000-8000-000000000101"), Name: "Wellness"}
		teas := models.Category{ID: uuid.MustParse("0190a000-0000-7000-8000-000000000102"), Name: "Herbal Teas", ParentID: &wellness.ID}
		oils := models.Category{ID: uuid.MustParse("0190a000-0000-7000-8000-000000000103"), Name: "Essential Oils", ParentID: &wellness.ID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&[]models.Category{wellness, teas, oils}).Error; err != nil {
			return fmt.Errorf("categories: %w", err)
		}

		products := []models.ProductRequest{
			{
				Title:         map[string]string{"en": "Tulsi Green Tea", "hi": "तुलसी ग्रीन टी"},
				Slug:          "tulsi-green-tea",
				BrandID:       &herbal.ID,
				CategoryID:    &teas.ID,
				Images:        []string{"https://res.cloudinary.com/demo/image/upload/tulsi.jpg"},
				Price:         199,
				OriginalPrice: 249,
				Stock:         120,
				Status:        models.ProductStatusActive,
			},
			{
				Title:         map[string]string{"en": "Chamomile Infusion"},
				Slug:          "chamomile-infusion",
				BrandID:       &green.ID,
				CategoryID:    &teas.ID,
				Price:         0,
				OriginalPrice: 299,
				Stock:         40,
				Status:        models.ProductStatusActive,
			},
			{
				Title:         map[string]string{"en": "Eucalyptus Oil"},
				Slug:          "eucalyptus-oil",
				BrandID:       &green.ID,
				CategoryID:    &oils.ID,
				CategoryIDs:   []uuid.UUID{wellness.ID},
				Price:         349,
				OriginalPrice: 349,
				Stock:         15,
				Status:        models.ProductStatusActive,
			},
		}

		var created []models.Product
		for _, req := range products {
			var existing models.Product
			err := tx.Where("slug = ?", req.Slug).First(&existing).Error
			if err == nil {
				created = append(created, existing)
				continue
			}
			if err != gorm.ErrRecordNotFound {
				return fmt.Errorf("lookup %s: %w", req.Slug, err)
			}
			p := req.ToProduct()
			if err := tx.Omit("Categories.*").Create(&p).Error; err != nil {
				return fmt.Errorf("product %s: %w", req.Slug, err)
			}
			created = append(created, p)
		}
		fmt.Printf("✓ %d products\n", len(created))

		customer = models.Customer{Name: "Demo Customer", Email: "demo@farmcykart.test", Role: models.RoleCustomer}
		if err := tx.Where("email = ?", customer.Email).FirstOrCreate(&customer).Error; err != nil {
			return fmt.Errorf("customer: %w", err)
		}

		for i, p := range created[:2] {
			entry := models.CartEntry{CustomerID: customer.ID, ProductID: &p.ID, Quantity: i + 1}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "customer_id"}, {Name: "product_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
			}).Create(&entry).Error; err != nil {
				return fmt.Errorf("cart entry: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
