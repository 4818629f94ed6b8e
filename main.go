// @title Farmcykart Storefront API
// @version 1.0
// @description Storefront catalog, session cart and customer cart API
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ovs-innovation/farmcykart1-sub002/cache"
	"github.com/ovs-innovation/farmcykart1-sub002/cartstore"
	"github.com/ovs-innovation/farmcykart1-sub002/cartsync"
	"github.com/ovs-innovation/farmcykart1-sub002/catalog"
	"github.com/ovs-innovation/farmcykart1-sub002/config"
	cms_product "github.com/ovs-innovation/farmcykart1-sub002/controllers/cms/product_controller"
	store_cart "github.com/ovs-innovation/farmcykart1-sub002/controllers/ecommerce/cart_controller"
	store_category "github.com/ovs-innovation/farmcykart1-sub002/controllers/ecommerce/category_controller"
	store_filter "github.com/ovs-innovation/farmcykart1-sub002/controllers/ecommerce/filter_controller"
	store_product "github.com/ovs-innovation/farmcykart1-sub002/controllers/ecommerce/product_controller"
	store_review "github.com/ovs-innovation/farmcykart1-sub002/controllers/ecommerce/review_controller"
	store_shipping "github.com/ovs-innovation/farmcykart1-sub002/controllers/ecommerce/shipping_controller"
	"github.com/ovs-innovation/farmcykart1-sub002/controllers/ecommerce/user_controller/profile_controller"
	"github.com/ovs-innovation/farmcykart1-sub002/controllers/ecommerce/user_controller/saved_cart_controller"
	store_wishlist "github.com/ovs-innovation/farmcykart1-sub002/controllers/ecommerce/wishlist_controller"
	"github.com/ovs-innovation/farmcykart1-sub002/controllers/system_controller"
	"github.com/ovs-innovation/farmcykart1-sub002/middleware"
	"github.com/ovs-innovation/farmcykart1-sub002/models"
	"github.com/ovs-innovation/farmcykart1-sub002/routes/cms_routes"
	"github.com/ovs-innovation/farmcykart1-sub002/routes/ecommerce_routes"
	"github.com/ovs-innovation/farmcykart1-sub002/services"
)

const (
	memoCapacity       = 32
	sessionSweepPeriod = 10 * time.Minute
	shutdownTimeout    = 15 * time.Second
)

func main() {
	settings := config.Load()
	log := config.NewLogger(settings)
	defer func() { _ = log.Sync() }()

	if err := run(settings, log); err != nil {
		log.Error("server exited", zap.Error(err))
		os.Exit(1)
	}
}

func run(settings *config.Settings, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to DB
	if err := config.InitDB(settings, log); err != nil {
		return err
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
		return err
	}

	// Redis connection
	if err := config.ConnectRedis(settings, log); err != nil {
		return err
	}
	defer config.CloseRedis()

	// Services
	jwtService, err := services.NewJWTService(settings.JWTSecret, settings.JWTExpiry)
	if err != nil {
		return err
	}
	cloudinary, err := services.NewCloudinaryService(
		settings.CloudinaryCloudName,
		settings.CloudinaryAPIKey,
		settings.CloudinaryAPISecret,
		settings.CloudinaryFolder,
	)
	if err != nil {
		return err
	}
	shiprocket := services.NewShiprocketService(services.ShiprocketConfig{
		BaseURL:        settings.ShiprocketBaseURL,
		Email:          settings.ShiprocketEmail,
		Password:       settings.ShiprocketPassword,
		PickupPostcode: settings.ShiprocketPickup,
		Timeout:        15 * time.Second,
	})
	products := services.NewProductService(config.DB)
	customers := services.NewCustomerService(config.DB)
	reviews := services.NewReviewService(config.DB, config.Pool)

	productCache := cache.NewProductCache(products.ListActive, settings.CatalogCacheTTL)
	memo := catalog.NewMemo(memoCapacity)

	backend := cartstore.NewRedisBackend(config.RedisClient, "store:", settings.CartTTL)
	registry := cartsync.NewRegistry(customers, log, settings.DefaultLanguage, settings.CartTTL)
	go registry.Run(ctx, sessionSweepPeriod)

	if settings.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     settings.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	health := system_controller.NewHandler(config.Pool, system_controller.PingerFunc(func(ctx context.Context) error {
		return config.RedisClient.Ping(ctx).Err()
	}))
	router.GET("/healthz", health.Healthz)

	// Register API routes
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(config.RedisClient, settings.RateLimitRequests, settings.RateLimitWindow))

	ecommerce_routes.SetupStorefrontRoutes(api, ecommerce_routes.StorefrontHandlers{
		Products:   store_product.NewHandler(productCache, products, reviews, memo, settings.DefaultLanguage),
		Categories: store_category.NewHandler(products),
		Filters:    store_filter.NewHandler(products),
		Cart:       store_cart.NewHandler(backend, registry),
		Wishlist:   store_wishlist.NewHandler(backend, products, settings.DefaultLanguage),
		Shipping:   store_shipping.NewHandler(shiprocket),
	}, jwtService, ecommerce_routes.SessionOptions{
		TTL:    settings.CartTTL,
		Secure: settings.IsProduction(),
	})

	ecommerce_routes.SetupUserRoutes(api, ecommerce_routes.UserHandlers{
		Profile:   profile_controller.NewHandler(customers),
		SavedCart: saved_cart_controller.NewHandler(customers, settings.DefaultLanguage),
		Reviews:   store_review.NewHandler(reviews, productCache),
	}, jwtService)

	// Register CMS routes (at /api/v1/admin prefix)
	adminGroup := api.Group("/admin")
	cms_routes.SetupProductRoutes(adminGroup, cms_product.NewHandler(products, cloudinary, productCache), jwtService)

	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", settings.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
