package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	// DB serves the ORM side: products, customers, carts, reviews.
	DB *gorm.DB
	// Pool serves raw aggregate queries and health checks.
	Pool *pgxpool.Pool
)

// InitDB opens both the pgx pool and the gorm handle against DATABASE_URL.
func InitDB(s *Settings, log *zap.Logger) error {
	ctx, cancel := WithTimeout()
	defer cancel()

	pool, err := pgxpool.New(ctx, s.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect postgres (pgx): %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("ping postgres (pgx): %w", err)
	}
	Pool = pool
	log.Info("database connected", zap.String("driver", "pgx"))

	db, err := gorm.Open(postgres.Open(s.DatabaseURL), &gorm.Config{
		Logger:  newGormLogger(log, s.IsProduction()),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return fmt.Errorf("connect postgres (gorm): %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	DB = db
	log.Info("database connected", zap.String("driver", "gorm"))
	return nil
}

// Migrate creates or updates the schema for the given models.
func Migrate(models ...any) error {
	if DB == nil {
		return fmt.Errorf("migrate: database not initialised")
	}
	return DB.AutoMigrate(models...)
}

func CloseDB() {
	if Pool != nil {
		Pool.Close()
	}
	if DB != nil {
		if sqlDB, _ := DB.DB(); sqlDB != nil {
			sqlDB.Close()
		}
	}
}

// WithTimeout returns a context with a 10s timeout (bumped from 5s for Neon cold starts)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), QueryTimeout)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

// QueryTimeout bounds request-scoped database work.
const QueryTimeout = 10 * time.Second
