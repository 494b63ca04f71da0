package database

import (
	"context"
	"fmt"
	"time"

	"pos-api/internal/config"
	"pos-api/internal/models"
	"pos-api/pkg/logging"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var (
	DB          *gorm.DB
	RedisClient *redis.Client
)

// InitDatabase initializes database connections
func InitDatabase() error {
	devMode, err := initStore()
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}

	// Redis is optional; without it product lookups skip the cache
	if err := initRedis(); err != nil {
		return fmt.Errorf("failed to initialize Redis: %w", err)
	}

	// Auto migrate tables
	if err := autoMigrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// The catalog is managed externally; only the local dev store gets samples
	if devMode {
		if err := seedCatalog(); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	return nil
}

// initStore opens the relational store. Returns true when running on the
// local SQLite fallback.
func initStore() (bool, error) {
	var err error

	cfg := config.AppConfig
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	}

	if cfg.DBHost == "" {
		// Fallback to SQLite for development
		logging.Infof("DB_HOST not set, using SQLite for development")
		DB, err = gorm.Open(sqlite.Open("pos-api.db"), gormConfig)
		if err != nil {
			return false, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := configurePool(); err != nil {
			return false, err
		}
		return true, nil
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	DB, err = gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return false, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := configurePool(); err != nil {
		return false, err
	}

	logging.Infof("Database connected successfully")
	return false, nil
}

// configurePool bounds the connection pool so each in-flight purchase gets
// its own connection for the duration of its unit of work.
func configurePool() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return nil
}

// initRedis initializes the optional Redis cache connection
func initRedis() error {
	redisURL := config.AppConfig.RedisURL
	if redisURL == "" {
		logging.Infof("REDIS_URL not set, product lookup cache disabled")
		return nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := RedisClient.Ping(ctx).Result(); err != nil {
		logging.Errorf("Failed to connect to Redis: %v", err)
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logging.Infof("Redis connected successfully")
	return nil
}

// autoMigrate performs database migration
func autoMigrate() error {
	return DB.AutoMigrate(
		&models.Product{},
		&models.Transaction{},
		&models.TransactionDetail{},
	)
}

// seedCatalog inserts sample products for local development
func seedCatalog() error {
	samples := []models.Product{
		{Code: "A1", Name: "Widget", Price: decimal.RequireFromString("9.99")},
		{Code: "B2", Name: "Gadget", Price: decimal.RequireFromString("14.50")},
		{Code: "C3", Name: "Doohickey", Price: decimal.RequireFromString("2.25")},
	}

	for _, sample := range samples {
		// Use FirstOrCreate to avoid duplicates
		result := DB.Where("\"CODE\" = ?", sample.Code).FirstOrCreate(&sample)
		if result.Error != nil {
			return fmt.Errorf("failed to seed product %s: %w", sample.Code, result.Error)
		}
	}

	logging.Infof("Sample catalog seeded successfully")
	return nil
}

// GetDB returns database instance
func GetDB() *gorm.DB {
	return DB
}

// GetRedis returns Redis client (nil when the cache is disabled)
func GetRedis() *redis.Client {
	return RedisClient
}

// CloseDatabase closes database connections
func CloseDatabase() error {
	if sqlDB, err := DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logging.Errorf("Failed to close database: %v", err)
		}
	}

	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logging.Errorf("Failed to close Redis: %v", err)
		}
	}

	return nil
}
