package database

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"CollectKeeper/internal/database/models"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config selects the database driver. SQLite is the default: the store
// is designed around a single embedded database file with one process
// writing to it. MySQL stays available for server deployments.
type Config struct {
	Driver string
	DSN    string
}

var (
	instance *gorm.DB
	once     sync.Once
	onceErr  error
)

// LoadEnv loads a .env file from the usual locations. Missing files are
// not fatal; system environment variables still apply.
func LoadEnv() error {
	possiblePaths := []string{
		".env",
		"./.env",
		"../.env",
		"../../.env",
	}

	for _, path := range possiblePaths {
		if err := godotenv.Load(path); err == nil {
			return nil
		}
	}
	return fmt.Errorf("could not load .env file from any path")
}

// ConfigFromEnv builds a Config from DB_DRIVER and either DB_PATH
// (sqlite) or the DB_* connection variables (mysql).
func ConfigFromEnv() Config {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = DriverSQLite
	}

	if driver == DriverMySQL {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USERNAME"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_DATABASE"),
		)
		return Config{Driver: DriverMySQL, DSN: dsn}
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "collectkeeper.db"
	}
	return Config{Driver: DriverSQLite, DSN: path}
}

// Connect opens a database handle for the given config.
func Connect(cfg Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	var db *gorm.DB
	var err error
	switch cfg.Driver {
	case DriverMySQL:
		db, err = gorm.Open(mysql.Open(cfg.DSN), gormCfg)
	case DriverSQLite:
		db, err = gorm.Open(sqlite.Open(cfg.DSN), gormCfg)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if cfg.Driver == DriverSQLite {
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, err
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database ping error: %w", err)
	}

	return db, nil
}

// GetConnect returns the process-wide handle, connecting on first use
// with the environment config.
func GetConnect() (*gorm.DB, error) {
	once.Do(func() {
		instance, onceErr = Connect(ConfigFromEnv())
	})
	return instance, onceErr
}

// AutoMigrate creates or extends the schema for every core entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.GeneralPage{},
		&models.ItemTemplate{},
		&models.Attribute{},
		&models.Collection{},
		&models.CollectionCategory{},
		&models.Item{},
		&models.ItemValue{},
	)
}
