package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/avillalba/email-blacklist-api/internal/config"
	"github.com/avillalba/email-blacklist-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the engine selected by the environment: embedded SQLite for
// local/tests, PostgreSQL otherwise. TranslateError is enabled so a
// unique-constraint violation surfaces as gorm.ErrDuplicatedKey on both
// engines and callers never have to inspect driver error codes.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.UsesSQLite() {
		dialector = sqlite.Open(cfg.SQLitePath)
	} else {
		dialector = postgres.Open(cfg.DSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.UsesSQLite() {
		// SQLite serializes writers; a single connection avoids lock errors.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	}

	slog.Info("database connected", "engine", dialector.Name())
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.BlacklistEntry{},
		&models.SystemLog{},
	)
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
