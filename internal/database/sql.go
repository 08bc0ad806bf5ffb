package database

import (
	"embed"
	"fmt"

	"admin/internal/models"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrations embed.FS

func InitDB(config models.DatabaseConfiguration) *gorm.DB {
	sslMode := config.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		config.Host, config.User, config.Password, config.Name, config.Port, sslMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		zap.L().Fatal("Failed to connect to database", zap.Error(err))
	}

	runMigrations(db)

	return db
}

func runMigrations(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		zap.L().Fatal("Failed to get database handle", zap.Error(err))
	}

	goose.SetBaseFS(migrations)

	if err = goose.SetDialect("postgres"); err != nil {
		zap.L().Fatal("Failed to set migration dialect", zap.Error(err))
	}

	if err = goose.Up(sqlDB, "migrations"); err != nil {
		zap.L().Fatal("Failed to run migrations", zap.Error(err))
	}

	zap.L().Info("Database migrations applied")
}
