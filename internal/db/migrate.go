package db

import (
	"github.com/mithramani/vivaha-backend/internal/app/model"
	"github.com/mithramani/vivaha-backend/pkg/logger"
	"gorm.io/gorm"
)

// Migrate runs database migrations.
func Migrate(database *gorm.DB) error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.Category{},
		&model.Location{},
		&model.Vendor{},
		&model.VendorService{},
		&model.Package{},
		&model.Review{},
		&model.PortfolioItem{},
		&model.ContactInquiry{},
	}

	if err := database.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
