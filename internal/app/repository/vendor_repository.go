package repository

import (
	"github.com/mithramani/vivaha-backend/internal/app/model"
	"github.com/mithramani/vivaha-backend/pkg/logger"
	"gorm.io/gorm"
)

// VendorFilter narrows directory listings. ActiveOnly is expected to be
// true for every public listing; profile lookups bypass it entirely.
type VendorFilter struct {
	CategoryID      *uint
	StateSlug       string
	ActiveOnly      bool
	SortByRating    bool
	IncludePackages bool
}

type VendorRepository interface {
	Create(vendor *model.Vendor) error
	BulkCreate(vendors []model.Vendor, batchSize int) error
	FindAll(filter VendorFilter) ([]model.Vendor, error)
	FindBySlug(slug string, includeRelations bool) (*model.Vendor, error)
	RecalculateRatings() (int64, error)
}

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

// ordered keeps nested collections in insertion order regardless of the
// database's default row ordering.
func ordered(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func (r *vendorRepository) preloadRelations(query *gorm.DB, includePackages bool) *gorm.DB {
	query = query.
		Preload("Category").
		Preload("Location").
		Preload("Services", ordered).
		Preload("Reviews", ordered).
		Preload("Portfolio", ordered)
	if includePackages {
		query = query.Preload("Packages", ordered)
	}
	return query
}

func (r *vendorRepository) Create(vendor *model.Vendor) error {
	logger.Debug("Creating vendor in database", map[string]interface{}{
		"name":        vendor.Name,
		"category_id": vendor.CategoryID,
		"location_id": vendor.LocationID,
	})

	if err := r.db.Create(vendor).Error; err != nil {
		logger.Error("Failed to create vendor in database", err, map[string]interface{}{
			"name":        vendor.Name,
			"category_id": vendor.CategoryID,
		})
		return err
	}

	logger.Debug("Vendor created in database", map[string]interface{}{
		"vendor_id": vendor.ID,
		"slug":      vendor.Slug,
	})
	return nil
}

func (r *vendorRepository) BulkCreate(vendors []model.Vendor, batchSize int) error {
	if len(vendors) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 100
	}

	logger.Info("Bulk creating vendors", map[string]interface{}{
		"count":      len(vendors),
		"batch_size": batchSize,
	})

	if err := r.db.CreateInBatches(vendors, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create vendors", err, map[string]interface{}{
			"count": len(vendors),
		})
		return err
	}
	return nil
}

func (r *vendorRepository) FindAll(filter VendorFilter) ([]model.Vendor, error) {
	logger.Debug("Finding vendors", map[string]interface{}{
		"category_id":  filter.CategoryID,
		"state_slug":   filter.StateSlug,
		"active_only":  filter.ActiveOnly,
		"sort_by_rate": filter.SortByRating,
	})

	query := r.preloadRelations(r.db.Model(&model.Vendor{}), filter.IncludePackages)

	if filter.CategoryID != nil {
		query = query.Where("vendors.category_id = ?", *filter.CategoryID)
	}
	if filter.StateSlug != "" {
		query = query.Joins("JOIN locations ON locations.id = vendors.location_id").
			Where("locations.state_slug = ?", filter.StateSlug)
	}
	if filter.ActiveOnly {
		query = query.Where("vendors.is_active = ?", true)
	}
	if filter.SortByRating {
		query = query.Order("vendors.rating DESC")
	}

	var vendors []model.Vendor
	if err := query.Find(&vendors).Error; err != nil {
		logger.Error("Failed to find vendors", err, map[string]interface{}{
			"category_id": filter.CategoryID,
			"state_slug":  filter.StateSlug,
		})
		return nil, err
	}

	logger.Debug("Vendors found", map[string]interface{}{
		"count": len(vendors),
	})
	return vendors, nil
}

func (r *vendorRepository) FindBySlug(slug string, includeRelations bool) (*model.Vendor, error) {
	logger.Debug("Finding vendor by slug", map[string]interface{}{
		"slug": slug,
	})

	query := r.db.Model(&model.Vendor{})
	if includeRelations {
		query = r.preloadRelations(query, true)
	}

	var vendor model.Vendor
	if err := query.Where("slug = ?", slug).First(&vendor).Error; err != nil {
		logger.Debug("Vendor lookup by slug failed", map[string]interface{}{
			"slug":  slug,
			"error": err.Error(),
		})
		return nil, err
	}

	return &vendor, nil
}

// RecalculateRatings rewrites every vendor's rating and review_count from
// the reviews table. Returns the number of vendors touched.
func (r *vendorRepository) RecalculateRatings() (int64, error) {
	result := r.db.Exec(`
		UPDATE vendors SET
			rating = COALESCE((SELECT AVG(rating) FROM reviews WHERE reviews.vendor_id = vendors.id), 0),
			review_count = (SELECT COUNT(*) FROM reviews WHERE reviews.vendor_id = vendors.id)
		WHERE EXISTS (SELECT 1 FROM reviews WHERE reviews.vendor_id = vendors.id)`)
	if result.Error != nil {
		logger.Error("Failed to recalculate vendor ratings", result.Error)
		return 0, result.Error
	}

	logger.Info("Vendor ratings recalculated", map[string]interface{}{
		"vendors_updated": result.RowsAffected,
	})
	return result.RowsAffected, nil
}
