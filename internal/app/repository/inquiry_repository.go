package repository

import (
	"github.com/mithramani/vivaha-backend/internal/app/model"
	"github.com/mithramani/vivaha-backend/pkg/logger"
	"gorm.io/gorm"
)

type InquiryRepository interface {
	Create(inquiry *model.ContactInquiry) error
	FindAll() ([]model.ContactInquiry, error)
	CountByVendor(vendorID uint) (int64, error)
}

type inquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

// Create inserts a single inquiry row. The insert is its own transaction:
// it either lands entirely (id, reference id, timestamp assigned) or not
// at all.
func (r *inquiryRepository) Create(inquiry *model.ContactInquiry) error {
	logger.Debug("Creating contact inquiry in database", map[string]interface{}{
		"vendor_id":   inquiry.VendorID,
		"vendor_slug": inquiry.VendorSlug,
	})

	if err := r.db.Create(inquiry).Error; err != nil {
		logger.Error("Failed to create contact inquiry in database", err, map[string]interface{}{
			"vendor_id":   inquiry.VendorID,
			"vendor_slug": inquiry.VendorSlug,
		})
		return err
	}

	logger.Debug("Contact inquiry created in database", map[string]interface{}{
		"inquiry_id":   inquiry.ID,
		"reference_id": inquiry.ReferenceID,
	})
	return nil
}

// FindAll returns every inquiry, newest first, with the live vendor's
// name and slug attached alongside the stored snapshots.
func (r *inquiryRepository) FindAll() ([]model.ContactInquiry, error) {
	var inquiries []model.ContactInquiry
	err := r.db.Model(&model.ContactInquiry{}).
		Preload("Vendor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "slug")
		}).
		Order("created_at DESC, id DESC").
		Find(&inquiries).Error
	if err != nil {
		logger.Error("Failed to list contact inquiries", err)
		return nil, err
	}

	logger.Debug("Contact inquiries listed", map[string]interface{}{
		"count": len(inquiries),
	})
	return inquiries, nil
}

func (r *inquiryRepository) CountByVendor(vendorID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.ContactInquiry{}).Where("vendor_id = ?", vendorID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
