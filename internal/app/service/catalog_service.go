package service

import (
	"errors"
	"fmt"

	"github.com/mithramani/vivaha-backend/internal/app/model"
	"github.com/mithramani/vivaha-backend/internal/app/repository"
	"github.com/mithramani/vivaha-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrVendorNotFound   = errors.New("vendor not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// VendorListOptions mirrors the public directory filters. ActiveOnly
// defaults to true at the call sites; it is a field rather than a constant
// so back-office listings can see disabled vendors too.
type VendorListOptions struct {
	CategorySlug   string
	LocationRegion string
	ActiveOnly     bool
	SortByRating   bool
}

type CatalogService interface {
	ListVendors(opts VendorListOptions) ([]model.Vendor, error)
	GetVendorBySlug(slug string) (*model.Vendor, error)
	CreateVendor(vendor *model.Vendor) error
	ListCategories() ([]model.Category, error)
	ListLocations() ([]model.Location, error)
}

type catalogService struct {
	vendorRepo   repository.VendorRepository
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
}

func NewCatalogService(
	vendorRepo repository.VendorRepository,
	categoryRepo repository.CategoryRepository,
	locationRepo repository.LocationRepository,
) CatalogService {
	return &catalogService{
		vendorRepo:   vendorRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
	}
}

func (s *catalogService) ListVendors(opts VendorListOptions) ([]model.Vendor, error) {
	logger.Debug("Listing vendors", map[string]interface{}{
		"category_slug":   opts.CategorySlug,
		"location_region": opts.LocationRegion,
		"active_only":     opts.ActiveOnly,
	})

	filter := repository.VendorFilter{
		ActiveOnly:   opts.ActiveOnly,
		SortByRating: opts.SortByRating,
	}

	if opts.CategorySlug != "" {
		category, err := s.categoryRepo.FindBySlug(opts.CategorySlug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Warn("Category not found", map[string]interface{}{
					"category_slug": opts.CategorySlug,
				})
				return nil, ErrCategoryNotFound
			}
			return nil, fmt.Errorf("resolving category %q: %w", opts.CategorySlug, err)
		}
		filter.CategoryID = &category.ID
	}

	if opts.LocationRegion != "" {
		// Regions are not a reference table: an unknown region matches
		// nothing and yields an empty list rather than an error.
		filter.StateSlug = model.RegionSlug(opts.LocationRegion)
	}

	vendors, err := s.vendorRepo.FindAll(filter)
	if err != nil {
		logger.Error("Failed to list vendors", err, map[string]interface{}{
			"category_slug": opts.CategorySlug,
		})
		return nil, err
	}

	logger.Info("Vendors listed", map[string]interface{}{
		"count": len(vendors),
	})
	return vendors, nil
}

// GetVendorBySlug returns the full profile, packages included. Profile
// lookups are intentionally not filtered by is_active: a disabled vendor's
// page still resolves.
func (s *catalogService) GetVendorBySlug(slug string) (*model.Vendor, error) {
	logger.Debug("Fetching vendor by slug", map[string]interface{}{
		"slug": slug,
	})

	vendor, err := s.vendorRepo.FindBySlug(slug, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Vendor not found", map[string]interface{}{
				"slug": slug,
			})
			return nil, ErrVendorNotFound
		}
		logger.Error("Failed to fetch vendor", err, map[string]interface{}{
			"slug": slug,
		})
		return nil, err
	}
	return vendor, nil
}

func (s *catalogService) CreateVendor(vendor *model.Vendor) error {
	logger.Info("Creating new vendor", map[string]interface{}{
		"name":        vendor.Name,
		"category_id": vendor.CategoryID,
		"location_id": vendor.LocationID,
	})

	vendor.IsActive = true

	if err := s.vendorRepo.Create(vendor); err != nil {
		logger.Error("Failed to create vendor", err, map[string]interface{}{
			"name": vendor.Name,
		})
		return err
	}

	logger.Info("Vendor created successfully", map[string]interface{}{
		"vendor_id": vendor.ID,
		"slug":      vendor.Slug,
	})
	return nil
}

func (s *catalogService) ListCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *catalogService) ListLocations() ([]model.Location, error) {
	return s.locationRepo.FindAll()
}
