package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mithramani/vivaha-backend/internal/app/model"
	"github.com/mithramani/vivaha-backend/internal/app/service"
	apperrors "github.com/mithramani/vivaha-backend/internal/errors"
	"github.com/mithramani/vivaha-backend/internal/middleware"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

type CreateVendorRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
	LocationID  uint   `json:"locationId" binding:"required"`
	Description string `json:"description"`
}

// ListVendors returns the active vendor directory with all display
// relations expanded.
// GET /api/v1/vendors
func (ctrl *CatalogController) ListVendors(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	vendors, err := ctrl.catalogService.ListVendors(service.VendorListOptions{
		ActiveOnly: true,
	})
	if err != nil {
		log.Error("Failed to fetch vendors", err, nil)
		apperrors.InternalError(c, "Failed to fetch vendors")
		return
	}

	log.Info("Vendors fetched successfully", map[string]interface{}{
		"count": len(vendors),
	})

	c.JSON(http.StatusOK, gin.H{
		"vendors": vendors,
		"count":   len(vendors),
	})
}

// ListVendorsByCategoryLocation returns active vendors for a category and
// region, best rated first.
// GET /api/v1/vendors/category/:category/location/:location
func (ctrl *CatalogController) ListVendorsByCategoryLocation(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	categorySlug := c.Param("category")
	locationRegion := c.Param("location")

	vendors, err := ctrl.catalogService.ListVendors(service.VendorListOptions{
		CategorySlug:   categorySlug,
		LocationRegion: locationRegion,
		ActiveOnly:     true,
		SortByRating:   true,
	})
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			log.Warn("Category not found", map[string]interface{}{
				"category_slug": categorySlug,
			})
			apperrors.NotFound(c, apperrors.CategoryNotFound, "Category not found")
			return
		}
		log.Error("Failed to fetch vendors by category and location", err, map[string]interface{}{
			"category_slug":   categorySlug,
			"location_region": locationRegion,
		})
		apperrors.InternalError(c, "Failed to fetch vendors")
		return
	}

	log.Info("Vendors fetched by category and location", map[string]interface{}{
		"category_slug":   categorySlug,
		"location_region": locationRegion,
		"count":           len(vendors),
	})

	c.JSON(http.StatusOK, gin.H{
		"vendors": vendors,
		"count":   len(vendors),
	})
}

// GetVendorBySlug returns a full vendor profile, packages included.
// Not filtered by is_active.
// GET /api/v1/vendor/:slug
func (ctrl *CatalogController) GetVendorBySlug(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	slug := c.Param("slug")

	vendor, err := ctrl.catalogService.GetVendorBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			log.Warn("Vendor not found", map[string]interface{}{
				"slug": slug,
			})
			apperrors.NotFound(c, apperrors.VendorNotFound, "Vendor not found")
			return
		}
		log.Error("Failed to fetch vendor", err, map[string]interface{}{
			"slug": slug,
		})
		apperrors.InternalError(c, "Failed to fetch vendor")
		return
	}

	log.Info("Vendor fetched successfully", map[string]interface{}{
		"vendor_id": vendor.ID,
		"slug":      vendor.Slug,
	})

	c.JSON(http.StatusOK, vendor)
}

// CreateVendor registers a new vendor (admin path). The slug is derived
// from the name.
// POST /api/v1/vendors
func (ctrl *CatalogController) CreateVendor(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid vendor creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	vendor := &model.Vendor{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CategoryID:  req.CategoryID,
		LocationID:  req.LocationID,
		Description: req.Description,
	}

	if err := ctrl.catalogService.CreateVendor(vendor); err != nil {
		log.Error("Failed to create vendor", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.InternalError(c, "Failed to create vendor")
		return
	}

	log.Info("Vendor created successfully", map[string]interface{}{
		"vendor_id": vendor.ID,
		"slug":      vendor.Slug,
	})

	c.JSON(http.StatusCreated, vendor)
}

// ListCategories returns the category reference table.
// GET /api/v1/categories
func (ctrl *CatalogController) ListCategories(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	categories, err := ctrl.catalogService.ListCategories()
	if err != nil {
		log.Error("Failed to fetch categories", err, nil)
		apperrors.InternalError(c, "Failed to fetch categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// ListLocations returns the location reference table.
// GET /api/v1/locations
func (ctrl *CatalogController) ListLocations(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	locations, err := ctrl.catalogService.ListLocations()
	if err != nil {
		log.Error("Failed to fetch locations", err, nil)
		apperrors.InternalError(c, "Failed to fetch locations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"locations": locations,
		"count":     len(locations),
	})
}
