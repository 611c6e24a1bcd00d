package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mithramani/vivaha-backend/internal/app/service"
	apperrors "github.com/mithramani/vivaha-backend/internal/errors"
	"github.com/mithramani/vivaha-backend/internal/middleware"
)

type InquiryController struct {
	inquiryService service.InquiryService
}

func NewInquiryController(inquiryService service.InquiryService) *InquiryController {
	return &InquiryController{
		inquiryService: inquiryService,
	}
}

type SubmitInquiryRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	VendorSlug string `json:"vendorSlug"`
}

// SubmitInquiry accepts a customer contact request for a vendor.
// Field presence is validated in the service so that API and non-API
// callers share the same rules.
// POST /api/v1/contact-inquiries
func (ctrl *InquiryController) SubmitInquiry(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Malformed inquiry request body", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Name, phone, and vendor are required")
		return
	}

	result, err := ctrl.inquiryService.SubmitInquiry(service.SubmitInquiryInput{
		Name:       req.Name,
		Phone:      req.Phone,
		VendorSlug: req.VendorSlug,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInquiryValidation):
			apperrors.BadRequest(c, apperrors.ValidationRequired, "Name, phone, and vendor are required")
		case errors.Is(err, service.ErrVendorNotFound):
			apperrors.NotFound(c, apperrors.VendorNotFound, "Vendor not found")
		default:
			log.Error("Failed to submit contact inquiry", err, map[string]interface{}{
				"vendor_slug": req.VendorSlug,
			})
			apperrors.InternalError(c, "Failed to submit inquiry. Please try again later")
		}
		return
	}

	log.Info("Contact inquiry submitted", map[string]interface{}{
		"inquiry_id":  result.InquiryID,
		"vendor_slug": req.VendorSlug,
	})

	c.JSON(http.StatusCreated, result)
}

// ListInquiries returns all contact inquiries, newest first (back-office).
// GET /api/v1/contact-inquiries
func (ctrl *InquiryController) ListInquiries(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	inquiries, err := ctrl.inquiryService.ListInquiries()
	if err != nil {
		log.Error("Failed to fetch contact inquiries", err, nil)
		apperrors.InternalError(c, "Failed to fetch inquiries")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"inquiries": inquiries,
		"count":     len(inquiries),
	})
}
