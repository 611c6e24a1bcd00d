package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mithramani/vivaha-backend/internal/app/model"
	"github.com/mithramani/vivaha-backend/internal/app/repository"
	"github.com/mithramani/vivaha-backend/internal/metrics"
	"github.com/mithramani/vivaha-backend/internal/notify"
	"github.com/mithramani/vivaha-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrInquiryValidation = errors.New("name, phone, and vendorSlug are required")

// NotificationSink is where persisted inquiries are announced. It must
// never block and its result is advisory only.
type NotificationSink interface {
	Enqueue(n notify.InquiryNotification) bool
}

type SubmitInquiryInput struct {
	Name       string
	Phone      string
	VendorSlug string
}

type SubmitInquiryResult struct {
	Message   string `json:"message"`
	InquiryID string `json:"inquiryId"`
}

type InquiryService interface {
	SubmitInquiry(input SubmitInquiryInput) (*SubmitInquiryResult, error)
	ListInquiries() ([]model.ContactInquiry, error)
}

type inquiryService struct {
	inquiryRepo repository.InquiryRepository
	vendorRepo  repository.VendorRepository
	sink        NotificationSink
}

func NewInquiryService(
	inquiryRepo repository.InquiryRepository,
	vendorRepo repository.VendorRepository,
	sink NotificationSink,
) InquiryService {
	return &inquiryService{
		inquiryRepo: inquiryRepo,
		vendorRepo:  vendorRepo,
		sink:        sink,
	}
}

// SubmitInquiry validates, persists, then announces a new contact inquiry.
// Validation and vendor resolution happen before any write; the
// notification hand-off happens strictly after the write commits and can
// never fail the operation or roll it back.
func (s *inquiryService) SubmitInquiry(input SubmitInquiryInput) (*SubmitInquiryResult, error) {
	logger.Debug("Received contact inquiry", map[string]interface{}{
		"name":        input.Name,
		"phone":       input.Phone,
		"vendor_slug": input.VendorSlug,
	})

	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Phone) == "" ||
		strings.TrimSpace(input.VendorSlug) == "" {
		logger.Warn("Contact inquiry rejected: missing required fields", map[string]interface{}{
			"has_name":        input.Name != "",
			"has_phone":       input.Phone != "",
			"has_vendor_slug": input.VendorSlug != "",
		})
		return nil, ErrInquiryValidation
	}

	vendor, err := s.vendorRepo.FindBySlug(input.VendorSlug, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Contact inquiry rejected: vendor not found", map[string]interface{}{
				"vendor_slug": input.VendorSlug,
			})
			return nil, ErrVendorNotFound
		}
		logger.Error("Failed to resolve vendor for inquiry", err, map[string]interface{}{
			"vendor_slug": input.VendorSlug,
		})
		return nil, fmt.Errorf("resolving vendor %q: %w", input.VendorSlug, err)
	}

	inquiry := &model.ContactInquiry{
		Name:        input.Name,
		Phone:       input.Phone,
		VendorID:    vendor.ID,
		VendorName:  vendor.Name,
		VendorSlug:  vendor.Slug,
		InquiryType: model.InquiryTypeBooking,
		Status:      model.InquiryStatusNew,
	}

	if err := s.inquiryRepo.Create(inquiry); err != nil {
		logger.Error("Failed to persist contact inquiry", err, map[string]interface{}{
			"vendor_id":   vendor.ID,
			"vendor_slug": vendor.Slug,
		})
		return nil, err
	}

	metrics.IncInquirySubmitted()
	logger.Info("Contact inquiry persisted", map[string]interface{}{
		"inquiry_id":  inquiry.ReferenceID,
		"vendor_id":   vendor.ID,
		"vendor_slug": vendor.Slug,
	})

	if s.sink != nil {
		s.sink.Enqueue(notify.InquiryNotification{
			InquiryID:     inquiry.ReferenceID,
			CustomerName:  inquiry.Name,
			CustomerPhone: inquiry.Phone,
			VendorName:    vendor.Name,
			VendorSlug:    vendor.Slug,
			SubmittedAt:   inquiry.CreatedAt,
		})
	}

	return &SubmitInquiryResult{
		Message:   "Contact inquiry submitted successfully",
		InquiryID: inquiry.ReferenceID,
	}, nil
}

func (s *inquiryService) ListInquiries() ([]model.ContactInquiry, error) {
	inquiries, err := s.inquiryRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list contact inquiries", err)
		return nil, err
	}

	logger.Info("Contact inquiries listed", map[string]interface{}{
		"count": len(inquiries),
	})
	return inquiries, nil
}
