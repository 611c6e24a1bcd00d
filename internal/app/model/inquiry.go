package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InquiryTypeBooking = "booking"
	InquiryStatusNew   = "new"
)

// ContactInquiry records a customer asking a vendor to get in touch. Rows
// are created only by the inquiry service and never updated here; status
// transitions belong to back-office tooling.
//
// VendorName and VendorSlug are deliberate snapshots of the vendor at
// submission time, so the inquiry stays historically accurate even if the
// vendor is later renamed.
type ContactInquiry struct {
	ID          uint   `gorm:"primarykey" json:"-"`
	ReferenceID string `gorm:"type:varchar(36);uniqueIndex;not null" json:"id"`

	Name  string `gorm:"not null" json:"name"`
	Phone string `gorm:"type:varchar(30);not null" json:"phone"`

	VendorID   uint   `gorm:"not null;index" json:"vendor_id"`
	Vendor     Vendor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"vendor,omitempty"`
	VendorName string `gorm:"not null" json:"vendor_name"`
	VendorSlug string `gorm:"not null" json:"vendor_slug"`

	InquiryType string    `gorm:"type:varchar(20);not null;default:booking" json:"inquiry_type"`
	Status      string    `gorm:"type:varchar(20);not null;default:new" json:"status"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

func (ContactInquiry) TableName() string {
	return "contact_inquiries"
}

// BeforeCreate assigns the public reference ID. The numeric primary key
// stays internal.
func (i *ContactInquiry) BeforeCreate(tx *gorm.DB) error {
	if i.ReferenceID == "" {
		i.ReferenceID = uuid.New().String()
	}
	return nil
}
