package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// StringArray stores an ordered list of strings as a JSON column so the
// same model works on PostgreSQL and the sqlite test database.
type StringArray []string

// Value implements database/sql/driver.Valuer
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements database/sql.Scanner
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("failed to scan StringArray")
	}
}

// Vendor is a listed service provider. The slug is the stable external
// identifier used by every lookup; vendors are never hard-deleted, only
// disabled via IsActive.
type Vendor struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"not null" json:"email"`
	Phone       string `gorm:"type:varchar(30)" json:"phone"`
	Whatsapp    string `gorm:"type:varchar(30)" json:"whatsapp,omitempty"`
	Description string `gorm:"type:text" json:"description"`
	Experience  string `json:"experience"`
	EventsDone  int    `gorm:"default:0" json:"events_done"`

	// Denormalized review aggregates, recomputed by the rating scheduler.
	Rating      float64 `gorm:"default:0" json:"rating"`
	ReviewCount int     `gorm:"default:0" json:"review_count"`

	Image          string `gorm:"type:varchar(16)" json:"image,omitempty"`
	Website        string `json:"website,omitempty"`
	IsVerified     bool   `gorm:"default:false" json:"is_verified"`
	IsActive       bool   `gorm:"default:true;index" json:"is_active"`
	PaymentPolicy  string `gorm:"type:text" json:"payment_policy"`
	AdditionalInfo string `gorm:"type:text" json:"additional_info"`

	CategoryID uint     `gorm:"not null;index" json:"category_id"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category,omitempty"`
	LocationID uint     `gorm:"not null;index" json:"location_id"`
	Location   Location `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"location,omitempty"`

	Services  []VendorService `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE" json:"services"`
	Packages  []Package       `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE" json:"packages,omitempty"`
	Reviews   []Review        `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE" json:"reviews"`
	Portfolio []PortfolioItem `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE" json:"portfolio"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Vendor) TableName() string {
	return "vendors"
}

// VendorService is a single bookable offering (named to avoid colliding with
// the service layer package).
type VendorService struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	VendorID    uint      `gorm:"not null;index" json:"vendor_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       string    `gorm:"type:varchar(30)" json:"price"` // formatted currency, e.g. "₹50,000"
	CreatedAt   time.Time `json:"created_at"`
}

func (VendorService) TableName() string {
	return "services"
}

type Package struct {
	ID          uint        `gorm:"primarykey" json:"id"`
	VendorID    uint        `gorm:"not null;index" json:"vendor_id"`
	Name        string      `gorm:"not null" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	Price       string      `gorm:"type:varchar(30)" json:"price"`
	Features    StringArray `gorm:"type:text" json:"features"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (Package) TableName() string {
	return "packages"
}

// Review is append-only customer feedback.
type Review struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	VendorID     uint      `gorm:"not null;index" json:"vendor_id"`
	Rating       int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment      string    `gorm:"type:text" json:"comment"`
	CustomerName string    `json:"customer_name"`
	Service      string    `json:"service"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

type PortfolioItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	VendorID    uint      `gorm:"not null;index" json:"vendor_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func (PortfolioItem) TableName() string {
	return "portfolio_items"
}

// VendorSlug maps a vendor name to its URL slug: lowercase with every run
// of characters outside [a-z0-9] replaced by a hyphen.
func VendorSlug(name string) string {
	slug := strings.ToLower(name)
	var b strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('-')
		}
	}
	return b.String()
}

// BeforeCreate assigns a slug when the caller did not set one, suffixing a
// counter until it is unique.
func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.Slug != "" {
		return nil
	}

	baseSlug := VendorSlug(v.Name)
	slug := baseSlug

	counter := 1
	for {
		var count int64
		if err := tx.Model(&Vendor{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			break
		}
		counter++
		slug = fmt.Sprintf("%s-%d", baseSlug, counter)
	}

	v.Slug = slug
	return nil
}
