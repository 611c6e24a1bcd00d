package model

import (
	"strings"
	"time"
	"unicode"

	"gorm.io/gorm"
)

// Location is an immutable reference table of cities vendors operate from.
type Location struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	City      string    `gorm:"not null" json:"city"`
	State     string    `gorm:"not null" json:"state"`
	StateSlug string    `gorm:"index" json:"-"` // "Tamil Nadu" -> "tamilnadu", used by region filtering
	Country   string    `gorm:"not null;default:India" json:"country"`
	CreatedAt time.Time `json:"created_at"`

	Vendors []Vendor `gorm:"foreignKey:LocationID" json:"-"`
}

func (Location) TableName() string {
	return "locations"
}

// RegionSlug collapses a state name to the compact form used in URLs.
func RegionSlug(state string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(state) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BeforeCreate derives the state slug so region lookups never depend on
// callers remembering to set it.
func (l *Location) BeforeCreate(tx *gorm.DB) error {
	if l.StateSlug == "" {
		l.StateSlug = RegionSlug(l.State)
	}
	return nil
}
