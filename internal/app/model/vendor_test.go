package model_test

import (
	"testing"

	"github.com/mithramani/vivaha-backend/internal/app/model"
	"github.com/mithramani/vivaha-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple name", "Photovea Studio", "photovea-studio"},
		{"already lowercase", "photovea studio", "photovea-studio"},
		{"digits preserved", "Studio 21", "studio-21"},
		{"punctuation replaced", "Ravi's Photography", "ravi-s-photography"},
		{"every special char becomes a hyphen", "A & B", "a---b"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.VendorSlug(tt.input))
		})
	}
}

func TestRegionSlug(t *testing.T) {
	assert.Equal(t, "tamilnadu", model.RegionSlug("Tamil Nadu"))
	assert.Equal(t, "karnataka", model.RegionSlug("Karnataka"))
	assert.Equal(t, "", model.RegionSlug(""))
}

func setupModelTest(t *testing.T) (*model.Category, *model.Location, func() *model.Vendor) {
	t.Helper()

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	category := &model.Category{Name: "Photographers", Slug: "photographers"}
	require.NoError(t, testDB.Create(category).Error)

	location := &model.Location{City: "Chennai", State: "Tamil Nadu"}
	require.NoError(t, testDB.Create(location).Error)

	createVendor := func() *model.Vendor {
		vendor := &model.Vendor{
			Name:       "Photovea Studio",
			Email:      "info@photoveastudio.com",
			CategoryID: category.ID,
			LocationID: location.ID,
			IsActive:   true,
		}
		require.NoError(t, testDB.Create(vendor).Error)
		return vendor
	}

	return category, location, createVendor
}

func TestVendor_BeforeCreate_GeneratesSlug(t *testing.T) {
	_, _, createVendor := setupModelTest(t)

	vendor := createVendor()
	assert.Equal(t, "photovea-studio", vendor.Slug)
}

func TestVendor_BeforeCreate_ResolvesSlugCollision(t *testing.T) {
	_, _, createVendor := setupModelTest(t)

	first := createVendor()
	second := createVendor()
	third := createVendor()

	assert.Equal(t, "photovea-studio", first.Slug)
	assert.Equal(t, "photovea-studio-2", second.Slug)
	assert.Equal(t, "photovea-studio-3", third.Slug)
}

func TestLocation_BeforeCreate_DerivesStateSlug(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	location := &model.Location{City: "Madurai", State: "Tamil Nadu"}
	require.NoError(t, testDB.Create(location).Error)
	assert.Equal(t, "tamilnadu", location.StateSlug)
}

func TestStringArray_RoundTrip(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	category := &model.Category{Name: "Photographers", Slug: "photographers"}
	require.NoError(t, testDB.Create(category).Error)
	location := &model.Location{City: "Chennai", State: "Tamil Nadu"}
	require.NoError(t, testDB.Create(location).Error)

	vendor := &model.Vendor{
		Name:       "Photovea Studio",
		Email:      "info@photoveastudio.com",
		CategoryID: category.ID,
		LocationID: location.ID,
		Packages: []model.Package{
			{
				Name:     "Premium Package",
				Price:    "₹45,000",
				Features: model.StringArray{"8 hours coverage", "400 edited photos", "2 photographers"},
			},
		},
	}
	require.NoError(t, testDB.Create(vendor).Error)

	var loaded model.Package
	require.NoError(t, testDB.Where("vendor_id = ?", vendor.ID).First(&loaded).Error)

	// Order must survive the round trip
	assert.Equal(t, model.StringArray{"8 hours coverage", "400 edited photos", "2 photographers"}, loaded.Features)
}

func TestContactInquiry_BeforeCreate_AssignsReferenceID(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	category := &model.Category{Name: "Photographers", Slug: "photographers"}
	require.NoError(t, testDB.Create(category).Error)
	location := &model.Location{City: "Chennai", State: "Tamil Nadu"}
	require.NoError(t, testDB.Create(location).Error)
	vendor := &model.Vendor{
		Name:       "Photovea Studio",
		Email:      "info@photoveastudio.com",
		CategoryID: category.ID,
		LocationID: location.ID,
	}
	require.NoError(t, testDB.Create(vendor).Error)

	inquiry := &model.ContactInquiry{
		Name:        "Priya",
		Phone:       "+91 90000 00000",
		VendorID:    vendor.ID,
		VendorName:  vendor.Name,
		VendorSlug:  vendor.Slug,
		InquiryType: model.InquiryTypeBooking,
		Status:      model.InquiryStatusNew,
	}
	require.NoError(t, testDB.Create(inquiry).Error)

	assert.Len(t, inquiry.ReferenceID, 36)

	second := &model.ContactInquiry{
		Name:        "Karthik",
		Phone:       "+91 90000 00001",
		VendorID:    vendor.ID,
		VendorName:  vendor.Name,
		VendorSlug:  vendor.Slug,
		InquiryType: model.InquiryTypeBooking,
		Status:      model.InquiryStatusNew,
	}
	require.NoError(t, testDB.Create(second).Error)
	assert.NotEqual(t, inquiry.ReferenceID, second.ReferenceID)
}
