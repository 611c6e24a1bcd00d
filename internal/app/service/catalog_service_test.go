package service

import (
	"testing"

	"github.com/mithramani/vivaha-backend/internal/app/model"
	"github.com/mithramani/vivaha-backend/internal/app/repository"
	"github.com/mithramani/vivaha-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type catalogFixtures struct {
	photographers model.Category
	makeupArtists model.Category
	chennai       model.Location
	bangalore     model.Location
}

func setupCatalogServiceTest(t *testing.T) (CatalogService, *gorm.DB, catalogFixtures) {
	t.Helper()

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	f := catalogFixtures{
		photographers: model.Category{Name: "Photographers", Slug: "photographers"},
		makeupArtists: model.Category{Name: "Makeup Artists", Slug: "makeup-artists"},
		chennai:       model.Location{City: "Chennai", State: "Tamil Nadu"},
		bangalore:     model.Location{City: "Bangalore", State: "Karnataka"},
	}
	require.NoError(t, testDB.Create(&f.photographers).Error)
	require.NoError(t, testDB.Create(&f.makeupArtists).Error)
	require.NoError(t, testDB.Create(&f.chennai).Error)
	require.NoError(t, testDB.Create(&f.bangalore).Error)

	svc := NewCatalogService(
		repository.NewVendorRepository(testDB),
		repository.NewCategoryRepository(testDB),
		repository.NewLocationRepository(testDB),
	)
	return svc, testDB, f
}

func createCatalogVendor(t *testing.T, testDB *gorm.DB, name string, categoryID, locationID uint, rating float64, active bool) *model.Vendor {
	t.Helper()

	vendor := &model.Vendor{
		Name:       name,
		Email:      "vendor@example.com",
		CategoryID: categoryID,
		LocationID: locationID,
		Rating:     rating,
		IsActive:   active,
	}
	require.NoError(t, testDB.Create(vendor).Error)
	return vendor
}

func TestCatalogService_ListVendors_ActiveOnly(t *testing.T) {
	svc, testDB, f := setupCatalogServiceTest(t)

	createCatalogVendor(t, testDB, "Active Studio", f.photographers.ID, f.chennai.ID, 4.5, true)
	createCatalogVendor(t, testDB, "Disabled Studio", f.photographers.ID, f.chennai.ID, 4.9, false)

	vendors, err := svc.ListVendors(VendorListOptions{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "Active Studio", vendors[0].Name)
}

func TestCatalogService_ListVendors_UnknownCategory(t *testing.T) {
	svc, _, _ := setupCatalogServiceTest(t)

	_, err := svc.ListVendors(VendorListOptions{CategorySlug: "caterers", ActiveOnly: true})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCatalogService_ListVendors_CategoryAndRegion(t *testing.T) {
	svc, testDB, f := setupCatalogServiceTest(t)

	createCatalogVendor(t, testDB, "Chennai Photos", f.photographers.ID, f.chennai.ID, 4.1, true)
	createCatalogVendor(t, testDB, "Chennai Photos Two", f.photographers.ID, f.chennai.ID, 4.8, true)
	createCatalogVendor(t, testDB, "Bangalore Photos", f.photographers.ID, f.bangalore.ID, 4.9, true)
	createCatalogVendor(t, testDB, "Chennai Makeup", f.makeupArtists.ID, f.chennai.ID, 4.9, true)

	vendors, err := svc.ListVendors(VendorListOptions{
		CategorySlug:   "photographers",
		LocationRegion: "Tamil Nadu",
		ActiveOnly:     true,
		SortByRating:   true,
	})
	require.NoError(t, err)
	require.Len(t, vendors, 2)
	assert.Equal(t, "Chennai Photos Two", vendors[0].Name)
	assert.Equal(t, "Chennai Photos", vendors[1].Name)
}

func TestCatalogService_ListVendors_UnknownRegionIsEmpty(t *testing.T) {
	svc, testDB, f := setupCatalogServiceTest(t)

	createCatalogVendor(t, testDB, "Chennai Photos", f.photographers.ID, f.chennai.ID, 4.1, true)

	// Regions are not a reference table, so an unknown one just matches
	// nothing.
	vendors, err := svc.ListVendors(VendorListOptions{
		CategorySlug:   "photographers",
		LocationRegion: "Atlantis",
		ActiveOnly:     true,
	})
	require.NoError(t, err)
	assert.Empty(t, vendors)
}

func TestCatalogService_GetVendorBySlug(t *testing.T) {
	svc, testDB, f := setupCatalogServiceTest(t)

	created := createCatalogVendor(t, testDB, "Photovea Studio", f.photographers.ID, f.chennai.ID, 4.8, true)

	vendor, err := svc.GetVendorBySlug("photovea-studio")
	require.NoError(t, err)
	assert.Equal(t, created.ID, vendor.ID)
	assert.Equal(t, "Photographers", vendor.Category.Name)
}

func TestCatalogService_GetVendorBySlug_NotFound(t *testing.T) {
	svc, _, _ := setupCatalogServiceTest(t)

	_, err := svc.GetVendorBySlug("does-not-exist")
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestCatalogService_GetVendorBySlug_InactiveStillResolves(t *testing.T) {
	svc, testDB, f := setupCatalogServiceTest(t)

	createCatalogVendor(t, testDB, "Disabled Studio", f.photographers.ID, f.chennai.ID, 4.0, false)

	vendor, err := svc.GetVendorBySlug("disabled-studio")
	require.NoError(t, err)
	assert.False(t, vendor.IsActive)
}

func TestCatalogService_CreateVendor_ForcesActive(t *testing.T) {
	svc, _, f := setupCatalogServiceTest(t)

	vendor := &model.Vendor{
		Name:       "New Studio",
		Email:      "new@example.com",
		CategoryID: f.photographers.ID,
		LocationID: f.chennai.ID,
		IsActive:   false,
	}
	require.NoError(t, svc.CreateVendor(vendor))

	assert.True(t, vendor.IsActive)
	assert.Equal(t, "new-studio", vendor.Slug)
}

func TestCatalogService_ListCategoriesAndLocations(t *testing.T) {
	svc, _, _ := setupCatalogServiceTest(t)

	categories, err := svc.ListCategories()
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	locations, err := svc.ListLocations()
	require.NoError(t, err)
	assert.Len(t, locations, 2)
}
