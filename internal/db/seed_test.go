package db

import (
	"testing"

	"github.com/mithramani/vivaha-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countRows(t *testing.T, database *gorm.DB, m interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, database.Model(m).Count(&count).Error)
	return count
}

func TestSeedReferenceData(t *testing.T) {
	database, err := SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		CleanupTestDB(database)
	})

	require.NoError(t, SeedReferenceData(database))

	assert.Equal(t, int64(2), countRows(t, database, &model.Category{}))
	assert.Equal(t, int64(5), countRows(t, database, &model.Location{}))
	assert.Equal(t, int64(2), countRows(t, database, &model.Vendor{}))

	var vendor model.Vendor
	require.NoError(t, database.
		Preload("Services").
		Preload("Packages").
		Preload("Reviews").
		Preload("Portfolio").
		Where("slug = ?", "photovea-studio").
		First(&vendor).Error)

	assert.Equal(t, "Photovea Studio", vendor.Name)
	assert.InDelta(t, 4.8, vendor.Rating, 0.001)
	assert.Len(t, vendor.Services, 3)
	assert.Len(t, vendor.Packages, 3)
	assert.Len(t, vendor.Reviews, 3)
	assert.Len(t, vendor.Portfolio, 3)
}

func TestSeedReferenceData_Idempotent(t *testing.T) {
	database, err := SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		CleanupTestDB(database)
	})

	require.NoError(t, SeedReferenceData(database))
	require.NoError(t, SeedReferenceData(database))

	assert.Equal(t, int64(2), countRows(t, database, &model.Category{}))
	assert.Equal(t, int64(5), countRows(t, database, &model.Location{}))
	assert.Equal(t, int64(2), countRows(t, database, &model.Vendor{}))
	assert.Equal(t, int64(7), countRows(t, database, &model.VendorService{}))
	assert.Equal(t, int64(3), countRows(t, database, &model.Package{}))
}

func TestSeedReferenceData_PreservesEdits(t *testing.T) {
	database, err := SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		CleanupTestDB(database)
	})

	require.NoError(t, SeedReferenceData(database))

	// An operator edit must survive a reseed
	require.NoError(t, database.Model(&model.Vendor{}).
		Where("slug = ?", "photovea-studio").
		Update("phone", "+91 11111 11111").Error)

	require.NoError(t, SeedReferenceData(database))

	var vendor model.Vendor
	require.NoError(t, database.Where("slug = ?", "photovea-studio").First(&vendor).Error)
	assert.Equal(t, "+91 11111 11111", vendor.Phone)
}
