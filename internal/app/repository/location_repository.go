package repository

import (
	"github.com/mithramani/vivaha-backend/internal/app/model"
	"github.com/mithramani/vivaha-backend/pkg/logger"
	"gorm.io/gorm"
)

type LocationRepository interface {
	FindAll() ([]model.Location, error)
	FindByCity(city string) (*model.Location, error)
	FindByID(id uint) (*model.Location, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) FindAll() ([]model.Location, error) {
	var locations []model.Location
	if err := r.db.Order("state ASC, city ASC").Find(&locations).Error; err != nil {
		logger.Error("Failed to list locations", err)
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) FindByCity(city string) (*model.Location, error) {
	var location model.Location
	if err := r.db.Where("city = ?", city).First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) FindByID(id uint) (*model.Location, error) {
	var location model.Location
	if err := r.db.First(&location, id).Error; err != nil {
		return nil, err
	}
	return &location, nil
}
