package repository

import (
	"context"

	"ridersapp/internal/model"

	"gorm.io/gorm"
)

// CityRepository defines the interface for data access of City entities
type CityRepository interface {
	Create(ctx context.Context, city *model.City) error
	GetByID(ctx context.Context, id uint) (*model.City, error)
	GetAll(ctx context.Context) ([]model.City, error)
	Update(ctx context.Context, city *model.City) error
	Delete(ctx context.Context, id uint) error
	HasEmployees(ctx context.Context, id uint) (bool, error)
}

type cityRepository struct {
	db *gorm.DB
}

// NewCityRepository returns a new instance of CityRepository
func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) Create(ctx context.Context, city *model.City) error {
	return GetDB(ctx, r.db).Create(city).Error
}

func (r *cityRepository) GetByID(ctx context.Context, id uint) (*model.City, error) {
	var city model.City
	if err := GetDB(ctx, r.db).Preload("Country").First(&city, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) GetAll(ctx context.Context) ([]model.City, error) {
	var cities []model.City
	if err := GetDB(ctx, r.db).Preload("Country").Order("city_name asc").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *cityRepository) Update(ctx context.Context, city *model.City) error {
	return GetDB(ctx, r.db).Save(city).Error
}

func (r *cityRepository) Delete(ctx context.Context, id uint) error {
	return GetDB(ctx, r.db).Delete(&model.City{}, id).Error
}

func (r *cityRepository) HasEmployees(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.Employee{}).Where("city_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
