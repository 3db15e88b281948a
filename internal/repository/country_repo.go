package repository

import (
	"context"

	"ridersapp/internal/model"

	"gorm.io/gorm"
)

// CountryRepository defines the interface for data access of Country entities
type CountryRepository interface {
	Create(ctx context.Context, country *model.Country) error
	GetByID(ctx context.Context, id uint) (*model.Country, error)
	GetAll(ctx context.Context) ([]model.Country, error)
	Update(ctx context.Context, country *model.Country) error
	Delete(ctx context.Context, id uint) error
	HasCities(ctx context.Context, id uint) (bool, error)
	HasEmployees(ctx context.Context, id uint) (bool, error)
}

type countryRepository struct {
	db *gorm.DB
}

// NewCountryRepository returns a new instance of CountryRepository
func NewCountryRepository(db *gorm.DB) CountryRepository {
	return &countryRepository{db: db}
}

func (r *countryRepository) Create(ctx context.Context, country *model.Country) error {
	return GetDB(ctx, r.db).Create(country).Error
}

func (r *countryRepository) GetByID(ctx context.Context, id uint) (*model.Country, error) {
	var country model.Country
	if err := GetDB(ctx, r.db).First(&country, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &country, nil
}

func (r *countryRepository) GetAll(ctx context.Context) ([]model.Country, error) {
	var countries []model.Country
	if err := GetDB(ctx, r.db).Order("name asc").Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *countryRepository) Update(ctx context.Context, country *model.Country) error {
	return GetDB(ctx, r.db).Save(country).Error
}

func (r *countryRepository) Delete(ctx context.Context, id uint) error {
	return GetDB(ctx, r.db).Delete(&model.Country{}, id).Error
}

func (r *countryRepository) HasCities(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.City{}).Where("country_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *countryRepository) HasEmployees(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.Employee{}).Where("country_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
