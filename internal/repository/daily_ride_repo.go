package repository

import (
	"context"

	"ridersapp/internal/model"

	"gorm.io/gorm"
)

// DailyRideRepository defines the interface for data access of DailyRide entities
type DailyRideRepository interface {
	Create(ctx context.Context, ride *model.DailyRide) error
	GetByID(ctx context.Context, id uint) (*model.DailyRide, error)
	GetAll(ctx context.Context) ([]model.DailyRide, error)
	Update(ctx context.Context, ride *model.DailyRide) error
	Delete(ctx context.Context, id uint) error
}

type dailyRideRepository struct {
	db *gorm.DB
}

// NewDailyRideRepository returns a new instance of DailyRideRepository
func NewDailyRideRepository(db *gorm.DB) DailyRideRepository {
	return &dailyRideRepository{db: db}
}

func (r *dailyRideRepository) Create(ctx context.Context, ride *model.DailyRide) error {
	return GetDB(ctx, r.db).Create(ride).Error
}

func (r *dailyRideRepository) GetByID(ctx context.Context, id uint) (*model.DailyRide, error) {
	var ride model.DailyRide
	if err := GetDB(ctx, r.db).Preload("Employee").First(&ride, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ride, nil
}

func (r *dailyRideRepository) GetAll(ctx context.Context) ([]model.DailyRide, error) {
	var rides []model.DailyRide
	if err := GetDB(ctx, r.db).Preload("Employee").Order("entry_date desc").Find(&rides).Error; err != nil {
		return nil, err
	}
	return rides, nil
}

func (r *dailyRideRepository) Update(ctx context.Context, ride *model.DailyRide) error {
	return GetDB(ctx, r.db).Save(ride).Error
}

func (r *dailyRideRepository) Delete(ctx context.Context, id uint) error {
	return GetDB(ctx, r.db).Delete(&model.DailyRide{}, id).Error
}
