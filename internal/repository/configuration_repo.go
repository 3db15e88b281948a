package repository

import (
	"context"

	"ridersapp/internal/model"

	"gorm.io/gorm"
)

// ConfigurationRepository defines the interface for data access of Configuration entities
type ConfigurationRepository interface {
	Create(ctx context.Context, cfg *model.Configuration) error
	GetByID(ctx context.Context, id uint) (*model.Configuration, error)
	GetByKey(ctx context.Context, key string) (*model.Configuration, error)
	GetAll(ctx context.Context) ([]model.Configuration, error)
	Update(ctx context.Context, cfg *model.Configuration) error
	Delete(ctx context.Context, id uint) error
}

type configurationRepository struct {
	db *gorm.DB
}

// NewConfigurationRepository returns a new instance of ConfigurationRepository
func NewConfigurationRepository(db *gorm.DB) ConfigurationRepository {
	return &configurationRepository{db: db}
}

func (r *configurationRepository) Create(ctx context.Context, cfg *model.Configuration) error {
	return GetDB(ctx, r.db).Create(cfg).Error
}

func (r *configurationRepository) GetByID(ctx context.Context, id uint) (*model.Configuration, error) {
	var cfg model.Configuration
	if err := GetDB(ctx, r.db).First(&cfg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *configurationRepository) GetByKey(ctx context.Context, key string) (*model.Configuration, error) {
	var cfg model.Configuration
	if err := GetDB(ctx, r.db).First(&cfg, "key_name = ?", key).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *configurationRepository) GetAll(ctx context.Context) ([]model.Configuration, error) {
	var cfgs []model.Configuration
	if err := GetDB(ctx, r.db).Order("lower(key_name) asc").Find(&cfgs).Error; err != nil {
		return nil, err
	}
	return cfgs, nil
}

func (r *configurationRepository) Update(ctx context.Context, cfg *model.Configuration) error {
	return GetDB(ctx, r.db).Save(cfg).Error
}

func (r *configurationRepository) Delete(ctx context.Context, id uint) error {
	return GetDB(ctx, r.db).Delete(&model.Configuration{}, id).Error
}
