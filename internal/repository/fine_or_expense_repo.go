package repository

import (
	"context"

	"ridersapp/internal/model"

	"gorm.io/gorm"
)

// FineOrExpenseRepository defines the interface for data access of FineOrExpense entities
type FineOrExpenseRepository interface {
	Create(ctx context.Context, fine *model.FineOrExpense) error
	GetByID(ctx context.Context, id uint) (*model.FineOrExpense, error)
	GetAll(ctx context.Context) ([]model.FineOrExpense, error)
	Update(ctx context.Context, fine *model.FineOrExpense) error
	Delete(ctx context.Context, id uint) error
}

type fineOrExpenseRepository struct {
	db *gorm.DB
}

// NewFineOrExpenseRepository returns a new instance of FineOrExpenseRepository
func NewFineOrExpenseRepository(db *gorm.DB) FineOrExpenseRepository {
	return &fineOrExpenseRepository{db: db}
}

func (r *fineOrExpenseRepository) Create(ctx context.Context, fine *model.FineOrExpense) error {
	return GetDB(ctx, r.db).Create(fine).Error
}

func (r *fineOrExpenseRepository) GetByID(ctx context.Context, id uint) (*model.FineOrExpense, error) {
	var fine model.FineOrExpense
	if err := GetDB(ctx, r.db).Preload("Employee").Preload("FineOrExpenseType").First(&fine, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &fine, nil
}

func (r *fineOrExpenseRepository) GetAll(ctx context.Context) ([]model.FineOrExpense, error) {
	var fines []model.FineOrExpense
	if err := GetDB(ctx, r.db).Preload("Employee").Preload("FineOrExpenseType").Order("entry_date desc").Find(&fines).Error; err != nil {
		return nil, err
	}
	return fines, nil
}

func (r *fineOrExpenseRepository) Update(ctx context.Context, fine *model.FineOrExpense) error {
	return GetDB(ctx, r.db).Save(fine).Error
}

func (r *fineOrExpenseRepository) Delete(ctx context.Context, id uint) error {
	return GetDB(ctx, r.db).Delete(&model.FineOrExpense{}, id).Error
}
