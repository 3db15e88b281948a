package repository

import (
	"context"

	"ridersapp/internal/model"

	"gorm.io/gorm"
)

// FineOrExpenseTypeRepository defines the interface for data access of FineOrExpenseType entities
type FineOrExpenseTypeRepository interface {
	Create(ctx context.Context, t *model.FineOrExpenseType) error
	GetByID(ctx context.Context, id uint) (*model.FineOrExpenseType, error)
	GetAll(ctx context.Context) ([]model.FineOrExpenseType, error)
	Update(ctx context.Context, t *model.FineOrExpenseType) error
	Delete(ctx context.Context, id uint) error
	// ExistsByName reports a case-insensitive name match, skipping
	// excludeID so a row can be saved under its own name.
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)
	HasFineOrExpenses(ctx context.Context, id uint) (bool, error)
}

type fineOrExpenseTypeRepository struct {
	db *gorm.DB
}

// NewFineOrExpenseTypeRepository returns a new instance of FineOrExpenseTypeRepository
func NewFineOrExpenseTypeRepository(db *gorm.DB) FineOrExpenseTypeRepository {
	return &fineOrExpenseTypeRepository{db: db}
}

func (r *fineOrExpenseTypeRepository) Create(ctx context.Context, t *model.FineOrExpenseType) error {
	return GetDB(ctx, r.db).Create(t).Error
}

func (r *fineOrExpenseTypeRepository) GetByID(ctx context.Context, id uint) (*model.FineOrExpenseType, error) {
	var t model.FineOrExpenseType
	if err := GetDB(ctx, r.db).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *fineOrExpenseTypeRepository) GetAll(ctx context.Context) ([]model.FineOrExpenseType, error) {
	var types []model.FineOrExpenseType
	if err := GetDB(ctx, r.db).Order("name asc").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *fineOrExpenseTypeRepository) Update(ctx context.Context, t *model.FineOrExpenseType) error {
	return GetDB(ctx, r.db).Save(t).Error
}

func (r *fineOrExpenseTypeRepository) Delete(ctx context.Context, id uint) error {
	return GetDB(ctx, r.db).Delete(&model.FineOrExpenseType{}, id).Error
}

func (r *fineOrExpenseTypeRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	query := GetDB(ctx, r.db).Model(&model.FineOrExpenseType{}).Where("lower(name) = lower(?)", name)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *fineOrExpenseTypeRepository) HasFineOrExpenses(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.FineOrExpense{}).Where("fine_or_expense_type_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
