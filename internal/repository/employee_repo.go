package repository

import (
	"context"

	"ridersapp/internal/model"

	"gorm.io/gorm"
)

// EmployeeRepository defines the interface for data access of Employee entities
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, id uint) (*model.Employee, error)
	GetAll(ctx context.Context) ([]model.Employee, error)
	Update(ctx context.Context, employee *model.Employee) error
	Delete(ctx context.Context, id uint) error
	HasFineOrExpenses(ctx context.Context, id uint) (bool, error)
	DeleteDailyRides(ctx context.Context, employeeID uint) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository returns a new instance of EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	return GetDB(ctx, r.db).Create(employee).Error
}

func (r *employeeRepository) GetByID(ctx context.Context, id uint) (*model.Employee, error) {
	var employee model.Employee
	if err := GetDB(ctx, r.db).Preload("Country").Preload("City").First(&employee, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) GetAll(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	if err := GetDB(ctx, r.db).Preload("Country").Preload("City").Order("name asc").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	return GetDB(ctx, r.db).Save(employee).Error
}

func (r *employeeRepository) Delete(ctx context.Context, id uint) error {
	return GetDB(ctx, r.db).Delete(&model.Employee{}, id).Error
}

func (r *employeeRepository) HasFineOrExpenses(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.FineOrExpense{}).Where("employee_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteDailyRides removes an employee's ride log rows ahead of the
// employee row itself, mirroring the cascade for databases migrated
// without the FK constraint.
func (r *employeeRepository) DeleteDailyRides(ctx context.Context, employeeID uint) error {
	return GetDB(ctx, r.db).Where("employee_id = ?", employeeID).Delete(&model.DailyRide{}).Error
}
