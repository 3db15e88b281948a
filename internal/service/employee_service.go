package service

import (
	"context"
	"errors"
	"fmt"

	"ridersapp/internal/model"
	"ridersapp/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ridersapp/pkg/datatable"
)

// --- DTOs ---

type EmployeeRequest struct {
	Name          string `json:"name" binding:"required,max=100"`
	FatherName    string `json:"father_name" binding:"max=100"`
	PhoneNo       string `json:"phone_no" binding:"max=20"`
	Address       string `json:"address" binding:"max=200"`
	CountryID     uint   `json:"country_id" binding:"required"`
	CityID        uint   `json:"city_id" binding:"required"`
	Salary        string `json:"salary"` // Decimal string, e.g. "1500.00"
	Vehicle       string `json:"vehicle" binding:"max=20"`
	VehicleNumber string `json:"vehicle_number" binding:"max=30"`
}

type EmployeeVM struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	FatherName    string          `json:"father_name"`
	PhoneNo       string          `json:"phone_no"`
	Address       string          `json:"address"`
	CountryID     uint            `json:"country_id"`
	CityID        uint            `json:"city_id"`
	CountryName   string          `json:"country_name"`
	CityName      string          `json:"city_name"`
	Salary        decimal.Decimal `json:"salary"`
	Vehicle       string          `json:"vehicle"`
	VehicleNumber string          `json:"vehicle_number"`
	PicturePath   string          `json:"picture_path"`
}

// --- Interface ---

type EmployeeService interface {
	GetAll(ctx context.Context) ([]EmployeeVM, error)
	GetByID(ctx context.Context, id uint) (*EmployeeVM, error)
	Create(ctx context.Context, req EmployeeRequest, actor Actor) (*EmployeeVM, error)
	Update(ctx context.Context, id uint, req EmployeeRequest, actor Actor) (*EmployeeVM, error)
	Delete(ctx context.Context, id uint, actor Actor) error
	Query(ctx context.Context, req datatable.Request) (datatable.Response[EmployeeVM], error)
	SetPicturePath(ctx context.Context, id uint, path string) (previous string, err error)
}

type employeeService struct {
	repo        repository.EmployeeRepository
	countryRepo repository.CountryRepository
	cityRepo    repository.CityRepository
	auditRepo   repository.AuditRepository
	txManager   repository.TransactionManager
}

// NewEmployeeService returns a new instance of EmployeeService
func NewEmployeeService(
	repo repository.EmployeeRepository,
	countryRepo repository.CountryRepository,
	cityRepo repository.CityRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
) EmployeeService {
	return &employeeService{
		repo:        repo,
		countryRepo: countryRepo,
		cityRepo:    cityRepo,
		auditRepo:   auditRepo,
		txManager:   txManager,
	}
}

func employeeColumns() []datatable.Column[EmployeeVM] {
	return []datatable.Column[EmployeeVM]{
		{Name: "Name", Value: func(v EmployeeVM) string { return v.Name }, Searchable: true},
		{Name: "FatherName", Value: func(v EmployeeVM) string { return v.FatherName }, Searchable: true},
		{Name: "PhoneNo", Value: func(v EmployeeVM) string { return v.PhoneNo }, Searchable: true},
		{Name: "Address", Value: func(v EmployeeVM) string { return v.Address }, Searchable: true},
		{Name: "CountryName", Value: func(v EmployeeVM) string { return v.CountryName }, Searchable: true},
		{Name: "CityName", Value: func(v EmployeeVM) string { return v.CityName }, Searchable: true},
		{
			Name:  "Salary",
			Value: func(v EmployeeVM) string { return v.Salary.StringFixed(2) },
			Less:  func(a, b EmployeeVM) bool { return a.Salary.LessThan(b.Salary) },
		},
		{Name: "Vehicle", Value: func(v EmployeeVM) string { return v.Vehicle }, Searchable: true},
		{Name: "VehicleNumber", Value: func(v EmployeeVM) string { return v.VehicleNumber }, Searchable: true},
	}
}

func mapEmployeeToVM(e *model.Employee) *EmployeeVM {
	vm := &EmployeeVM{
		ID:            e.ID,
		Name:          e.Name,
		FatherName:    e.FatherName,
		PhoneNo:       e.PhoneNo,
		Address:       e.Address,
		CountryID:     e.CountryID,
		CityID:        e.CityID,
		Salary:        e.Salary,
		Vehicle:       e.Vehicle,
		VehicleNumber: e.VehicleNumber,
		PicturePath:   e.PicturePath,
	}
	if e.Country != nil {
		vm.CountryName = e.Country.Name
	}
	if e.City != nil {
		vm.CityName = e.City.CityName
	}
	return vm
}

func (s *employeeService) GetAll(ctx context.Context) ([]EmployeeVM, error) {
	employees, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	vms := make([]EmployeeVM, 0, len(employees))
	for i := range employees {
		vms = append(vms, *mapEmployeeToVM(&employees[i]))
	}
	return vms, nil
}

func (s *employeeService) GetByID(ctx context.Context, id uint) (*EmployeeVM, error) {
	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundf("employee not found")
	}
	return mapEmployeeToVM(employee), nil
}

// validateLocation checks the country/city pair: both must exist and
// the city must belong to the chosen country.
func (s *employeeService) validateLocation(ctx context.Context, countryID, cityID uint) error {
	if _, err := s.countryRepo.GetByID(ctx, countryID); err != nil {
		return errors.New("selected country does not exist")
	}

	city, err := s.cityRepo.GetByID(ctx, cityID)
	if err != nil {
		return errors.New("selected city does not exist")
	}
	if city.CountryID != countryID {
		return errors.New("selected city does not belong to the selected country")
	}
	return nil
}

func parseSalary(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	salary, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid salary: %w", err)
	}
	return salary, nil
}

func (s *employeeService) Create(ctx context.Context, req EmployeeRequest, actor Actor) (*EmployeeVM, error) {
	if err := s.validateLocation(ctx, req.CountryID, req.CityID); err != nil {
		return nil, err
	}

	salary, err := parseSalary(req.Salary)
	if err != nil {
		return nil, err
	}

	employee := &model.Employee{
		Name:          req.Name,
		FatherName:    req.FatherName,
		PhoneNo:       req.PhoneNo,
		Address:       req.Address,
		CountryID:     req.CountryID,
		CityID:        req.CityID,
		Salary:        salary,
		Vehicle:       req.Vehicle,
		VehicleNumber: req.VehicleNumber,
	}
	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.auditRepo, actor, model.ActionCreateEmployee, employee.ID, employee.Name, req)
	return s.GetByID(ctx, employee.ID)
}

func (s *employeeService) Update(ctx context.Context, id uint, req EmployeeRequest, actor Actor) (*EmployeeVM, error) {
	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("employee not found")
		}
		return nil, err
	}

	if err := s.validateLocation(ctx, req.CountryID, req.CityID); err != nil {
		return nil, err
	}

	salary, err := parseSalary(req.Salary)
	if err != nil {
		return nil, err
	}

	employee.Name = req.Name
	employee.FatherName = req.FatherName
	employee.PhoneNo = req.PhoneNo
	employee.Address = req.Address
	employee.CountryID = req.CountryID
	employee.CityID = req.CityID
	employee.Salary = salary
	employee.Vehicle = req.Vehicle
	employee.VehicleNumber = req.VehicleNumber
	if err := s.repo.Update(ctx, employee); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.auditRepo, actor, model.ActionUpdateEmployee, employee.ID, employee.Name, req)
	return s.GetByID(ctx, employee.ID)
}

// Delete removes an employee and cascades the ride log. Fine/expense
// rows block the delete instead. Guard, cascade, and delete run in a
// single transaction.
func (s *employeeService) Delete(ctx context.Context, id uint, actor Actor) error {
	var name string

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		employee, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("employee with ID %d not found", id)
			}
			return err
		}
		name = employee.Name

		hasFines, err := s.repo.HasFineOrExpenses(txCtx, id)
		if err != nil {
			return err
		}
		if hasFines {
			return conflictf("cannot delete employee '%s' because fine/expense records reference them; delete those records first", employee.Name)
		}

		if err := s.repo.DeleteDailyRides(txCtx, id); err != nil {
			return err
		}
		return s.repo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	recordAudit(ctx, s.auditRepo, actor, model.ActionDeleteEmployee, id, name, nil)
	return nil
}

func (s *employeeService) Query(ctx context.Context, req datatable.Request) (datatable.Response[EmployeeVM], error) {
	employees, err := s.GetAll(ctx)
	if err != nil {
		return datatable.Response[EmployeeVM]{}, err
	}
	return datatable.Apply(employees, req, employeeColumns()), nil
}

// SetPicturePath stores the uploaded picture path and returns the
// previous one so the caller can clean up the replaced file.
func (s *employeeService) SetPicturePath(ctx context.Context, id uint, path string) (string, error) {
	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", notFoundf("employee not found")
	}

	previous := employee.PicturePath
	employee.PicturePath = path
	if err := s.repo.Update(ctx, employee); err != nil {
		return "", err
	}
	return previous, nil
}
