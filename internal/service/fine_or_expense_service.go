package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"ridersapp/internal/model"
	"ridersapp/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ridersapp/pkg/datatable"
)

// Fine/expense amounts are bounded in rupees.
var (
	fineAmountMin = decimal.NewFromInt(200)
	fineAmountMax = decimal.NewFromInt(20000)
)

// --- DTOs ---

type FineOrExpenseRequest struct {
	Amount              string `json:"amount" binding:"required"` // Decimal string
	EmployeeID          uint   `json:"employee_id" binding:"required"`
	FineOrExpenseTypeID uint   `json:"fine_or_expense_type_id" binding:"required"`
	Description         string `json:"description" binding:"required"`
	EntryDate           string `json:"entry_date" binding:"required"` // YYYY-MM-DD
}

type FineOrExpenseVM struct {
	ID                    uint            `json:"id"`
	Amount                decimal.Decimal `json:"amount"`
	EmployeeID            uint            `json:"employee_id"`
	EmployeeName          string          `json:"employee_name"`
	FineOrExpenseTypeID   uint            `json:"fine_or_expense_type_id"`
	FineOrExpenseTypeName string          `json:"fine_or_expense_type_name"`
	Description           string          `json:"description"`
	EntryDate             time.Time       `json:"entry_date"`
}

// --- Interface ---

type FineOrExpenseService interface {
	GetAll(ctx context.Context) ([]FineOrExpenseVM, error)
	GetByID(ctx context.Context, id uint) (*FineOrExpenseVM, error)
	Create(ctx context.Context, req FineOrExpenseRequest, actor Actor) (*FineOrExpenseVM, error)
	Update(ctx context.Context, id uint, req FineOrExpenseRequest, actor Actor) (*FineOrExpenseVM, error)
	Delete(ctx context.Context, id uint, actor Actor) error
	Query(ctx context.Context, req datatable.Request) (datatable.Response[FineOrExpenseVM], error)
}

type fineOrExpenseService struct {
	repo      repository.FineOrExpenseRepository
	empRepo   repository.EmployeeRepository
	typeRepo  repository.FineOrExpenseTypeRepository
	auditRepo repository.AuditRepository
}

// NewFineOrExpenseService returns a new instance of FineOrExpenseService
func NewFineOrExpenseService(
	repo repository.FineOrExpenseRepository,
	empRepo repository.EmployeeRepository,
	typeRepo repository.FineOrExpenseTypeRepository,
	auditRepo repository.AuditRepository,
) FineOrExpenseService {
	return &fineOrExpenseService{repo: repo, empRepo: empRepo, typeRepo: typeRepo, auditRepo: auditRepo}
}

func fineOrExpenseColumns() []datatable.Column[FineOrExpenseVM] {
	return []datatable.Column[FineOrExpenseVM]{
		{Name: "EmployeeName", Value: func(v FineOrExpenseVM) string { return v.EmployeeName }, Searchable: true},
		{Name: "FineOrExpenseTypeName", Value: func(v FineOrExpenseVM) string { return v.FineOrExpenseTypeName }, Searchable: true},
		{
			Name:  "Amount",
			Value: func(v FineOrExpenseVM) string { return v.Amount.StringFixed(2) },
			Less:  func(a, b FineOrExpenseVM) bool { return a.Amount.LessThan(b.Amount) },
		},
		{Name: "Description", Value: func(v FineOrExpenseVM) string { return v.Description }, Searchable: true},
		{
			Name:       "EntryDate",
			Value:      func(v FineOrExpenseVM) string { return v.EntryDate.Format("2006-01-02") },
			Less:       func(a, b FineOrExpenseVM) bool { return a.EntryDate.Before(b.EntryDate) },
			Searchable: true,
		},
	}
}

func mapFineOrExpenseToVM(f *model.FineOrExpense) *FineOrExpenseVM {
	vm := &FineOrExpenseVM{
		ID:                  f.ID,
		Amount:              f.Amount,
		EmployeeID:          f.EmployeeID,
		FineOrExpenseTypeID: f.FineOrExpenseTypeID,
		Description:         f.Description,
		EntryDate:           f.EntryDate,
	}
	if f.Employee != nil {
		vm.EmployeeName = f.Employee.Name
	}
	if f.FineOrExpenseType != nil {
		vm.FineOrExpenseTypeName = f.FineOrExpenseType.Name
	}
	return vm
}

// validate collects every violation rather than stopping at the first,
// so the form can show all field errors in one round.
func (s *fineOrExpenseService) validate(ctx context.Context, req FineOrExpenseRequest) (decimal.Decimal, time.Time, error) {
	var errs []string

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		errs = append(errs, "invalid amount")
	} else {
		if amount.LessThan(fineAmountMin) {
			errs = append(errs, "amount must be at least Rs 200")
		}
		if amount.GreaterThan(fineAmountMax) {
			errs = append(errs, "amount cannot exceed Rs 20,000")
		}
	}

	if req.EmployeeID == 0 {
		errs = append(errs, "please select an employee")
	} else if _, err := s.empRepo.GetByID(ctx, req.EmployeeID); err != nil {
		errs = append(errs, "selected employee does not exist")
	}

	if req.FineOrExpenseTypeID == 0 {
		errs = append(errs, "please select a fine/expense type")
	} else if _, err := s.typeRepo.GetByID(ctx, req.FineOrExpenseTypeID); err != nil {
		errs = append(errs, "selected fine/expense type does not exist")
	}

	// Length limits count characters, not bytes, so non-ASCII
	// descriptions are not penalized.
	desc := strings.TrimSpace(req.Description)
	switch {
	case desc == "":
		errs = append(errs, "description is required")
	case utf8.RuneCountInString(desc) < 3:
		errs = append(errs, "description must be at least 3 characters long")
	case utf8.RuneCountInString(desc) > 500:
		errs = append(errs, "description cannot exceed 500 characters")
	}

	var entryDate time.Time
	if req.EntryDate == "" {
		errs = append(errs, "entry date is required")
	} else {
		entryDate, err = time.Parse("2006-01-02", req.EntryDate)
		if err != nil {
			errs = append(errs, "invalid entry_date format (expected YYYY-MM-DD)")
		} else {
			now := time.Now()
			if entryDate.Before(now.AddDate(-1, 0, 0)) || entryDate.After(now.AddDate(1, 0, 0)) {
				errs = append(errs, "entry date must be within the last year or next year")
			}
		}
	}

	if len(errs) > 0 {
		return decimal.Zero, time.Time{}, errors.New(strings.Join(errs, ". "))
	}
	return amount, entryDate, nil
}

func (s *fineOrExpenseService) GetAll(ctx context.Context) ([]FineOrExpenseVM, error) {
	fines, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	vms := make([]FineOrExpenseVM, 0, len(fines))
	for i := range fines {
		vms = append(vms, *mapFineOrExpenseToVM(&fines[i]))
	}
	return vms, nil
}

func (s *fineOrExpenseService) GetByID(ctx context.Context, id uint) (*FineOrExpenseVM, error) {
	fine, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundf("fine/expense record not found")
	}
	return mapFineOrExpenseToVM(fine), nil
}

func (s *fineOrExpenseService) Create(ctx context.Context, req FineOrExpenseRequest, actor Actor) (*FineOrExpenseVM, error) {
	amount, entryDate, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	fine := &model.FineOrExpense{
		Amount:              amount,
		EmployeeID:          req.EmployeeID,
		FineOrExpenseTypeID: req.FineOrExpenseTypeID,
		Description:         strings.TrimSpace(req.Description),
		EntryDate:           entryDate,
	}
	if err := s.repo.Create(ctx, fine); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.auditRepo, actor, model.ActionCreateFineOrExpense, fine.ID, fine.Description, req)
	return s.GetByID(ctx, fine.ID)
}

func (s *fineOrExpenseService) Update(ctx context.Context, id uint, req FineOrExpenseRequest, actor Actor) (*FineOrExpenseVM, error) {
	fine, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("fine/expense record not found")
		}
		return nil, err
	}

	amount, entryDate, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	fine.Amount = amount
	fine.EmployeeID = req.EmployeeID
	fine.FineOrExpenseTypeID = req.FineOrExpenseTypeID
	fine.Description = strings.TrimSpace(req.Description)
	fine.EntryDate = entryDate
	if err := s.repo.Update(ctx, fine); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.auditRepo, actor, model.ActionUpdateFineOrExpense, fine.ID, fine.Description, req)
	return s.GetByID(ctx, fine.ID)
}

func (s *fineOrExpenseService) Delete(ctx context.Context, id uint, actor Actor) error {
	fine, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return notFoundf("fine/expense record with ID %d not found", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete fine/expense record: %w", err)
	}

	recordAudit(ctx, s.auditRepo, actor, model.ActionDeleteFineOrExpense, id, fine.Description, nil)
	return nil
}

func (s *fineOrExpenseService) Query(ctx context.Context, req datatable.Request) (datatable.Response[FineOrExpenseVM], error) {
	fines, err := s.GetAll(ctx)
	if err != nil {
		return datatable.Response[FineOrExpenseVM]{}, err
	}
	return datatable.Apply(fines, req, fineOrExpenseColumns()), nil
}
