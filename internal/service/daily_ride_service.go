package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ridersapp/internal/model"
	"ridersapp/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ridersapp/pkg/datatable"
)

// --- DTOs ---

type DailyRideRequest struct {
	EmployeeID      uint   `json:"employee_id" binding:"required"`
	EntryDate       string `json:"entry_date" binding:"required"` // YYYY-MM-DD
	TodayRides      int    `json:"today_rides"`
	OverRides       int    `json:"over_rides"`
	OverRidesAmount string `json:"over_rides_amount"` // Decimal strings throughout
	TotalRides      int    `json:"total_rides"`
	CashAmount      string `json:"cash_amount"`
	CreditAmount    string `json:"credit_amount"`
	Expense         string `json:"expense"`
	LessAmount      string `json:"less_amount"`
}

type DailyRideVM struct {
	ID              uint            `json:"id"`
	EmployeeID      uint            `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	EntryDate       time.Time       `json:"entry_date"`
	TodayRides      int             `json:"today_rides"`
	OverRides       int             `json:"over_rides"`
	OverRidesAmount decimal.Decimal `json:"over_rides_amount"`
	TotalRides      int             `json:"total_rides"`
	CashAmount      decimal.Decimal `json:"cash_amount"`
	CashWAT         decimal.Decimal `json:"cash_wat"`
	CreditAmount    decimal.Decimal `json:"credit_amount"`
	CreditWAT       decimal.Decimal `json:"credit_wat"`
	Expense         decimal.Decimal `json:"expense"`
	LessAmount      decimal.Decimal `json:"less_amount"`
	InsertDate      time.Time       `json:"insert_date"`
	UpdateDate      *time.Time      `json:"update_date"`
	InsertedBy      string          `json:"inserted_by"`
	UpdatedBy       string          `json:"updated_by"`
}

// --- Interface ---

type DailyRideService interface {
	GetAll(ctx context.Context) ([]DailyRideVM, error)
	GetByID(ctx context.Context, id uint) (*DailyRideVM, error)
	Create(ctx context.Context, req DailyRideRequest, actor Actor) (*DailyRideVM, error)
	Update(ctx context.Context, id uint, req DailyRideRequest, actor Actor) (*DailyRideVM, error)
	Delete(ctx context.Context, id uint, actor Actor) error
	Query(ctx context.Context, req datatable.Request) (datatable.Response[DailyRideVM], error)
}

type dailyRideService struct {
	repo         repository.DailyRideRepository
	employeeRepo repository.EmployeeRepository
	configSvc    ConfigurationService
	auditRepo    repository.AuditRepository
}

// NewDailyRideService returns a new instance of DailyRideService
func NewDailyRideService(
	repo repository.DailyRideRepository,
	employeeRepo repository.EmployeeRepository,
	configSvc ConfigurationService,
	auditRepo repository.AuditRepository,
) DailyRideService {
	return &dailyRideService{
		repo:         repo,
		employeeRepo: employeeRepo,
		configSvc:    configSvc,
		auditRepo:    auditRepo,
	}
}

// ComputeWAT derives a withholding amount from a base amount and a
// configured percentage: amount × percent ÷ 100, rounded half-up to two
// decimal places. Pure function, recomputed on every add/edit.
func ComputeWAT(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Div(decimal.NewFromInt(100)).Round(2)
}

// Grid column order: EmployeeName, EntryDate, CreditAmount, CreditWAT,
// CashAmount, CashWAT, Expense, TodayRides, TotalRides. The free-text
// filter covers employee name, the yyyy-mm-dd date, and the ride counts.
func dailyRideColumns() []datatable.Column[DailyRideVM] {
	decimalCol := func(name string, get func(DailyRideVM) decimal.Decimal) datatable.Column[DailyRideVM] {
		return datatable.Column[DailyRideVM]{
			Name:  name,
			Value: func(v DailyRideVM) string { return get(v).StringFixed(2) },
			Less:  func(a, b DailyRideVM) bool { return get(a).LessThan(get(b)) },
		}
	}

	return []datatable.Column[DailyRideVM]{
		{Name: "EmployeeName", Value: func(v DailyRideVM) string { return v.EmployeeName }, Searchable: true},
		{
			Name:       "EntryDate",
			Value:      func(v DailyRideVM) string { return v.EntryDate.Format("2006-01-02") },
			Less:       func(a, b DailyRideVM) bool { return a.EntryDate.Before(b.EntryDate) },
			Searchable: true,
		},
		decimalCol("CreditAmount", func(v DailyRideVM) decimal.Decimal { return v.CreditAmount }),
		decimalCol("CreditWAT", func(v DailyRideVM) decimal.Decimal { return v.CreditWAT }),
		decimalCol("CashAmount", func(v DailyRideVM) decimal.Decimal { return v.CashAmount }),
		decimalCol("CashWAT", func(v DailyRideVM) decimal.Decimal { return v.CashWAT }),
		decimalCol("Expense", func(v DailyRideVM) decimal.Decimal { return v.Expense }),
		{
			Name:       "TodayRides",
			Value:      func(v DailyRideVM) string { return fmt.Sprintf("%d", v.TodayRides) },
			Less:       func(a, b DailyRideVM) bool { return a.TodayRides < b.TodayRides },
			Searchable: true,
		},
		{
			Name:       "TotalRides",
			Value:      func(v DailyRideVM) string { return fmt.Sprintf("%d", v.TotalRides) },
			Less:       func(a, b DailyRideVM) bool { return a.TotalRides < b.TotalRides },
			Searchable: true,
		},
	}
}

func mapDailyRideToVM(d *model.DailyRide) *DailyRideVM {
	vm := &DailyRideVM{
		ID:              d.ID,
		EmployeeID:      d.EmployeeID,
		EntryDate:       d.EntryDate,
		TodayRides:      d.TodayRides,
		OverRides:       d.OverRides,
		OverRidesAmount: d.OverRidesAmount,
		TotalRides:      d.TotalRides,
		CashAmount:      d.CashAmount,
		CashWAT:         d.CashWAT,
		CreditAmount:    d.CreditAmount,
		CreditWAT:       d.CreditWAT,
		Expense:         d.Expense,
		LessAmount:      d.LessAmount,
		InsertDate:      d.InsertDate,
		UpdateDate:      d.UpdateDate,
		InsertedBy:      d.InsertedBy,
		UpdatedBy:       d.UpdatedBy,
	}
	if d.Employee != nil {
		vm.EmployeeName = d.Employee.Name
	}
	return vm
}

type dailyRideAmounts struct {
	entryDate       time.Time
	overRidesAmount decimal.Decimal
	cashAmount      decimal.Decimal
	creditAmount    decimal.Decimal
	expense         decimal.Decimal
	lessAmount      decimal.Decimal
}

func parseDailyRideFields(req DailyRideRequest) (dailyRideAmounts, error) {
	var out dailyRideAmounts

	entryDate, err := time.Parse("2006-01-02", req.EntryDate)
	if err != nil {
		return out, fmt.Errorf("invalid entry_date format (expected YYYY-MM-DD): %w", err)
	}
	out.entryDate = entryDate

	parse := func(name, raw string) (decimal.Decimal, error) {
		if raw == "" {
			return decimal.Zero, nil
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid %s: %w", name, err)
		}
		return d, nil
	}

	if out.overRidesAmount, err = parse("over_rides_amount", req.OverRidesAmount); err != nil {
		return out, err
	}
	if out.cashAmount, err = parse("cash_amount", req.CashAmount); err != nil {
		return out, err
	}
	if out.creditAmount, err = parse("credit_amount", req.CreditAmount); err != nil {
		return out, err
	}
	if out.expense, err = parse("expense", req.Expense); err != nil {
		return out, err
	}
	if out.lessAmount, err = parse("less_amount", req.LessAmount); err != nil {
		return out, err
	}
	return out, nil
}

func (s *dailyRideService) GetAll(ctx context.Context) ([]DailyRideVM, error) {
	rides, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	vms := make([]DailyRideVM, 0, len(rides))
	for i := range rides {
		vms = append(vms, *mapDailyRideToVM(&rides[i]))
	}
	return vms, nil
}

func (s *dailyRideService) GetByID(ctx context.Context, id uint) (*DailyRideVM, error) {
	ride, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundf("daily ride record not found")
	}
	return mapDailyRideToVM(ride), nil
}

func (s *dailyRideService) Create(ctx context.Context, req DailyRideRequest, actor Actor) (*DailyRideVM, error) {
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, errors.New("selected employee does not exist")
	}

	amounts, err := parseDailyRideFields(req)
	if err != nil {
		return nil, err
	}

	cashPercent := s.configSvc.GetPercent(ctx, model.ConfigKeyCashWAT)
	creditPercent := s.configSvc.GetPercent(ctx, model.ConfigKeyCreditWAT)

	ride := &model.DailyRide{
		EmployeeID:      req.EmployeeID,
		EntryDate:       amounts.entryDate,
		TodayRides:      req.TodayRides,
		OverRides:       req.OverRides,
		OverRidesAmount: amounts.overRidesAmount,
		TotalRides:      req.TotalRides,
		CashAmount:      amounts.cashAmount,
		CashWAT:         ComputeWAT(amounts.cashAmount, cashPercent),
		CreditAmount:    amounts.creditAmount,
		CreditWAT:       ComputeWAT(amounts.creditAmount, creditPercent),
		Expense:         amounts.expense,
		LessAmount:      amounts.lessAmount,
		InsertedBy:      actor.Name(),
	}
	if err := s.repo.Create(ctx, ride); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.auditRepo, actor, model.ActionCreateDailyRide, ride.ID, ride.EntryDate.Format("2006-01-02"), req)
	return s.GetByID(ctx, ride.ID)
}

func (s *dailyRideService) Update(ctx context.Context, id uint, req DailyRideRequest, actor Actor) (*DailyRideVM, error) {
	ride, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("daily ride record not found")
		}
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, errors.New("selected employee does not exist")
	}

	amounts, err := parseDailyRideFields(req)
	if err != nil {
		return nil, err
	}

	// WAT is never cached: re-read the percentages and recompute.
	cashPercent := s.configSvc.GetPercent(ctx, model.ConfigKeyCashWAT)
	creditPercent := s.configSvc.GetPercent(ctx, model.ConfigKeyCreditWAT)

	now := time.Now()
	ride.EmployeeID = req.EmployeeID
	ride.EntryDate = amounts.entryDate
	ride.TodayRides = req.TodayRides
	ride.OverRides = req.OverRides
	ride.OverRidesAmount = amounts.overRidesAmount
	ride.TotalRides = req.TotalRides
	ride.CashAmount = amounts.cashAmount
	ride.CashWAT = ComputeWAT(amounts.cashAmount, cashPercent)
	ride.CreditAmount = amounts.creditAmount
	ride.CreditWAT = ComputeWAT(amounts.creditAmount, creditPercent)
	ride.Expense = amounts.expense
	ride.LessAmount = amounts.lessAmount
	ride.UpdateDate = &now
	ride.UpdatedBy = actor.Name()
	if err := s.repo.Update(ctx, ride); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.auditRepo, actor, model.ActionUpdateDailyRide, ride.ID, ride.EntryDate.Format("2006-01-02"), req)
	return s.GetByID(ctx, ride.ID)
}

func (s *dailyRideService) Delete(ctx context.Context, id uint, actor Actor) error {
	ride, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return notFoundf("daily ride record with ID %d not found", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete daily ride record: %w", err)
	}

	recordAudit(ctx, s.auditRepo, actor, model.ActionDeleteDailyRide, id, ride.EntryDate.Format("2006-01-02"), nil)
	return nil
}

func (s *dailyRideService) Query(ctx context.Context, req datatable.Request) (datatable.Response[DailyRideVM], error) {
	rides, err := s.GetAll(ctx)
	if err != nil {
		return datatable.Response[DailyRideVM]{}, err
	}
	return datatable.Apply(rides, req, dailyRideColumns()), nil
}
