package service

import (
	"context"
	"time"

	"ridersapp/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type StatisticsService interface {
	GetStatistics(ctx context.Context, startDate, endDate time.Time) (model.StatisticsResponse, error)
}

type statisticsService struct {
	db *gorm.DB
}

func NewStatisticsService(db *gorm.DB) StatisticsService {
	return &statisticsService{db: db}
}

// GetStatistics aggregates ride counts and money totals from the daily
// ride log plus fines, bounded by entry date.
func (s *statisticsService) GetStatistics(ctx context.Context, startDate, endDate time.Time) (model.StatisticsResponse, error) {
	var response model.StatisticsResponse
	response.TimeRangeStartDate = startDate
	response.TimeRangeEndDate = endDate

	var totals struct {
		Rides  int
		Cash   decimal.Decimal
		Credit decimal.Decimal
		CashW  decimal.Decimal
		CredW  decimal.Decimal
		Exp    decimal.Decimal
	}
	err := s.db.WithContext(ctx).Model(&model.DailyRide{}).
		Select("COALESCE(SUM(total_rides),0) as rides, COALESCE(SUM(cash_amount),0) as cash, COALESCE(SUM(credit_amount),0) as credit, COALESCE(SUM(cash_wat),0) as cash_w, COALESCE(SUM(credit_wat),0) as cred_w, COALESCE(SUM(expense),0) as exp").
		Where("entry_date >= ? AND entry_date <= ?", startDate, endDate).
		Scan(&totals).Error
	if err != nil {
		return response, err
	}

	response.TotalRides = totals.Rides
	response.TotalCashAmount = totals.Cash.StringFixed(2)
	response.TotalCreditAmount = totals.Credit.StringFixed(2)
	response.TotalCashWAT = totals.CashW.StringFixed(2)
	response.TotalCreditWAT = totals.CredW.StringFixed(2)
	response.TotalExpense = totals.Exp.StringFixed(2)

	var fines struct {
		Total decimal.Decimal
	}
	err = s.db.WithContext(ctx).Model(&model.FineOrExpense{}).
		Select("COALESCE(SUM(amount),0) as total").
		Where("entry_date >= ? AND entry_date <= ?", startDate, endDate).
		Scan(&fines).Error
	if err != nil {
		return response, err
	}
	response.TotalFines = fines.Total.StringFixed(2)

	var rankings []struct {
		EmployeeID   uint
		EmployeeName string
		TotalRides   int
		TotalCash    decimal.Decimal
		TotalCredit  decimal.Decimal
	}
	err = s.db.WithContext(ctx).Table("daily_rides").
		Select("employees.id as employee_id, employees.name as employee_name, SUM(daily_rides.total_rides) as total_rides, SUM(daily_rides.cash_amount) as total_cash, SUM(daily_rides.credit_amount) as total_credit").
		Joins("JOIN employees ON employees.id = daily_rides.employee_id").
		Where("daily_rides.entry_date >= ? AND daily_rides.entry_date <= ?", startDate, endDate).
		Group("employees.id, employees.name").
		Order("total_rides DESC").
		Limit(5).
		Scan(&rankings).Error
	if err != nil {
		return response, err
	}

	top := make([]model.EmployeeRanking, 0, len(rankings))
	for _, r := range rankings {
		top = append(top, model.EmployeeRanking{
			EmployeeID:   r.EmployeeID,
			EmployeeName: r.EmployeeName,
			TotalRides:   r.TotalRides,
			TotalCash:    r.TotalCash.StringFixed(2),
			TotalCredit:  r.TotalCredit.StringFixed(2),
		})
	}
	response.TopEmployees = top

	return response, nil
}
