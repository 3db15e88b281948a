package model

import (
	"time"
)

// StatisticsResponse aggregates ride and money totals over a time range
type StatisticsResponse struct {
	TotalRides         int               `json:"total_rides"`
	TotalCashAmount    string            `json:"total_cash_amount"`
	TotalCreditAmount  string            `json:"total_credit_amount"`
	TotalCashWAT       string            `json:"total_cash_wat"`
	TotalCreditWAT     string            `json:"total_credit_wat"`
	TotalExpense       string            `json:"total_expense"`
	TotalFines         string            `json:"total_fines"`
	TopEmployees       []EmployeeRanking `json:"top_employees"`
	TimeRangeStartDate time.Time         `json:"time_range_start_date"`
	TimeRangeEndDate   time.Time         `json:"time_range_end_date"`
}

// EmployeeRanking represents an employee ranked by accumulated rides
type EmployeeRanking struct {
	EmployeeID   uint   `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	TotalRides   int    `json:"total_rides"`
	TotalCash    string `json:"total_cash"`
	TotalCredit  string `json:"total_credit"`
}
