package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyRide is one day's ride log for an employee. CashWAT and
// CreditWAT are derived from the configured percentages on every
// add/edit; they are stored alongside the base amounts.
type DailyRide struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	EmployeeID      uint            `gorm:"not null;index" json:"employee_id"`
	Employee        *Employee       `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"-"`
	EntryDate       time.Time       `gorm:"not null;index" json:"entry_date"`
	TodayRides      int             `json:"today_rides"`
	OverRides       int             `json:"over_rides"`
	OverRidesAmount decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"over_rides_amount"`
	TotalRides      int             `json:"total_rides"`
	CashAmount      decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"cash_amount"`
	CashWAT         decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"cash_wat"`
	CreditAmount    decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"credit_amount"`
	CreditWAT       decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"credit_wat"`
	Expense         decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"expense"`
	LessAmount      decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"less_amount"`

	// Audit trail: actor comes from the authenticated user, "System"
	// only when no request actor is available.
	InsertDate time.Time  `gorm:"autoCreateTime" json:"insert_date"`
	UpdateDate *time.Time `json:"update_date"`
	InsertedBy string     `gorm:"type:varchar(100);default:'System'" json:"inserted_by"`
	UpdatedBy  string     `gorm:"type:varchar(100)" json:"updated_by"`
}
