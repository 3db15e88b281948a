package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// FineOrExpense records a fine or an expense charged against one
// employee. Amount is bounded to [200, 20000] and the entry date must
// fall within one year of "now" — both checked at the service layer.
type FineOrExpense struct {
	ID                  uint               `gorm:"primaryKey" json:"id"`
	Amount              decimal.Decimal    `gorm:"type:decimal(18,2);not null" json:"amount"`
	EmployeeID          uint               `gorm:"not null;index" json:"employee_id"`
	Employee            *Employee          `gorm:"foreignKey:EmployeeID;constraint:OnDelete:RESTRICT" json:"-"`
	FineOrExpenseTypeID uint               `gorm:"not null;index" json:"fine_or_expense_type_id"`
	FineOrExpenseType   *FineOrExpenseType `gorm:"foreignKey:FineOrExpenseTypeID;constraint:OnDelete:RESTRICT" json:"-"`
	Description         string             `gorm:"type:varchar(500);not null" json:"description"`
	EntryDate           time.Time          `gorm:"not null" json:"entry_date"`
}
