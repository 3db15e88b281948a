package model

// FineOrExpenseType categorizes fine/expense records. Name uniqueness
// is case-insensitive, enforced by the service guard before any write.
type FineOrExpenseType struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Name           string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	FineOrExpenses []FineOrExpense `gorm:"foreignKey:FineOrExpenseTypeID;constraint:OnDelete:RESTRICT" json:"-"`
}
