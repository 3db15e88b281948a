package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreateCountry = "CREATE_COUNTRY"
	ActionUpdateCountry = "UPDATE_COUNTRY"
	ActionDeleteCountry = "DELETE_COUNTRY"

	ActionCreateCity = "CREATE_CITY"
	ActionUpdateCity = "UPDATE_CITY"
	ActionDeleteCity = "DELETE_CITY"

	ActionCreateEmployee = "CREATE_EMPLOYEE"
	ActionUpdateEmployee = "UPDATE_EMPLOYEE"
	ActionDeleteEmployee = "DELETE_EMPLOYEE"

	ActionCreateDailyRide = "CREATE_DAILY_RIDE"
	ActionUpdateDailyRide = "UPDATE_DAILY_RIDE"
	ActionDeleteDailyRide = "DELETE_DAILY_RIDE"

	ActionCreateConfiguration = "CREATE_CONFIGURATION"
	ActionUpdateConfiguration = "UPDATE_CONFIGURATION"
	ActionDeleteConfiguration = "DELETE_CONFIGURATION"

	ActionCreateFineOrExpenseType = "CREATE_FINE_OR_EXPENSE_TYPE"
	ActionUpdateFineOrExpenseType = "UPDATE_FINE_OR_EXPENSE_TYPE"
	ActionDeleteFineOrExpenseType = "DELETE_FINE_OR_EXPENSE_TYPE"

	ActionCreateFineOrExpense = "CREATE_FINE_OR_EXPENSE"
	ActionUpdateFineOrExpense = "UPDATE_FINE_OR_EXPENSE"
	ActionDeleteFineOrExpense = "DELETE_FINE_OR_EXPENSE"
)

// AuditLog tracks Who, What, and When for critical system changes
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id"` // Nullable gracefully if automated bot
	User       *User      `gorm:"foreignKey:UserID" json:"user"`
	Action     string     `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string     `gorm:"type:varchar(50);index" json:"entity_id"`        // Reference string (numeric id/uuid)
	EntityName string     `gorm:"type:varchar(255)" json:"entity_name,omitempty"` // Human readable name
	Details    string     `gorm:"type:jsonb" json:"details"`                      // Serialized JSON payload of the action
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}
