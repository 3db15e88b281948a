package model

import (
	"github.com/shopspring/decimal"
)

// Employee is a rider/driver. DailyRides cascade when the employee is
// deleted; FineOrExpense rows restrict deletion instead.
type Employee struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	FatherName    string          `gorm:"type:varchar(100)" json:"father_name"`
	PhoneNo       string          `gorm:"type:varchar(20)" json:"phone_no"`
	Address       string          `gorm:"type:varchar(200)" json:"address"`
	CountryID     uint            `gorm:"not null;index" json:"country_id"`
	Country       *Country        `gorm:"foreignKey:CountryID" json:"-"`
	CityID        uint            `gorm:"not null;index" json:"city_id"`
	City          *City           `gorm:"foreignKey:CityID" json:"-"`
	Salary        decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"salary"`
	Vehicle       string          `gorm:"type:varchar(20)" json:"vehicle"`
	VehicleNumber string          `gorm:"type:varchar(30)" json:"vehicle_number"`
	PicturePath   string          `gorm:"type:varchar(255)" json:"picture_path"`

	DailyRides     []DailyRide     `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"-"`
	FineOrExpenses []FineOrExpense `gorm:"foreignKey:EmployeeID;constraint:OnDelete:RESTRICT" json:"-"`
}
