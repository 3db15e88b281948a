package model

// City belongs to exactly one Country and owns zero or more employees.
type City struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	CityName   string     `gorm:"type:varchar(100);not null" json:"city_name"`
	PostalCode string     `gorm:"type:varchar(20);not null" json:"postal_code"`
	CountryID  uint       `gorm:"not null;index" json:"country_id"`
	Country    *Country   `gorm:"foreignKey:CountryID;constraint:OnDelete:RESTRICT" json:"-"`
	Employees  []Employee `gorm:"foreignKey:CityID;constraint:OnDelete:RESTRICT" json:"-"`
}
