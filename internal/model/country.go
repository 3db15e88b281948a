package model

// Country is the top of the location hierarchy. Cities and employees
// reference it with restrict-on-delete, enforced both by the FK
// constraint and by the service-level delete guard.
type Country struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"type:varchar(100);not null" json:"name"`
	Cities    []City     `gorm:"foreignKey:CountryID;constraint:OnDelete:RESTRICT" json:"-"`
	Employees []Employee `gorm:"foreignKey:CountryID;constraint:OnDelete:RESTRICT" json:"-"`
}
