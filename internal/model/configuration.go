package model

// Configuration keys consumed elsewhere in the codebase.
const (
	ConfigKeyCashWAT   = "CashWAT"
	ConfigKeyCreditWAT = "CreditWAT"
)

// Configuration is a flat key-value settings row. The WAT percentages
// for daily rides live here as decimal strings.
type Configuration struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	KeyName string `gorm:"type:varchar(100);uniqueIndex;not null" json:"key_name"`
	Value   string `gorm:"type:varchar(500);not null" json:"value"`
}
