package models

// Provider is a bank, broker or merchant. No other table references it yet.
type Provider struct {
	Base
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	Description string `gorm:"not null;default:''" json:"description"`
}
