package models

// Currency is a unit of account referenced by accounts.
type Currency struct {
	Base
	Code        string `gorm:"type:varchar(3);not null;uniqueIndex" json:"code"`
	Description string `gorm:"not null;default:''" json:"description"`
}
