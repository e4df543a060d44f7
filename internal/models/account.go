package models

import "time"

// Account is a ledger account. OpenedAt and ClosedAt are stored in UTC.
type Account struct {
	Base
	Name           string     `gorm:"not null;uniqueIndex" json:"name"`
	Description    string     `gorm:"not null;default:''" json:"description"`
	AccountNumber  string     `gorm:"not null;default:''" json:"account_number"`
	CurrencyID     uint       `gorm:"not null" json:"currency_id"`
	OpenedAt       time.Time  `gorm:"not null" json:"opened_at"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
	AccountGroupID uint       `gorm:"not null" json:"account_group_id"`
	AccountTypeID  uint       `gorm:"not null" json:"account_type_id"`

	// Relationships
	Currency     Currency     `gorm:"foreignKey:CurrencyID;constraint:OnDelete:RESTRICT" json:"currency"`
	AccountGroup AccountGroup `gorm:"foreignKey:AccountGroupID;constraint:OnDelete:RESTRICT" json:"account_group"`
	AccountType  AccountType  `gorm:"foreignKey:AccountTypeID;constraint:OnDelete:RESTRICT" json:"account_type"`
}

// IsClosedAt reports whether the account was already closed at t.
func (a *Account) IsClosedAt(t time.Time) bool {
	return a.ClosedAt != nil && !a.ClosedAt.After(t)
}
