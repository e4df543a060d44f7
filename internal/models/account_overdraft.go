package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountOverdraft is a credit limit granted to an account from StartedAt
// until EndedAt (open-ended when nil).
type AccountOverdraft struct {
	Base
	AccountID uint            `gorm:"not null;index" json:"account_id"`
	Limit     decimal.Decimal `gorm:"column:credit_limit;type:text;not null" json:"limit"`
	StartedAt time.Time       `gorm:"not null" json:"started_at"`
	EndedAt   *time.Time      `json:"ended_at,omitempty"`

	// Relationships
	Account Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"account"`
}

// Covers reports whether t falls inside [StartedAt, EndedAt).
func (o *AccountOverdraft) Covers(t time.Time) bool {
	if t.Before(o.StartedAt) {
		return false
	}
	return o.EndedAt == nil || t.Before(*o.EndedAt)
}
