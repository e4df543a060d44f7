package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a double-entry movement between two accounts. Both legs
// carry the same amount; the services refuse anything else.
type Transaction struct {
	Base
	Timestamp         time.Time `gorm:"not null;index" json:"timestamp"`
	Description       string    `gorm:"not null;default:''" json:"description"`
	InstallmentNumber int       `gorm:"not null;default:1" json:"installment_number"`
	InstallmentTotal  int       `gorm:"not null;default:1" json:"installment_total"`

	// Debit leg
	DebitReference string          `gorm:"not null;default:''" json:"debit_reference"`
	DebitAccountID uint            `gorm:"not null;index" json:"debit_account_id"`
	DebitAmount    decimal.Decimal `gorm:"type:text;not null" json:"debit_amount"`

	// Credit leg
	CreditReference string          `gorm:"not null;default:''" json:"credit_reference"`
	CreditAccountID uint            `gorm:"not null;index" json:"credit_account_id"`
	CreditAmount    decimal.Decimal `gorm:"type:text;not null" json:"credit_amount"`

	IsReconciled bool `gorm:"not null;default:false" json:"is_reconciled"`

	// Relationships
	DebitAccount  Account `gorm:"foreignKey:DebitAccountID;constraint:OnDelete:RESTRICT" json:"debit_account"`
	CreditAccount Account `gorm:"foreignKey:CreditAccountID;constraint:OnDelete:RESTRICT" json:"credit_account"`
}
