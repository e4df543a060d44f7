package models

import "strings"

// NormalSide is the side on which an account type's balance is positive.
type NormalSide string

const (
	NormalSideDebit  NormalSide = "DEBIT"
	NormalSideCredit NormalSide = "CREDIT"
)

// Valid reports whether s is one of the two sides.
func (s NormalSide) Valid() bool {
	return s == NormalSideDebit || s == NormalSideCredit
}

// ParseNormalSide accepts either side in any case.
func ParseNormalSide(raw string) (NormalSide, bool) {
	s := NormalSide(strings.ToUpper(strings.TrimSpace(raw)))
	return s, s.Valid()
}

// AccountType is the formal accounting type of an account (asset, liability...).
type AccountType struct {
	Base
	Name       string     `gorm:"not null;uniqueIndex" json:"name"`
	NormalSide NormalSide `gorm:"type:varchar(6);not null" json:"normal_side"`
}

// Increases reports whether posting on side raises the balance of this type.
func (t AccountType) Increases(side NormalSide) bool {
	return t.NormalSide == side
}
