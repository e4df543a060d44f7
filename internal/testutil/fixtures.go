package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"vault/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// OpenedAt is the opening timestamp given to fixture accounts.
var OpenedAt = time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

// CreateTestCurrency creates a currency with a unique three-letter code.
func CreateTestCurrency(t *testing.T, db *gorm.DB) *models.Currency {
	t.Helper()
	n := nextID()
	code := fmt.Sprintf("%c%c%c", 'A'+rune(n/676%26), 'A'+rune(n/26%26), 'A'+rune(n%26))
	return CreateTestCurrencyWithCode(t, db, code)
}

// CreateTestCurrencyWithCode creates a currency with the given code.
func CreateTestCurrencyWithCode(t *testing.T, db *gorm.DB, code string) *models.Currency {
	t.Helper()

	currency := &models.Currency{Code: code, Description: code + " currency"}
	if err := db.Create(currency).Error; err != nil {
		t.Fatalf("failed to create test currency: %v", err)
	}
	return currency
}

// CreateTestAccountType creates a debit-normal account type with a unique name.
func CreateTestAccountType(t *testing.T, db *gorm.DB) *models.AccountType {
	t.Helper()
	return CreateTestAccountTypeWithSide(t, db, fmt.Sprintf("Type %d", nextID()), models.NormalSideDebit)
}

// CreateTestAccountTypeWithSide creates an account type with the given name and side.
func CreateTestAccountTypeWithSide(t *testing.T, db *gorm.DB, name string, side models.NormalSide) *models.AccountType {
	t.Helper()

	accountType := &models.AccountType{Name: name, NormalSide: side}
	if err := db.Create(accountType).Error; err != nil {
		t.Fatalf("failed to create test account type: %v", err)
	}
	return accountType
}

// CreateTestGroup creates an account group under parentID (nil for a root).
func CreateTestGroup(t *testing.T, db *gorm.DB, name string, parentID *uint) *models.AccountGroup {
	t.Helper()

	group := &models.AccountGroup{Name: name, ParentID: parentID}
	if err := db.Create(group).Error; err != nil {
		t.Fatalf("failed to create test account group: %v", err)
	}
	return group
}

// CreateTestAccount creates an account in groupID with a fresh currency and type.
func CreateTestAccount(t *testing.T, db *gorm.DB, name string, groupID uint) *models.Account {
	t.Helper()

	currency := CreateTestCurrency(t, db)
	accountType := CreateTestAccountType(t, db)
	account := &models.Account{
		Name:           name,
		CurrencyID:     currency.ID,
		OpenedAt:       OpenedAt,
		AccountGroupID: groupID,
		AccountTypeID:  accountType.ID,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestOverdraft creates an open-ended overdraft on accountID.
func CreateTestOverdraft(t *testing.T, db *gorm.DB, accountID uint, limit string, startedAt time.Time) *models.AccountOverdraft {
	t.Helper()

	overdraft := &models.AccountOverdraft{
		AccountID: accountID,
		Limit:     decimal.RequireFromString(limit),
		StartedAt: startedAt,
	}
	if err := db.Create(overdraft).Error; err != nil {
		t.Fatalf("failed to create test overdraft: %v", err)
	}
	return overdraft
}

// CreateTestTransaction creates a balanced transaction moving amount from
// creditID to debitID.
func CreateTestTransaction(t *testing.T, db *gorm.DB, debitID, creditID uint, amount string, at time.Time) *models.Transaction {
	t.Helper()

	value := decimal.RequireFromString(amount)
	txn := &models.Transaction{
		Timestamp:         at,
		Description:       fmt.Sprintf("Transaction %d", nextID()),
		InstallmentNumber: 1,
		InstallmentTotal:  1,
		DebitAccountID:    debitID,
		DebitAmount:       value,
		CreditAccountID:   creditID,
		CreditAmount:      value,
	}
	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return txn
}
