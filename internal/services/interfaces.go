package services

import (
	"time"

	"github.com/shopspring/decimal"

	"vault/internal/coa"
	"vault/internal/models"
)

// Choice is one entry of a selector: a record id and the label shown for it.
type Choice struct {
	ID    uint
	Label string
}

// CurrencyInput holds the editable fields of a currency.
type CurrencyInput struct {
	Code        string `validate:"required,currency_code" label:"Code"`
	Description string `validate:"max=255" label:"Description"`
}

// CurrencyServicer defines the contract for currency persistence.
type CurrencyServicer interface {
	CreateCurrency(in CurrencyInput) (*models.Currency, error)
	GetCurrencyByID(id uint) (*models.Currency, error)
	ListCurrencies() ([]models.Currency, error)
	UpdateCurrency(id uint, in CurrencyInput) (*models.Currency, error)
	DeleteCurrencies(ids []uint) (int64, error)
	CurrencyChoices() ([]Choice, error)
}

// ProviderInput holds the editable fields of a provider.
type ProviderInput struct {
	Name        string `validate:"required,max=100" label:"Name"`
	Description string `validate:"max=255" label:"Description"`
}

// ProviderServicer defines the contract for provider persistence.
type ProviderServicer interface {
	CreateProvider(in ProviderInput) (*models.Provider, error)
	GetProviderByID(id uint) (*models.Provider, error)
	ListProviders() ([]models.Provider, error)
	UpdateProvider(id uint, in ProviderInput) (*models.Provider, error)
	DeleteProviders(ids []uint) (int64, error)
}

// AccountTypeInput holds the editable fields of an account type.
type AccountTypeInput struct {
	Name       string            `validate:"required,max=100" label:"Name"`
	NormalSide models.NormalSide `validate:"required,normal_side" label:"Normal Side"`
}

// AccountTypeServicer defines the contract for account type persistence.
type AccountTypeServicer interface {
	CreateAccountType(in AccountTypeInput) (*models.AccountType, error)
	GetAccountTypeByID(id uint) (*models.AccountType, error)
	ListAccountTypes() ([]models.AccountType, error)
	UpdateAccountType(id uint, in AccountTypeInput) (*models.AccountType, error)
	DeleteAccountTypes(ids []uint) (int64, error)
	AccountTypeChoices() ([]Choice, error)
	SeedDefaultAccountTypes() (int, error)
}

// AccountGroupInput holds the editable fields of an account group.
type AccountGroupInput struct {
	Name        string `validate:"required,max=100" label:"Name"`
	Description string `validate:"max=255" label:"Description"`
	ParentID    *uint  `label:"Parent"`
}

// AccountGroupServicer defines the contract for account group persistence
// and the chart of accounts built from it.
type AccountGroupServicer interface {
	CreateAccountGroup(in AccountGroupInput) (*models.AccountGroup, error)
	GetAccountGroupByID(id uint) (*models.AccountGroup, error)
	UpdateAccountGroup(id uint, in AccountGroupInput) (*models.AccountGroup, error)
	DeleteAccountGroups(ids []uint) (int64, error)
	Chart() (*coa.Forest, error)
	GroupChoices() ([]Choice, error)
	ParentChoices(groupID uint) ([]Choice, error)
	DeleteChartItems(accountIDs, groupIDs []uint) (accounts int64, groups int64, err error)
}

// AccountInput holds the editable fields of an account. Times are in UTC.
type AccountInput struct {
	Name           string     `validate:"required,max=100" label:"Name"`
	Description    string     `validate:"max=255" label:"Description"`
	AccountNumber  string     `validate:"max=64" label:"Account Number"`
	CurrencyID     uint       `validate:"required" label:"Currency"`
	OpenedAt       time.Time  `validate:"required" label:"Opened At"`
	ClosedAt       *time.Time `label:"Closed At"`
	AccountGroupID uint       `validate:"required" label:"Account Group"`
	AccountTypeID  uint       `validate:"required" label:"Account Type"`
}

// AccountServicer defines the contract for account persistence.
type AccountServicer interface {
	CreateAccount(in AccountInput) (*models.Account, error)
	GetAccountByID(id uint) (*models.Account, error)
	ListAccounts() ([]models.Account, error)
	UpdateAccount(id uint, in AccountInput) (*models.Account, error)
	DeleteAccounts(ids []uint) (int64, error)
	AccountChoices() ([]Choice, error)
}

// OverdraftInput holds the editable fields of an account overdraft. Times are in UTC.
type OverdraftInput struct {
	AccountID uint            `validate:"required" label:"Account"`
	Limit     decimal.Decimal `label:"Limit"`
	StartedAt time.Time       `validate:"required" label:"Started At"`
	EndedAt   *time.Time      `label:"Ended At"`
}

// AccountOverdraftServicer defines the contract for overdraft persistence.
type AccountOverdraftServicer interface {
	CreateOverdraft(in OverdraftInput) (*models.AccountOverdraft, error)
	GetOverdraftByID(id uint) (*models.AccountOverdraft, error)
	ListOverdrafts() ([]models.AccountOverdraft, error)
	UpdateOverdraft(id uint, in OverdraftInput) (*models.AccountOverdraft, error)
	DeleteOverdrafts(ids []uint) (int64, error)
	CurrentOverdraft(accountID uint) (*models.AccountOverdraft, error)
	OverdraftActiveAt(accountID uint, at time.Time) (*models.AccountOverdraft, error)
}

// TransactionInput holds the editable fields of a transaction. Timestamp is in UTC.
type TransactionInput struct {
	Timestamp         time.Time       `validate:"required" label:"Timestamp"`
	Description       string          `validate:"max=255" label:"Description"`
	InstallmentNumber int             `label:"Installment Number"`
	InstallmentTotal  int             `label:"Installment Total"`
	DebitReference    string          `validate:"max=100" label:"Debit Reference"`
	DebitAccountID    uint            `validate:"required" label:"Debit Account"`
	DebitAmount       decimal.Decimal `label:"Debit Amount"`
	CreditReference   string          `validate:"max=100" label:"Credit Reference"`
	CreditAccountID   uint            `validate:"required" label:"Credit Account"`
	CreditAmount      decimal.Decimal `label:"Credit Amount"`
	IsReconciled      bool            `label:"Reconciled"`
}

// TransactionServicer defines the contract for transaction persistence.
type TransactionServicer interface {
	CreateTransaction(in TransactionInput) (*models.Transaction, error)
	GetTransactionByID(id uint) (*models.Transaction, error)
	ListTransactions() ([]models.Transaction, error)
	UpdateTransaction(id uint, in TransactionInput) (*models.Transaction, error)
	DeleteTransactions(ids []uint) (int64, error)
}
