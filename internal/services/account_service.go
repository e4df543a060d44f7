package services

import (
	"strings"

	"gorm.io/gorm"

	"vault/internal/coa"
	apperrors "vault/internal/errors"
	"vault/internal/models"
)

// accountService handles account persistence.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

func (s *accountService) check(in *AccountInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.AccountNumber = strings.TrimSpace(in.AccountNumber)
	if err := validate(*in); err != nil {
		return err
	}
	in.OpenedAt = in.OpenedAt.UTC()
	if in.ClosedAt != nil {
		closed := in.ClosedAt.UTC()
		if closed.Before(in.OpenedAt) {
			return apperrors.ErrClosedBeforeOpened
		}
		in.ClosedAt = &closed
	}

	if err := exists(s.db, &models.Currency{}, in.CurrencyID, apperrors.ErrCurrencyNotFound); err != nil {
		return err
	}
	if err := exists(s.db, &models.AccountGroup{}, in.AccountGroupID, apperrors.ErrAccountGroupNotFound); err != nil {
		return err
	}
	return exists(s.db, &models.AccountType{}, in.AccountTypeID, apperrors.ErrAccountTypeNotFound)
}

func (in AccountInput) apply(a *models.Account) {
	a.Name = in.Name
	a.Description = in.Description
	a.AccountNumber = in.AccountNumber
	a.CurrencyID = in.CurrencyID
	a.OpenedAt = in.OpenedAt
	a.ClosedAt = in.ClosedAt
	a.AccountGroupID = in.AccountGroupID
	a.AccountTypeID = in.AccountTypeID
}

// CreateAccount creates a new account after checking its references.
func (s *accountService) CreateAccount(in AccountInput) (*models.Account, error) {
	if err := s.check(&in); err != nil {
		return nil, err
	}

	account := &models.Account{}
	in.apply(account)
	if err := s.db.Omit("Currency", "AccountGroup", "AccountType").Create(account).Error; err != nil {
		return nil, translate(err, apperrors.ErrAccountNotFound)
	}
	return account, nil
}

// GetAccountByID retrieves an account with its currency, group and type.
func (s *accountService) GetAccountByID(id uint) (*models.Account, error) {
	var account models.Account
	err := s.db.Preload("Currency").Preload("AccountGroup").Preload("AccountType").
		First(&account, id).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrAccountNotFound)
	}
	return &account, nil
}

// ListAccounts returns every account with its relationships, ordered by name.
func (s *accountService) ListAccounts() ([]models.Account, error) {
	var accounts []models.Account
	err := s.db.Preload("Currency").Preload("AccountGroup").Preload("AccountType").
		Order("name COLLATE NOCASE").Find(&accounts).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrAccountNotFound)
	}
	return accounts, nil
}

// UpdateAccount overwrites the editable fields of an account.
func (s *accountService) UpdateAccount(id uint, in AccountInput) (*models.Account, error) {
	if err := s.check(&in); err != nil {
		return nil, err
	}

	var account models.Account
	if err := s.db.First(&account, id).Error; err != nil {
		return nil, translate(err, apperrors.ErrAccountNotFound)
	}
	in.apply(&account)
	if err := s.db.Omit("Currency", "AccountGroup", "AccountType").Save(&account).Error; err != nil {
		return nil, translate(err, apperrors.ErrAccountNotFound)
	}
	return s.GetAccountByID(id)
}

// DeleteAccounts deletes the given accounts in one batch. Their overdrafts go
// with them; accounts referenced by a transaction make the batch fail.
func (s *accountService) DeleteAccounts(ids []uint) (int64, error) {
	return deleteByIDs(s.db, &models.Account{}, ids)
}

// AccountChoices lists every account labeled by alias.
func (s *accountService) AccountChoices() ([]Choice, error) {
	var groups []models.AccountGroup
	if err := s.db.Find(&groups).Error; err != nil {
		return nil, translate(err, apperrors.ErrAccountGroupNotFound)
	}
	accounts, err := s.ListAccounts()
	if err != nil {
		return nil, err
	}
	return labeledChoices(coa.NewForest(groups, accounts).AccountAliases()), nil
}
