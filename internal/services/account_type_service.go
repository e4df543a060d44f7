package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "vault/internal/errors"
	"vault/internal/logger"
	"vault/internal/models"
)

// DefaultAccountTypes are created by SeedDefaultAccountTypes on an empty store.
var DefaultAccountTypes = []AccountTypeInput{
	{Name: "Debit Account", NormalSide: models.NormalSideDebit},
	{Name: "Credit Account", NormalSide: models.NormalSideCredit},
}

// accountTypeService handles account type persistence.
type accountTypeService struct {
	db *gorm.DB
}

// NewAccountTypeService creates a new AccountTypeServicer.
func NewAccountTypeService(db *gorm.DB) AccountTypeServicer {
	return &accountTypeService{db: db}
}

func (in *AccountTypeInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	if side, ok := models.ParseNormalSide(string(in.NormalSide)); ok {
		in.NormalSide = side
	}
}

// CreateAccountType creates a new account type.
func (s *accountTypeService) CreateAccountType(in AccountTypeInput) (*models.AccountType, error) {
	in.normalize()
	if err := validate(in); err != nil {
		return nil, err
	}

	accountType := &models.AccountType{Name: in.Name, NormalSide: in.NormalSide}
	if err := s.db.Create(accountType).Error; err != nil {
		return nil, translate(err, apperrors.ErrAccountTypeNotFound)
	}
	return accountType, nil
}

// GetAccountTypeByID retrieves an account type by ID.
func (s *accountTypeService) GetAccountTypeByID(id uint) (*models.AccountType, error) {
	var accountType models.AccountType
	if err := s.db.First(&accountType, id).Error; err != nil {
		return nil, translate(err, apperrors.ErrAccountTypeNotFound)
	}
	return &accountType, nil
}

// ListAccountTypes returns every account type ordered by name.
func (s *accountTypeService) ListAccountTypes() ([]models.AccountType, error) {
	var types []models.AccountType
	if err := s.db.Order("name COLLATE NOCASE").Find(&types).Error; err != nil {
		return nil, translate(err, apperrors.ErrAccountTypeNotFound)
	}
	return types, nil
}

// UpdateAccountType overwrites the editable fields of an account type.
func (s *accountTypeService) UpdateAccountType(id uint, in AccountTypeInput) (*models.AccountType, error) {
	in.normalize()
	if err := validate(in); err != nil {
		return nil, err
	}

	accountType, err := s.GetAccountTypeByID(id)
	if err != nil {
		return nil, err
	}
	accountType.Name = in.Name
	accountType.NormalSide = in.NormalSide
	if err := s.db.Save(accountType).Error; err != nil {
		return nil, translate(err, apperrors.ErrAccountTypeNotFound)
	}
	return accountType, nil
}

// DeleteAccountTypes deletes the given account types in one batch.
func (s *accountTypeService) DeleteAccountTypes(ids []uint) (int64, error) {
	return deleteByIDs(s.db, &models.AccountType{}, ids)
}

// AccountTypeChoices lists account types as selector options labeled by name.
func (s *accountTypeService) AccountTypeChoices() ([]Choice, error) {
	types, err := s.ListAccountTypes()
	if err != nil {
		return nil, err
	}
	choices := make([]Choice, 0, len(types))
	for _, t := range types {
		choices = append(choices, Choice{ID: t.ID, Label: t.Name})
	}
	return choices, nil
}

// SeedDefaultAccountTypes creates DefaultAccountTypes when no account type
// exists yet and reports how many were created.
func (s *accountTypeService) SeedDefaultAccountTypes() (int, error) {
	created := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.AccountType{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		for _, in := range DefaultAccountTypes {
			if err := tx.Create(&models.AccountType{Name: in.Name, NormalSide: in.NormalSide}).Error; err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, translate(err, apperrors.ErrAccountTypeNotFound)
	}
	if created > 0 {
		logger.Get().Infow("Seeded default account types", "count", created)
	}
	return created, nil
}
