package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "vault/internal/errors"
	"vault/internal/models"
)

// currencyService handles currency persistence.
type currencyService struct {
	db *gorm.DB
}

// NewCurrencyService creates a new CurrencyServicer.
func NewCurrencyService(db *gorm.DB) CurrencyServicer {
	return &currencyService{db: db}
}

func (in *CurrencyInput) normalize() {
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	in.Description = strings.TrimSpace(in.Description)
}

// CreateCurrency creates a new currency. The code is stored upper-cased.
func (s *currencyService) CreateCurrency(in CurrencyInput) (*models.Currency, error) {
	in.normalize()
	if err := validate(in); err != nil {
		return nil, err
	}

	currency := &models.Currency{Code: in.Code, Description: in.Description}
	if err := s.db.Create(currency).Error; err != nil {
		return nil, translate(err, apperrors.ErrCurrencyNotFound)
	}
	return currency, nil
}

// GetCurrencyByID retrieves a currency by ID.
func (s *currencyService) GetCurrencyByID(id uint) (*models.Currency, error) {
	var currency models.Currency
	if err := s.db.First(&currency, id).Error; err != nil {
		return nil, translate(err, apperrors.ErrCurrencyNotFound)
	}
	return &currency, nil
}

// ListCurrencies returns every currency ordered by code.
func (s *currencyService) ListCurrencies() ([]models.Currency, error) {
	var currencies []models.Currency
	if err := s.db.Order("code").Find(&currencies).Error; err != nil {
		return nil, translate(err, apperrors.ErrCurrencyNotFound)
	}
	return currencies, nil
}

// UpdateCurrency overwrites the editable fields of a currency.
func (s *currencyService) UpdateCurrency(id uint, in CurrencyInput) (*models.Currency, error) {
	in.normalize()
	if err := validate(in); err != nil {
		return nil, err
	}

	currency, err := s.GetCurrencyByID(id)
	if err != nil {
		return nil, err
	}
	currency.Code = in.Code
	currency.Description = in.Description
	if err := s.db.Save(currency).Error; err != nil {
		return nil, translate(err, apperrors.ErrCurrencyNotFound)
	}
	return currency, nil
}

// DeleteCurrencies deletes the given currencies in one batch.
func (s *currencyService) DeleteCurrencies(ids []uint) (int64, error) {
	return deleteByIDs(s.db, &models.Currency{}, ids)
}

// CurrencyChoices lists currencies as selector options labeled by code.
func (s *currencyService) CurrencyChoices() ([]Choice, error) {
	currencies, err := s.ListCurrencies()
	if err != nil {
		return nil, err
	}
	choices := make([]Choice, 0, len(currencies))
	for _, c := range currencies {
		choices = append(choices, Choice{ID: c.ID, Label: c.Code})
	}
	return choices, nil
}
