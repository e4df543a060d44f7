package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "vault/internal/errors"
	"vault/internal/models"
)

// accountOverdraftService handles overdraft persistence.
type accountOverdraftService struct {
	db *gorm.DB
}

// NewAccountOverdraftService creates a new AccountOverdraftServicer.
func NewAccountOverdraftService(db *gorm.DB) AccountOverdraftServicer {
	return &accountOverdraftService{db: db}
}

func (s *accountOverdraftService) check(in *OverdraftInput) error {
	if err := validate(*in); err != nil {
		return err
	}
	if !in.Limit.IsPositive() {
		return apperrors.ErrNonPositiveLimit
	}
	in.StartedAt = in.StartedAt.UTC()
	if in.EndedAt != nil {
		ended := in.EndedAt.UTC()
		if ended.Before(in.StartedAt) {
			return apperrors.ErrEndedBeforeStarted
		}
		in.EndedAt = &ended
	}
	return exists(s.db, &models.Account{}, in.AccountID, apperrors.ErrAccountNotFound)
}

// CreateOverdraft grants a credit limit to an account.
func (s *accountOverdraftService) CreateOverdraft(in OverdraftInput) (*models.AccountOverdraft, error) {
	if err := s.check(&in); err != nil {
		return nil, err
	}

	overdraft := &models.AccountOverdraft{
		AccountID: in.AccountID,
		Limit:     in.Limit,
		StartedAt: in.StartedAt,
		EndedAt:   in.EndedAt,
	}
	if err := s.db.Omit("Account").Create(overdraft).Error; err != nil {
		return nil, translate(err, apperrors.ErrOverdraftNotFound)
	}
	return overdraft, nil
}

// GetOverdraftByID retrieves an overdraft with its account.
func (s *accountOverdraftService) GetOverdraftByID(id uint) (*models.AccountOverdraft, error) {
	var overdraft models.AccountOverdraft
	if err := s.db.Preload("Account").First(&overdraft, id).Error; err != nil {
		return nil, translate(err, apperrors.ErrOverdraftNotFound)
	}
	return &overdraft, nil
}

// ListOverdrafts returns every overdraft with its account, in insertion order.
func (s *accountOverdraftService) ListOverdrafts() ([]models.AccountOverdraft, error) {
	var overdrafts []models.AccountOverdraft
	if err := s.db.Preload("Account").Order("id").Find(&overdrafts).Error; err != nil {
		return nil, translate(err, apperrors.ErrOverdraftNotFound)
	}
	return overdrafts, nil
}

// UpdateOverdraft overwrites the editable fields of an overdraft.
func (s *accountOverdraftService) UpdateOverdraft(id uint, in OverdraftInput) (*models.AccountOverdraft, error) {
	if err := s.check(&in); err != nil {
		return nil, err
	}

	var overdraft models.AccountOverdraft
	if err := s.db.First(&overdraft, id).Error; err != nil {
		return nil, translate(err, apperrors.ErrOverdraftNotFound)
	}
	overdraft.AccountID = in.AccountID
	overdraft.Limit = in.Limit
	overdraft.StartedAt = in.StartedAt
	overdraft.EndedAt = in.EndedAt
	if err := s.db.Omit("Account").Save(&overdraft).Error; err != nil {
		return nil, translate(err, apperrors.ErrOverdraftNotFound)
	}
	return &overdraft, nil
}

// DeleteOverdrafts deletes the given overdrafts in one batch.
func (s *accountOverdraftService) DeleteOverdrafts(ids []uint) (int64, error) {
	return deleteByIDs(s.db, &models.AccountOverdraft{}, ids)
}

// CurrentOverdraft returns the most recently inserted overdraft of an
// account, whatever its validity interval. See OverdraftActiveAt.
func (s *accountOverdraftService) CurrentOverdraft(accountID uint) (*models.AccountOverdraft, error) {
	var overdraft models.AccountOverdraft
	err := s.db.Where("account_id = ?", accountID).Order("id DESC").First(&overdraft).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrOverdraftNotFound)
	}
	return &overdraft, nil
}

// OverdraftActiveAt returns the overdraft of an account whose interval
// [StartedAt, EndedAt) contains at. When several overlap, the latest start wins.
func (s *accountOverdraftService) OverdraftActiveAt(accountID uint, at time.Time) (*models.AccountOverdraft, error) {
	at = at.UTC()
	var candidates []models.AccountOverdraft
	err := s.db.
		Where("account_id = ? AND started_at <= ?", accountID, at).
		Order("started_at DESC").Order("id DESC").
		Find(&candidates).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrOverdraftNotFound)
	}
	for i := range candidates {
		if candidates[i].Covers(at) {
			return &candidates[i], nil
		}
	}
	return nil, apperrors.ErrOverdraftNotFound
}
