package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "vault/internal/errors"
	"vault/internal/models"
)

// providerService handles provider persistence.
type providerService struct {
	db *gorm.DB
}

// NewProviderService creates a new ProviderServicer.
func NewProviderService(db *gorm.DB) ProviderServicer {
	return &providerService{db: db}
}

// CreateProvider creates a new provider.
func (s *providerService) CreateProvider(in ProviderInput) (*models.Provider, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validate(in); err != nil {
		return nil, err
	}

	provider := &models.Provider{Name: in.Name, Description: strings.TrimSpace(in.Description)}
	if err := s.db.Create(provider).Error; err != nil {
		return nil, translate(err, apperrors.ErrProviderNotFound)
	}
	return provider, nil
}

// GetProviderByID retrieves a provider by ID.
func (s *providerService) GetProviderByID(id uint) (*models.Provider, error) {
	var provider models.Provider
	if err := s.db.First(&provider, id).Error; err != nil {
		return nil, translate(err, apperrors.ErrProviderNotFound)
	}
	return &provider, nil
}

// ListProviders returns every provider ordered by name.
func (s *providerService) ListProviders() ([]models.Provider, error) {
	var providers []models.Provider
	if err := s.db.Order("name COLLATE NOCASE").Find(&providers).Error; err != nil {
		return nil, translate(err, apperrors.ErrProviderNotFound)
	}
	return providers, nil
}

// UpdateProvider overwrites the editable fields of a provider.
func (s *providerService) UpdateProvider(id uint, in ProviderInput) (*models.Provider, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validate(in); err != nil {
		return nil, err
	}

	provider, err := s.GetProviderByID(id)
	if err != nil {
		return nil, err
	}
	provider.Name = in.Name
	provider.Description = strings.TrimSpace(in.Description)
	if err := s.db.Save(provider).Error; err != nil {
		return nil, translate(err, apperrors.ErrProviderNotFound)
	}
	return provider, nil
}

// DeleteProviders deletes the given providers in one batch.
func (s *providerService) DeleteProviders(ids []uint) (int64, error) {
	return deleteByIDs(s.db, &models.Provider{}, ids)
}
