package services

import (
	"strings"

	"gorm.io/gorm"

	"vault/internal/coa"
	apperrors "vault/internal/errors"
	"vault/internal/models"
)

// accountGroupService handles account group persistence and the chart of
// accounts built from groups and accounts.
type accountGroupService struct {
	db *gorm.DB
}

// NewAccountGroupService creates a new AccountGroupServicer.
func NewAccountGroupService(db *gorm.DB) AccountGroupServicer {
	return &accountGroupService{db: db}
}

// CreateAccountGroup creates a new group. ParentID, when set, must exist.
func (s *accountGroupService) CreateAccountGroup(in AccountGroupInput) (*models.AccountGroup, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validate(in); err != nil {
		return nil, err
	}
	if in.ParentID != nil {
		if err := exists(s.db, &models.AccountGroup{}, *in.ParentID, apperrors.ErrAccountGroupNotFound); err != nil {
			return nil, err
		}
	}

	group := &models.AccountGroup{
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		ParentID:    in.ParentID,
	}
	if err := s.db.Create(group).Error; err != nil {
		return nil, translate(err, apperrors.ErrAccountGroupNotFound)
	}
	return group, nil
}

// GetAccountGroupByID retrieves a group by ID.
func (s *accountGroupService) GetAccountGroupByID(id uint) (*models.AccountGroup, error) {
	var group models.AccountGroup
	if err := s.db.First(&group, id).Error; err != nil {
		return nil, translate(err, apperrors.ErrAccountGroupNotFound)
	}
	return &group, nil
}

// UpdateAccountGroup overwrites the editable fields of a group. A parent that
// is the group itself or one of its descendants is rejected.
func (s *accountGroupService) UpdateAccountGroup(id uint, in AccountGroupInput) (*models.AccountGroup, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validate(in); err != nil {
		return nil, err
	}

	group, err := s.GetAccountGroupByID(id)
	if err != nil {
		return nil, err
	}

	if in.ParentID != nil {
		forest, err := s.Chart()
		if err != nil {
			return nil, err
		}
		if _, ok := forest.Group(*in.ParentID); !ok {
			return nil, apperrors.ErrAccountGroupNotFound
		}
		if *in.ParentID == id {
			return nil, apperrors.ErrGroupCycle
		}
		for _, d := range forest.Descendants(id) {
			if d == *in.ParentID {
				return nil, apperrors.ErrGroupCycle
			}
		}
	}

	group.Name = in.Name
	group.Description = strings.TrimSpace(in.Description)
	group.ParentID = in.ParentID
	if err := s.db.Save(group).Error; err != nil {
		return nil, translate(err, apperrors.ErrAccountGroupNotFound)
	}
	return group, nil
}

// DeleteAccountGroups deletes the given groups in one batch. Groups that still
// hold accounts or subgroups outside the batch make the whole batch fail.
func (s *accountGroupService) DeleteAccountGroups(ids []uint) (int64, error) {
	return deleteByIDs(s.db, &models.AccountGroup{}, ids)
}

// Chart loads every group and account into a forest.
func (s *accountGroupService) Chart() (*coa.Forest, error) {
	var groups []models.AccountGroup
	if err := s.db.Order("id").Find(&groups).Error; err != nil {
		return nil, translate(err, apperrors.ErrAccountGroupNotFound)
	}
	var accounts []models.Account
	if err := s.db.Preload("Currency").Preload("AccountType").Order("id").Find(&accounts).Error; err != nil {
		return nil, translate(err, apperrors.ErrAccountNotFound)
	}
	return coa.NewForest(groups, accounts), nil
}

// GroupChoices lists every group labeled by alias.
func (s *accountGroupService) GroupChoices() ([]Choice, error) {
	forest, err := s.Chart()
	if err != nil {
		return nil, err
	}
	return labeledChoices(forest.GroupAliases()), nil
}

// ParentChoices lists the groups that may become the parent of groupID: every
// group except groupID and its descendants. A zero groupID lists all groups.
func (s *accountGroupService) ParentChoices(groupID uint) ([]Choice, error) {
	forest, err := s.Chart()
	if err != nil {
		return nil, err
	}
	return labeledChoices(forest.ParentCandidates(groupID)), nil
}

// DeleteChartItems deletes accounts and groups selected together in the chart
// of accounts, accounts first, in a single transaction.
func (s *accountGroupService) DeleteChartItems(accountIDs, groupIDs []uint) (int64, int64, error) {
	var accounts, groups int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(accountIDs) > 0 {
			res := tx.Where("id IN ?", accountIDs).Delete(&models.Account{})
			if res.Error != nil {
				return res.Error
			}
			accounts = res.RowsAffected
		}
		if len(groupIDs) > 0 {
			res := tx.Where("id IN ?", groupIDs).Delete(&models.AccountGroup{})
			if res.Error != nil {
				return res.Error
			}
			groups = res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, 0, translate(err, apperrors.ErrAccountGroupNotFound)
	}
	return accounts, groups, nil
}

func labeledChoices(labeled []coa.Labeled) []Choice {
	choices := make([]Choice, 0, len(labeled))
	for _, l := range labeled {
		choices = append(choices, Choice{ID: l.ID, Label: l.Alias})
	}
	return choices
}
