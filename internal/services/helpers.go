package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "vault/internal/errors"
	"vault/internal/validator"
)

// translate maps a gorm error to an AppError. notFound is returned for
// gorm.ErrRecordNotFound.
func translate(err error, notFound *apperrors.AppError) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey), strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return apperrors.Wrap(apperrors.ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated), strings.Contains(err.Error(), "FOREIGN KEY constraint failed"):
		return apperrors.Wrap(apperrors.ErrInUse, err)
	}
	return apperrors.Wrap(apperrors.ErrPersistence, err)
}

// validate runs the struct validator and turns a failure into ErrInvalidInput.
func validate(in interface{}) error {
	if err := validator.Struct(in); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return nil
}

// deleteByIDs removes every row of model whose id is in ids, in one
// statement inside one transaction: either all rows go or none do.
func deleteByIDs(db *gorm.DB, model interface{}, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var deleted int64
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id IN ?", ids).Delete(model)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, translate(err, apperrors.ErrNotFound)
	}
	return deleted, nil
}

// exists checks that a row of model with the given id is present.
func exists(db *gorm.DB, model interface{}, id uint, notFound *apperrors.AppError) error {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return translate(err, notFound)
	}
	if count == 0 {
		return notFound
	}
	return nil
}
