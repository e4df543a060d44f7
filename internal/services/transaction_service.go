package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "vault/internal/errors"
	"vault/internal/models"
)

// transactionService handles double-entry transaction persistence.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// check enforces the double-entry rules: both legs carry the same positive
// amount on two different existing accounts.
func (s *transactionService) check(in *TransactionInput) error {
	in.Description = strings.TrimSpace(in.Description)
	in.DebitReference = strings.TrimSpace(in.DebitReference)
	in.CreditReference = strings.TrimSpace(in.CreditReference)
	if in.InstallmentNumber == 0 && in.InstallmentTotal == 0 {
		in.InstallmentNumber, in.InstallmentTotal = 1, 1
	}
	if err := validate(*in); err != nil {
		return err
	}
	in.Timestamp = in.Timestamp.UTC()

	if in.InstallmentNumber < 1 || in.InstallmentTotal < 1 || in.InstallmentNumber > in.InstallmentTotal {
		return apperrors.ErrInstallmentRange
	}
	if !in.DebitAmount.Equal(in.CreditAmount) {
		return apperrors.ErrUnbalanced
	}
	if !in.DebitAmount.IsPositive() {
		return apperrors.ErrNonPositiveAmount
	}
	if in.DebitAccountID == in.CreditAccountID {
		return apperrors.ErrSameAccount
	}

	if err := exists(s.db, &models.Account{}, in.DebitAccountID, apperrors.ErrAccountNotFound); err != nil {
		return err
	}
	return exists(s.db, &models.Account{}, in.CreditAccountID, apperrors.ErrAccountNotFound)
}

func (in TransactionInput) apply(t *models.Transaction) {
	t.Timestamp = in.Timestamp
	t.Description = in.Description
	t.InstallmentNumber = in.InstallmentNumber
	t.InstallmentTotal = in.InstallmentTotal
	t.DebitReference = in.DebitReference
	t.DebitAccountID = in.DebitAccountID
	t.DebitAmount = in.DebitAmount
	t.CreditReference = in.CreditReference
	t.CreditAccountID = in.CreditAccountID
	t.CreditAmount = in.CreditAmount
	t.IsReconciled = in.IsReconciled
}

// CreateTransaction records a new transaction.
func (s *transactionService) CreateTransaction(in TransactionInput) (*models.Transaction, error) {
	if err := s.check(&in); err != nil {
		return nil, err
	}

	txn := &models.Transaction{}
	in.apply(txn)
	if err := s.db.Omit("DebitAccount", "CreditAccount").Create(txn).Error; err != nil {
		return nil, translate(err, apperrors.ErrTransactionNotFound)
	}
	return txn, nil
}

// GetTransactionByID retrieves a transaction with both accounts.
func (s *transactionService) GetTransactionByID(id uint) (*models.Transaction, error) {
	var txn models.Transaction
	if err := s.db.Preload("DebitAccount").Preload("CreditAccount").First(&txn, id).Error; err != nil {
		return nil, translate(err, apperrors.ErrTransactionNotFound)
	}
	return &txn, nil
}

// ListTransactions returns every transaction, newest first.
func (s *transactionService) ListTransactions() ([]models.Transaction, error) {
	var txns []models.Transaction
	err := s.db.Preload("DebitAccount").Preload("CreditAccount").
		Order("timestamp DESC").Order("id DESC").Find(&txns).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrTransactionNotFound)
	}
	return txns, nil
}

// UpdateTransaction overwrites the editable fields of a transaction.
func (s *transactionService) UpdateTransaction(id uint, in TransactionInput) (*models.Transaction, error) {
	if err := s.check(&in); err != nil {
		return nil, err
	}

	var txn models.Transaction
	if err := s.db.First(&txn, id).Error; err != nil {
		return nil, translate(err, apperrors.ErrTransactionNotFound)
	}
	in.apply(&txn)
	if err := s.db.Omit("DebitAccount", "CreditAccount").Save(&txn).Error; err != nil {
		return nil, translate(err, apperrors.ErrTransactionNotFound)
	}
	return &txn, nil
}

// DeleteTransactions deletes the given transactions in one batch.
func (s *transactionService) DeleteTransactions(ids []uint) (int64, error) {
	return deleteByIDs(s.db, &models.Transaction{}, ids)
}
