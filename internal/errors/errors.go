// Package errors provides custom error types for The Vault.
// All service-layer errors should use AppError so that dialogs can render a
// consistent message and tell validation problems apart from storage failures.
package errors

import stderrors "errors"

// Kind classifies an AppError for the presentation layer.
type Kind int

const (
	// KindValidation is a rejected input; the dialog stays open for correction.
	KindValidation Kind = iota + 1
	// KindNotFound means the record no longer exists.
	KindNotFound
	// KindConflict is a constraint violation such as a duplicate name or a
	// referenced row that cannot be deleted.
	KindConflict
	// KindPersistence is any other storage failure.
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	case KindPersistence:
		return "persistence"
	}
	return "unknown"
}

// AppError represents a structured application error with an error code,
// human-readable message, kind, and optional internal error.
type AppError struct {
	Code     string
	Message  string
	Kind     Kind
	Internal error
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/kind but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:     sentinel.Code,
		Message:  sentinel.Message,
		Kind:     sentinel.Kind,
		Internal: internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:     sentinel.Code,
		Message:  message,
		Kind:     sentinel.Kind,
		Internal: sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", Kind: KindValidation}
	ErrNotFound     = &AppError{Code: "NOT_FOUND", Message: "Record not found", Kind: KindNotFound}
	ErrDuplicate    = &AppError{Code: "DUPLICATE", Message: "A record with the same unique value already exists", Kind: KindConflict}
	ErrInUse        = &AppError{Code: "IN_USE", Message: "The record is referenced by other records", Kind: KindConflict}
	ErrPersistence  = &AppError{Code: "PERSISTENCE_ERROR", Message: "The database rejected the operation", Kind: KindPersistence}
)

// Lookup errors.
var (
	ErrCurrencyNotFound     = &AppError{Code: "CURRENCY_NOT_FOUND", Message: "Currency not found", Kind: KindNotFound}
	ErrProviderNotFound     = &AppError{Code: "PROVIDER_NOT_FOUND", Message: "Provider not found", Kind: KindNotFound}
	ErrAccountTypeNotFound  = &AppError{Code: "ACCOUNT_TYPE_NOT_FOUND", Message: "Account type not found", Kind: KindNotFound}
	ErrAccountGroupNotFound = &AppError{Code: "ACCOUNT_GROUP_NOT_FOUND", Message: "Account group not found", Kind: KindNotFound}
	ErrAccountNotFound      = &AppError{Code: "ACCOUNT_NOT_FOUND", Message: "Account not found", Kind: KindNotFound}
	ErrOverdraftNotFound    = &AppError{Code: "OVERDRAFT_NOT_FOUND", Message: "Account overdraft not found", Kind: KindNotFound}
	ErrTransactionNotFound  = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", Kind: KindNotFound}
)

// Account group errors.
var (
	ErrGroupCycle = &AppError{Code: "GROUP_CYCLE", Message: "An account group cannot be nested under itself or one of its subgroups", Kind: KindValidation}
)

// Account and overdraft errors.
var (
	ErrClosedBeforeOpened = &AppError{Code: "CLOSED_BEFORE_OPENED", Message: "Closed At must not be earlier than Opened At", Kind: KindValidation}
	ErrEndedBeforeStarted = &AppError{Code: "ENDED_BEFORE_STARTED", Message: "Ended At must not be earlier than Started At", Kind: KindValidation}
	ErrNonPositiveLimit   = &AppError{Code: "NON_POSITIVE_LIMIT", Message: "Limit must be greater than 0", Kind: KindValidation}
)

// Transaction errors.
var (
	ErrSameAccount       = &AppError{Code: "SAME_ACCOUNT", Message: "Debit and credit accounts must be different", Kind: KindValidation}
	ErrUnbalanced        = &AppError{Code: "UNBALANCED", Message: "Debit and credit amounts must be equal", Kind: KindValidation}
	ErrNonPositiveAmount = &AppError{Code: "NON_POSITIVE_AMOUNT", Message: "Debit and credit amounts must be greater than zero", Kind: KindValidation}
	ErrInstallmentRange  = &AppError{Code: "INSTALLMENT_RANGE", Message: "Installment number must be less or equal than installment total", Kind: KindValidation}
)

// KindOf returns the kind of err when it is an AppError, and KindPersistence otherwise.
func KindOf(err error) Kind {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindPersistence
}
