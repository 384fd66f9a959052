package persistence

import (
	"context"

	"github.com/camilosanchez/virtual-wallet/internal/domain/entity"
)

// AccountRepository defines the account store contract required by the engine
type AccountRepository interface {
	// FindByDocumentAndPhone retrieves the account matching both identifiers
	//
	// Possible errors:
	// - ErrAccountNotFound: if no account matches
	// - ErrDatabaseConnection: if the database cannot be reached
	FindByDocumentAndPhone(ctx context.Context, document, phoneNumber string) (*entity.Account, error)

	// Create persists a new account with a zero balance
	//
	// Possible errors:
	// - ErrDuplicateIdentity: if the document or email is already registered
	// - ErrDatabaseConnection: if the database cannot be reached
	Create(ctx context.Context, account *entity.Account) error

	// ApplyBalanceDelta atomically adds the signed amount (positive credit,
	// negative debit) to the account balance and returns the updated account.
	// The row is locked for the duration of the update. A delta that would
	// leave the balance negative fails with ErrInsufficientFunds; the store
	// never clamps.
	//
	// Possible errors:
	// - ErrAccountNotFound: if the account doesn't exist
	// - ErrInsufficientFunds: if a debit would drive the balance below zero
	// - ErrDatabaseConnection: if the database cannot be reached
	ApplyBalanceDelta(ctx context.Context, accountID uint64, deltaInCents int64) (*entity.Account, error)
}
