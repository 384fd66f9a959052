package persistence

import (
	"context"

	"github.com/camilosanchez/virtual-wallet/internal/domain/entity"
)

// TransactionRepository defines the ledger contract required by the engine
type TransactionRepository interface {
	// Create saves a new ledger entry (a COMPLETED recharge or a PENDING payment)
	//
	// Possible errors:
	// - ErrDuplicateSession: if a payment with the same session id already exists
	// - ErrDatabaseConnection: if the database cannot be reached
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindPendingBySession retrieves the PENDING payment for the given session id,
	// locking the row when called inside a unit of work. A session id whose
	// transaction already reached a terminal status is reported as not found,
	// which is what makes double confirmation observable as an invalid session.
	//
	// Possible errors:
	// - ErrInvalidSession: if no PENDING transaction matches
	// - ErrDatabaseConnection: if the database cannot be reached
	FindPendingBySession(ctx context.Context, sessionID string) (*entity.Transaction, error)

	// TransitionStatus performs the one-shot status write of a payment. The
	// update is guarded on the current status being PENDING so a concurrent
	// transition of the same row cannot apply twice.
	//
	// Possible errors:
	// - ErrTransactionNotPending: if the row already left PENDING
	// - ErrDatabaseConnection: if the database cannot be reached
	TransitionStatus(ctx context.Context, transaction *entity.Transaction, newStatus entity.TransactionStatus) error
}
