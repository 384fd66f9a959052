package entity

import (
	"fmt"
	"time"

	errs "github.com/camilosanchez/virtual-wallet/internal/domain/error"
	coreport "github.com/camilosanchez/virtual-wallet/internal/domain/port/core"
)

// TransactionType represents the kind of ledger entry
type TransactionType string

// Transaction types
const (
	TypeRecharge TransactionType = "RECHARGE"
	TypePay      TransactionType = "PAY"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants. COMPLETED, FAILED and CANCELLED are terminal:
// a transaction is immutable once it leaves PENDING.
const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusFailed    TransactionStatus = "FAILED"
	StatusCancelled TransactionStatus = "CANCELLED"
)

// TokenValidity is how long a payment token remains confirmable
const TokenValidity = 5 * time.Minute

// Transaction represents a ledger entry for a balance-affecting or balance-pending event
type Transaction struct {
	ID             uint64
	AccountID      uint64
	Type           TransactionType
	Amount         string // Amount as a string with 2 decimal places
	AmountInCents  int64
	SessionID      string // Unique confirmation handle, PAY only
	Token          string // 6-digit confirmation token, PAY only
	TokenExpiresAt *time.Time
	Status         TransactionStatus
	CreatedAt      time.Time
	ProcessedAt    *time.Time
}

// NewRecharge creates a top-up ledger entry. Recharges record an already-applied
// credit, so they are born COMPLETED with no token or expiry.
func NewRecharge(accountID uint64, amountInCents int64, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if amountInCents <= 0 {
		return nil, errs.ErrNonPositiveAmount
	}

	now := timeProvider.Now()
	return &Transaction{
		AccountID:     accountID,
		Type:          TypeRecharge,
		Amount:        CentsToString(amountInCents),
		AmountInCents: amountInCents,
		Status:        StatusCompleted,
		CreatedAt:     now,
		ProcessedAt:   &now,
	}, nil
}

// NewPendingPayment creates a two-phase payment entry awaiting token confirmation
func NewPendingPayment(
	accountID uint64,
	amountInCents int64,
	sessionID string,
	token string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if amountInCents <= 0 {
		return nil, errs.ErrNonPositiveAmount
	}
	if sessionID == "" {
		return nil, fmt.Errorf("%w: empty session id", errs.ErrInvalidRequest)
	}
	if len(token) != 6 {
		return nil, fmt.Errorf("%w: token must be 6 digits", errs.ErrInvalidRequest)
	}

	now := timeProvider.Now()
	expiresAt := now.Add(TokenValidity)
	return &Transaction{
		AccountID:      accountID,
		Type:           TypePay,
		Amount:         CentsToString(amountInCents),
		AmountInCents:  amountInCents,
		SessionID:      sessionID,
		Token:          token,
		TokenExpiresAt: &expiresAt,
		Status:         StatusPending,
		CreatedAt:      now,
	}, nil
}

// IsPending reports whether the transaction is still awaiting confirmation
func (t *Transaction) IsPending() bool {
	return t.Status == StatusPending
}

// IsExpired reports whether the token validity window has passed.
// A confirmation attempted at or after the expiry instant always fails.
func (t *Transaction) IsExpired(now time.Time) bool {
	if t.TokenExpiresAt == nil {
		return false
	}
	return !now.Before(*t.TokenExpiresAt)
}

// TokenMatches compares the stored token against the presented one
func (t *Transaction) TokenMatches(token string) bool {
	return t.Token != "" && t.Token == token
}

// MarkCompleted transitions a PENDING transaction to COMPLETED
func (t *Transaction) MarkCompleted(timeProvider coreport.TimeProvider) error {
	return t.transition(StatusCompleted, timeProvider)
}

// MarkFailed transitions a PENDING transaction to FAILED
func (t *Transaction) MarkFailed(timeProvider coreport.TimeProvider) error {
	return t.transition(StatusFailed, timeProvider)
}

// MarkCancelled transitions a PENDING transaction to CANCELLED
func (t *Transaction) MarkCancelled(timeProvider coreport.TimeProvider) error {
	return t.transition(StatusCancelled, timeProvider)
}

// transition performs the single allowed status change of a transaction's lifetime
func (t *Transaction) transition(target TransactionStatus, timeProvider coreport.TimeProvider) error {
	if t.Status != StatusPending {
		return fmt.Errorf("%w: cannot move from %s to %s", errs.ErrTransactionNotPending, t.Status, target)
	}

	now := timeProvider.Now()
	t.Status = target
	t.ProcessedAt = &now
	return nil
}

// IsValidStatus validates if the status is one of the allowed values
func IsValidStatus(status string) bool {
	switch TransactionStatus(status) {
	case StatusPending, StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// IsValidType validates if the transaction type is allowed
func IsValidType(transactionType string) bool {
	return transactionType == string(TypeRecharge) || transactionType == string(TypePay)
}
