package error

import (
	"errors"
	"fmt"
)

// Wallet error codes surfaced to the protocol adapter.
// These two-digit strings are a public contract and must stay stable.
const (
	CodeSuccess           = "00"
	CodeMissingParameters = "01"
	CodeValidation        = "02"
	CodeNotFound          = "03"
	CodeBusinessRule      = "04"
	CodeInvalidToken      = "05"
	CodeInternal          = "99"
)

// Base error types
var (
	// ErrMissingParameter is returned when a required operation parameter is absent
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrInvalidAmount is returned when the amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when the amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrNonPositiveAmount is returned when the amount is zero or below
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")

	// ErrAmountOverflow is returned when the amount is too large and would cause overflow
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidDocument is returned when the account document identifier is empty
	ErrInvalidDocument = errors.New("document cannot be empty")

	// ErrNegativeBalance is returned when an operation would drive a balance below zero.
	// The store treats this as a consistency fault, never a silent clamp.
	ErrNegativeBalance = errors.New("balance cannot be negative")

	// ErrDuplicateIdentity is returned when the document or email is already registered
	ErrDuplicateIdentity = errors.New("document or email already registered")

	// ErrAccountNotFound is returned when no account matches the document and phone number
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds is returned when the balance cannot cover a payment
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidSession is returned when no pending payment matches the session id
	ErrInvalidSession = errors.New("invalid session")

	// ErrTokenExpired is returned when a confirmation arrives after the token expiry
	ErrTokenExpired = errors.New("token expired")

	// ErrInvalidToken is returned when the confirmation token does not match
	ErrInvalidToken = errors.New("invalid token")

	// ErrTransactionNotPending is returned when a status transition is attempted
	// on a transaction that already left the PENDING state
	ErrTransactionNotPending = errors.New("transaction is not pending")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicateSession is returned when a session id collides in the ledger
	ErrDuplicateSession = errors.New("session id already exists")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnknownOperation is returned when the dispatched operation name is not recognised
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// WalletCode returns the two-digit wallet error code for a known error
func WalletCode(err error) string {
	switch {
	case err == nil:
		return CodeSuccess
	case errors.Is(err, ErrMissingParameter):
		return CodeMissingParameters
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrNonPositiveAmount),
		errors.Is(err, ErrAmountOverflow),
		errors.Is(err, ErrInvalidDocument),
		errors.Is(err, ErrDuplicateIdentity),
		errors.Is(err, ErrUnknownOperation),
		errors.Is(err, ErrInvalidRequest):
		return CodeValidation
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrInvalidSession):
		return CodeNotFound
	case errors.Is(err, ErrInsufficientFunds), errors.Is(err, ErrTokenExpired):
		return CodeBusinessRule
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	default:
		return CodeInternal
	}
}

// BalanceError represents an error raised while mutating an account balance
type BalanceError struct {
	Document       string
	Amount         string
	CurrentBalance string
	Err            error
}

// Error implements the error interface for BalanceError
func (e *BalanceError) Error() string {
	return fmt.Sprintf("balance operation failed for account %s (current balance: %s, amount: %s): %v",
		e.Document, e.CurrentBalance, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *BalanceError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *BalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "balance_error",
		"document":        e.Document,
		"amount":          e.Amount,
		"current_balance": e.CurrentBalance,
		"error":           e.Err.Error(),
		"error_code":      WalletCode(e.Err),
	}
}

// InsufficientFundsError provides detailed error information for insufficient funds
type InsufficientFundsError struct {
	Document    string
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for account %s: required %s, available %s",
		e.Document, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_funds",
		"document":        e.Document,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeBusinessRule,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(document, amount, currentBalance string) error {
	return &InsufficientFundsError{
		Document:    document,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// SessionError represents an error tied to a payment confirmation session
type SessionError struct {
	SessionID string
	Reason    string
	Err       error
}

// Error implements the error interface for SessionError
func (e *SessionError) Error() string {
	return fmt.Sprintf("session error for %s: %s - %v", e.SessionID, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *SessionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *SessionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "session_error",
		"session_id": e.SessionID,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": WalletCode(e.Err),
	}
}

// NewSessionError creates a detailed session error
func NewSessionError(sessionID, reason string, err error) error {
	return &SessionError{
		SessionID: sessionID,
		Reason:    reason,
		Err:       err,
	}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsAccountNotFoundError checks if the error is an account not found error
func IsAccountNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound)
}

// IsInvalidSessionError checks if the error is an invalid session error
func IsInvalidSessionError(err error) bool {
	return errors.Is(err, ErrInvalidSession)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrInvalidSession) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsDuplicateIdentityError checks if the error is a duplicate identity error
func IsDuplicateIdentityError(err error) bool {
	return errors.Is(err, ErrDuplicateIdentity)
}
