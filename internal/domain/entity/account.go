package entity

import (
	"time"

	errs "github.com/camilosanchez/virtual-wallet/internal/domain/error"
	coreport "github.com/camilosanchez/virtual-wallet/internal/domain/port/core"
)

// Account represents a wallet holder: identity plus balance
type Account struct {
	ID          uint64
	Document    string // Unique national document identifier
	Names       string
	Email       string // Unique
	PhoneNumber string
	balance     int64 // Balance in cents to avoid floating point precision issues (private)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewAccount creates a new account with a zero balance
func NewAccount(document, names, email, phoneNumber string, timeProvider coreport.TimeProvider) (*Account, error) {
	if document == "" {
		return nil, errs.ErrInvalidDocument
	}

	now := timeProvider.Now()
	return &Account{
		Document:    document,
		Names:       names,
		Email:       email,
		PhoneNumber: phoneNumber,
		balance:     0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Balance returns the current balance in cents (for internal use)
func (a *Account) Balance() int64 {
	return a.balance
}

// GetBalance returns the balance as a string with 2 decimal places
func (a *Account) GetBalance() string {
	return CentsToString(a.balance)
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (a *Account) SetBalance(balanceInCents int64, timeProvider coreport.TimeProvider) {
	a.balance = balanceInCents
	a.UpdatedAt = timeProvider.Now()
}

// CanDebit checks if the account has enough balance for a debit
func (a *Account) CanDebit(amountInCents int64) bool {
	return a.balance >= amountInCents
}

// Credit adds the amount to the balance
func (a *Account) Credit(amountInCents int64, timeProvider coreport.TimeProvider) {
	a.balance += amountInCents
	a.UpdatedAt = timeProvider.Now()
}

// Debit subtracts the amount from the balance if sufficient funds exist.
// Returns ErrInsufficientFunds otherwise; the balance is never allowed below zero.
func (a *Account) Debit(amountInCents int64, timeProvider coreport.TimeProvider) error {
	if a.balance < amountInCents {
		return errs.ErrInsufficientFunds
	}

	a.balance -= amountInCents
	a.UpdatedAt = timeProvider.Now()
	return nil
}
