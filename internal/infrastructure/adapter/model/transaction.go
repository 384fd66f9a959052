package model

import (
	"time"
)

// Transaction represents the database model for ledger entries
type Transaction struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement"`
	AccountID      uint64 `gorm:"not null;index"`
	Type           string `gorm:"not null;size:50"`
	Amount         string `gorm:"not null;size:50"`
	AmountInCents  int64  `gorm:"not null"`
	SessionID      string `gorm:"uniqueIndex:idx_transactions_session_id,where:session_id <> '';size:255"`
	Token          string `gorm:"size:10"`
	TokenExpiresAt *time.Time
	Status         string    `gorm:"not null;index;size:50"`
	CreatedAt      time.Time `gorm:"not null"`
	ProcessedAt    *time.Time

	// Define relationships
	Account Account `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
