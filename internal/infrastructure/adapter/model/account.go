package model

import (
	"time"
)

// Account represents the database model for wallet accounts
type Account struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	Document       string    `gorm:"uniqueIndex;not null;size:50"`
	Names          string    `gorm:"not null;size:255"`
	Email          string    `gorm:"uniqueIndex;not null;size:255"`
	PhoneNumber    string    `gorm:"not null;index;size:50"`
	BalanceInCents int64     `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
