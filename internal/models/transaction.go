package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
	TransactionTypeSaving  = "saving"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrInvalidDate            = errors.New("transaction date is required")
	ErrCategoryRequired       = errors.New("transaction category is required")
)

// Transaction represents a single dated entry in the grid. Amount is an
// unsigned magnitude; its sign in balance arithmetic is implied by Type.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        string          `gorm:"type:varchar(20);not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Category    string          `gorm:"type:varchar(100);not null;index" json:"category"`
	Subcategory string          `gorm:"type:varchar(100)" json:"subcategory,omitempty"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.Date.IsZero() {
		return ErrInvalidDate
	}

	if t.Category == "" {
		return ErrCategoryRequired
	}

	return nil
}

// Day returns the 1-indexed day of month the transaction falls on.
func (t *Transaction) Day() int {
	return t.Date.Day()
}

// SignedAmount returns the amount with the sign implied by the transaction
// type: income and saving are positive, expense is negative.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Abs().Neg()
	}
	return t.Amount.Abs()
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeSaving:
		return true
	default:
		return false
	}
}

// AllTransactionTypes returns all valid transaction type constants
func AllTransactionTypes() []string {
	return []string{
		TransactionTypeIncome,
		TransactionTypeExpense,
		TransactionTypeSaving,
	}
}
