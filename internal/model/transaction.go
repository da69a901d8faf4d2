// File: internal/model/transaction.go
package model

import "time"

// TransactionDateLayout is the wire format for transaction_date,
// both on input validation and on serialized responses.
const TransactionDateLayout = "2006-01-02 15:04:05"

// Transaction statuses accepted by the API.
const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
	StatusFailed    = "failed"
)

type Transaction struct {
	ID              int       `db:"id" json:"id"`
	UserID          int       `db:"user_id" json:"user_id"`
	TransactionType string    `db:"transaction_type" json:"transaction_type"`
	Amount          float64   `db:"amount" json:"amount"`
	Status          string    `db:"status" json:"status"`
	PaymentMethod   string    `db:"payment_method" json:"payment_method"`
	TransactionDate time.Time `db:"transaction_date" json:"transaction_date"`
	Description     *string   `db:"description" json:"description"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
