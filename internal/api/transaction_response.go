package api

import (
	"time"

	"easybill/internal/model"
)

// swagger:model api.TransactionResponse
type TransactionResponse struct {
	ID              int       `json:"id" example:"1"`
	TransactionType string    `json:"transaction_type" example:"Phone Bill"`
	Amount          float64   `json:"amount" example:"40.56"`
	Status          string    `json:"status" example:"completed"`
	PaymentMethod   string    `json:"payment_method" example:"Bank Transfer"`
	TransactionDate string    `json:"transaction_date" example:"2024-05-20 05:20:30"`
	Description     *string   `json:"description" example:"Paid phone bill for the month of May"`
	UserID          int       `json:"user_id" example:"1"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewTransactionResponse(t *model.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		TransactionType: t.TransactionType,
		Amount:          t.Amount,
		Status:          t.Status,
		PaymentMethod:   t.PaymentMethod,
		TransactionDate: t.TransactionDate.Format(model.TransactionDateLayout),
		Description:     t.Description,
		UserID:          t.UserID,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// swagger:model api.TransactionEnvelope
type TransactionEnvelope struct {
	Message     string              `json:"message" example:"Transaction sucessful!"`
	Transaction TransactionResponse `json:"transaction"`
}

// swagger:model api.TransactionListEnvelope
type TransactionListEnvelope struct {
	Message      string                `json:"message" example:"Request Successful"`
	Transactions []TransactionResponse `json:"transactions"`
}
