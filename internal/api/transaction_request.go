package api

// TransactionRequest is shared by create and update: updates carry full
// replace semantics, so the field set and rules are identical. Amount is a
// pointer so that an explicit 0 passes the required rule.
// swagger:model api.TransactionRequest
type TransactionRequest struct {
	TransactionType string   `json:"transaction_type" form:"transaction_type" validate:"required,max=255" example:"Phone Bill"`
	Amount          *float64 `json:"amount" form:"amount" validate:"required,gte=0,lte=1000000" example:"40.56"`
	Status          string   `json:"status" form:"status" validate:"required,oneof=completed pending failed" example:"completed"`
	PaymentMethod   string   `json:"payment_method" form:"payment_method" validate:"required,max=255" example:"Bank Transfer"`
	TransactionDate string   `json:"transaction_date" form:"transaction_date" validate:"required,txdate" example:"2024-05-20 05:20:30"`
	Description     *string  `json:"description" form:"description" validate:"omitempty,max=1000" example:"Paid phone bill for the month of May"`
}
