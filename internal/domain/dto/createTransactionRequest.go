package dto

// swagger:model
type CreateTransactionRequest struct {
	Title  string `json:"title" binding:"required" example:"New laptop"`
	Amount int64  `json:"amount" binding:"required,gt=0" example:"5000"`
	Type   string `json:"type" binding:"required,oneof=credit debit" example:"credit"`
}
