package dto

import "transactions-api/internal/domain/models"

// swagger:model
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

// swagger:model
type GetTransactionResponse struct {
	Transaction *models.Transaction `json:"transaction"`
}

// swagger:model
type SummaryResponse struct {
	Summary Summary `json:"summary"`
}

// Summary carries the signed sum of a session's amounts; Amount is
// null when the session has no transactions.
type Summary struct {
	Amount *int64 `json:"amount" example:"3000"`
}
