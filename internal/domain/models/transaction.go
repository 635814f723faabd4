package models

import (
	"github.com/google/uuid"
	"time"
)

const (
	TypeCredit = "credit"
	TypeDebit  = "debit"
)

type Transaction struct {
	ID        uuid.UUID `json:"id" db:"id"`
	SessionID string    `json:"session_id" db:"session_id"`
	Title     string    `json:"title" db:"title"`
	Amount    int64     `json:"amount" db:"amount"` // stored in cents, negative for debits
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
