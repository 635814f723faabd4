package middlewares

import (
	"strings"
	"transactions-api/internal/domain/models"
)

func CheckTransactionInput(title string, amount int64, transactionType string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}

	if amount <= 0 {
		return ErrNonPositiveAmount
	}

	if transactionType != models.TypeCredit && transactionType != models.TypeDebit {
		return ErrUnknownType
	}

	return nil
}
