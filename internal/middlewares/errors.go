package middlewares

import "errors"

var (
	ErrEmptyTitle        = errors.New("title must not be empty")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrUnknownType       = errors.New("type must be either credit or debit")
	ErrMissingSessionID  = errors.New("sessionId cookie is missing")
)
