package services

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"log/slog"
	"time"
	"transactions-api/internal/domain/dto"
	"transactions-api/internal/domain/models"
	"transactions-api/internal/middlewares"
	"transactions-api/internal/repository"
)

type TransactionService struct {
	log                   *slog.Logger
	transactionRepository TransactionRepository
}

type TransactionRepository interface {
	SaveTransaction(ctx context.Context, transaction models.Transaction) error
	ListTransactions(ctx context.Context, sessionID string) ([]models.Transaction, error)
	GetTransactionByID(ctx context.Context, sessionID string, id uuid.UUID) (models.Transaction, error)
	SumAmount(ctx context.Context, sessionID string) (*int64, error)
}

func NewTransactionService(log *slog.Logger, transactionRepository TransactionRepository) *TransactionService {
	return &TransactionService{
		log:                   log,
		transactionRepository: transactionRepository,
	}
}

// CreateTransaction stores a new transaction for the session. Debits are
// persisted with a negated amount so the type never needs its own column.
func (s *TransactionService) CreateTransaction(ctx context.Context, sessionID string, input dto.CreateTransactionRequest) error {
	const op = "services.TransactionService.CreateTransaction"

	log := s.log.With(
		slog.String("op", op),
		slog.String("session_id", sessionID),
		slog.String("type", input.Type),
	)

	if err := middlewares.CheckTransactionInput(input.Title, input.Amount, input.Type); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	amount := input.Amount
	if input.Type == models.TypeDebit {
		amount = -amount
	}

	transaction := models.Transaction{
		ID:        uuid.New(),
		SessionID: sessionID,
		Title:     input.Title,
		Amount:    amount,
		CreatedAt: time.Now(),
	}

	log.Info("creating transaction", slog.String("transaction_id", transaction.ID.String()))

	if err := s.transactionRepository.SaveTransaction(ctx, transaction); err != nil {
		log.Error("failed to create transaction", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("transaction created")

	return nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, sessionID string) ([]models.Transaction, error) {
	const op = "services.TransactionService.ListTransactions"

	log := s.log.With(
		slog.String("op", op),
		slog.String("session_id", sessionID),
	)

	log.Info("listing transactions")

	transactions, err := s.transactionRepository.ListTransactions(ctx, sessionID)
	if err != nil {
		log.Error("failed to list transactions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("listed transactions", slog.Int("count", len(transactions)))

	return transactions, nil
}

// GetTransaction returns nil without an error when no row matches the
// session and id; a miss is an ordinary outcome, not a failure.
func (s *TransactionService) GetTransaction(ctx context.Context, sessionID string, id uuid.UUID) (*models.Transaction, error) {
	const op = "services.TransactionService.GetTransaction"

	log := s.log.With(
		slog.String("op", op),
		slog.String("session_id", sessionID),
		slog.String("transaction_id", id.String()),
	)

	log.Info("getting transaction")

	transaction, err := s.transactionRepository.GetTransactionByID(ctx, sessionID, id)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			log.Info("transaction not found")
			return nil, nil
		}

		log.Error("failed to get transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &transaction, nil
}

// GetSummary returns the signed sum of the session's amounts; the pointer is
// nil when the session has no transactions.
func (s *TransactionService) GetSummary(ctx context.Context, sessionID string) (*int64, error) {
	const op = "services.TransactionService.GetSummary"

	log := s.log.With(
		slog.String("op", op),
		slog.String("session_id", sessionID),
	)

	log.Info("computing summary")

	sum, err := s.transactionRepository.SumAmount(ctx, sessionID)
	if err != nil {
		log.Error("failed to compute summary", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sum, nil
}
