package postgres

import (
	"context"
	"errors"
	"fmt"
	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"transactions-api/internal/domain/models"
	"transactions-api/internal/repository"
)

type Storage struct {
	db *pgxpool.Pool
}

func NewPostgres(ctx context.Context, conn string) (*Storage, error) {
	const op = "storage.Postgres.New"

	db, err := pgxpool.New(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS transactions (
    id         UUID PRIMARY KEY,
    session_id UUID,
    title      TEXT NOT NULL,
    amount     BIGINT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS transactions_session_id_idx ON transactions (session_id);
`

func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.Postgres.Migrate"

	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) SaveTransaction(ctx context.Context, transaction models.Transaction) error {
	const op = "storage.Postgres.SaveTransaction"

	sql, args, err := squirrel.Insert("transactions").
		Columns("id", "session_id", "title", "amount", "created_at").
		Values(transaction.ID, transaction.SessionID, transaction.Title, transaction.Amount, transaction.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) ListTransactions(ctx context.Context, sessionID string) ([]models.Transaction, error) {
	const op = "storage.Postgres.ListTransactions"

	sql, args, err := squirrel.Select("id", "session_id", "title", "amount", "created_at").
		From("transactions").
		Where(squirrel.Eq{"session_id": sessionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.SessionID, &t.Title, &t.Amount, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		transactions = append(transactions, t)
	}

	return transactions, nil
}

func (s *Storage) GetTransactionByID(ctx context.Context, sessionID string, id uuid.UUID) (models.Transaction, error) {
	const op = "storage.Postgres.GetTransactionByID"

	sql, args, err := squirrel.Select("id", "session_id", "title", "amount", "created_at").
		From("transactions").
		Where(squirrel.Eq{"session_id": sessionID, "id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%s: %w", op, err)
	}

	var t models.Transaction
	err = s.db.QueryRow(ctx, sql, args...).Scan(&t.ID, &t.SessionID, &t.Title, &t.Amount, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Transaction{}, fmt.Errorf("%s: %w", op, repository.ErrTransactionNotFound)
		}
		return models.Transaction{}, fmt.Errorf("%s: %w", op, err)
	}

	return t, nil
}

func (s *Storage) SumAmount(ctx context.Context, sessionID string) (*int64, error) {
	const op = "storage.Postgres.SumAmount"

	sql, args, err := squirrel.Select("SUM(amount) AS amount").
		From("transactions").
		Where(squirrel.Eq{"session_id": sessionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var sum *int64
	err = s.db.QueryRow(ctx, sql, args...).Scan(&sum)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sum, nil
}

func (s *Storage) Close() error {
	s.db.Close()
	return nil
}
