package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"transactions-api/internal/domain/models"
	"transactions-api/internal/repository"
)

type Storage struct {
	db *sql.DB
}

func NewSQLite(path string) (*Storage, error) {
	const op = "storage.SQLite.New"

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS transactions (
    id         TEXT PRIMARY KEY,
    session_id TEXT,
    title      TEXT NOT NULL,
    amount     INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS transactions_session_id_idx ON transactions (session_id);
`

func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.SQLite.Migrate"

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) SaveTransaction(ctx context.Context, transaction models.Transaction) error {
	const op = "storage.SQLite.SaveTransaction"

	query, args, err := squirrel.Insert("transactions").
		Columns("id", "session_id", "title", "amount", "created_at").
		Values(transaction.ID, transaction.SessionID, transaction.Title, transaction.Amount, transaction.CreatedAt).
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) ListTransactions(ctx context.Context, sessionID string) ([]models.Transaction, error) {
	const op = "storage.SQLite.ListTransactions"

	query, args, err := squirrel.Select("id", "session_id", "title", "amount", "created_at").
		From("transactions").
		Where(squirrel.Eq{"session_id": sessionID}).
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
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
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return transactions, nil
}

func (s *Storage) GetTransactionByID(ctx context.Context, sessionID string, id uuid.UUID) (models.Transaction, error) {
	const op = "storage.SQLite.GetTransactionByID"

	query, args, err := squirrel.Select("id", "session_id", "title", "amount", "created_at").
		From("transactions").
		Where(squirrel.Eq{"session_id": sessionID, "id": id}).
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%s: %w", op, err)
	}

	var t models.Transaction
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.SessionID, &t.Title, &t.Amount, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Transaction{}, fmt.Errorf("%s: %w", op, repository.ErrTransactionNotFound)
		}
		return models.Transaction{}, fmt.Errorf("%s: %w", op, err)
	}

	return t, nil
}

func (s *Storage) SumAmount(ctx context.Context, sessionID string) (*int64, error) {
	const op = "storage.SQLite.SumAmount"

	query, args, err := squirrel.Select("SUM(amount) AS amount").
		From("transactions").
		Where(squirrel.Eq{"session_id": sessionID}).
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var sum sql.NullInt64
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&sum)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !sum.Valid {
		return nil, nil
	}

	return &sum.Int64, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
