package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"transactions-api/internal/domain/models"
	"transactions-api/internal/repository"
	"transactions-api/internal/repository/sqlite"
)

func newTestStorage(t *testing.T) *sqlite.Storage {
	t.Helper()

	storage, err := sqlite.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	require.NoError(t, storage.Migrate(context.Background()))
	return storage
}

func newTransaction(sessionID string, amount int64) models.Transaction {
	return models.Transaction{
		ID:        uuid.New(),
		SessionID: sessionID,
		Title:     "Test transaction",
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
}

func TestStorage_SaveAndGetTransaction(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	sessionID := uuid.NewString()
	saved := newTransaction(sessionID, 5000)
	require.NoError(t, storage.SaveTransaction(ctx, saved))

	got, err := storage.GetTransactionByID(ctx, sessionID, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, saved.Title, got.Title)
	assert.Equal(t, int64(5000), got.Amount)
}

func TestStorage_GetTransaction_MissReturnsSentinel(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	_, err := storage.GetTransactionByID(ctx, uuid.NewString(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrTransactionNotFound)
}

func TestStorage_GetTransaction_ScopedToSession(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	saved := newTransaction(uuid.NewString(), 100)
	require.NoError(t, storage.SaveTransaction(ctx, saved))

	_, err := storage.GetTransactionByID(ctx, uuid.NewString(), saved.ID)
	assert.ErrorIs(t, err, repository.ErrTransactionNotFound)
}

func TestStorage_ListTransactions_FiltersBySession(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	mine := uuid.NewString()
	other := uuid.NewString()

	require.NoError(t, storage.SaveTransaction(ctx, newTransaction(mine, 100)))
	require.NoError(t, storage.SaveTransaction(ctx, newTransaction(mine, 200)))
	require.NoError(t, storage.SaveTransaction(ctx, newTransaction(other, 300)))

	transactions, err := storage.ListTransactions(ctx, mine)
	require.NoError(t, err)
	assert.Len(t, transactions, 2)

	transactions, err = storage.ListTransactions(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestStorage_SumAmount(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	sessionID := uuid.NewString()
	require.NoError(t, storage.SaveTransaction(ctx, newTransaction(sessionID, 5000)))
	require.NoError(t, storage.SaveTransaction(ctx, newTransaction(sessionID, -2000)))

	sum, err := storage.SumAmount(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, sum)
	assert.Equal(t, int64(3000), *sum)
}

func TestStorage_SumAmount_NullWithoutRows(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	sum, err := storage.SumAmount(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, sum)
}
