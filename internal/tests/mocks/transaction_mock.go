package mocks

import (
	"context"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"transactions-api/internal/domain/models"
)

type TransactionRepositoryMock struct {
	mock.Mock
}

func (m *TransactionRepositoryMock) SaveTransaction(ctx context.Context, transaction models.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *TransactionRepositoryMock) ListTransactions(ctx context.Context, sessionID string) ([]models.Transaction, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *TransactionRepositoryMock) GetTransactionByID(ctx context.Context, sessionID string, id uuid.UUID) (models.Transaction, error) {
	args := m.Called(ctx, sessionID, id)
	return args.Get(0).(models.Transaction), args.Error(1)
}

func (m *TransactionRepositoryMock) SumAmount(ctx context.Context, sessionID string) (*int64, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(*int64), args.Error(1)
}
