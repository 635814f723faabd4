package handlers

import (
	"context"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"log/slog"
	"net/http"
	"transactions-api/internal/domain/dto"
	"transactions-api/internal/domain/models"
	"transactions-api/internal/middlewares"
)

type TransactionService interface {
	CreateTransaction(ctx context.Context, sessionID string, input dto.CreateTransactionRequest) error
	ListTransactions(ctx context.Context, sessionID string) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, sessionID string, id uuid.UUID) (*models.Transaction, error)
	GetSummary(ctx context.Context, sessionID string) (*int64, error)
}

type TransactionHandler struct {
	log                *slog.Logger
	transactionService TransactionService
}

func NewTransactionHandler(log *slog.Logger, transactionService TransactionService) *TransactionHandler {
	return &TransactionHandler{
		log:                log,
		transactionService: transactionService,
	}
}

// CreateTransaction
// @Summary Record a credit or debit transaction
// @Description Mints a sessionId cookie when the request carries none, so later requests from the same client share a session.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction payload"
// @Success 201 {string} string "Created"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var input dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID, err := c.Cookie(middlewares.SessionCookieName)
	if err != nil || sessionID == "" {
		sessionID = uuid.NewString()
		c.SetCookie(middlewares.SessionCookieName, sessionID, middlewares.SessionCookieMaxAge, "/", "", false, false)
	}

	if err := h.transactionService.CreateTransaction(c.Request.Context(), sessionID, input); err != nil {
		if errors.Is(err, middlewares.ErrEmptyTitle) ||
			errors.Is(err, middlewares.ErrNonPositiveAmount) ||
			errors.Is(err, middlewares.ErrUnknownType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusCreated)
}

// ListTransactions
// @Summary List the session's transactions
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.ListTransactionsResponse "Transactions of the session"
// @Failure 401 {object} dto.ErrorResponse "Missing session cookie"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	sessionID := c.GetString(middlewares.SessionContextKey)
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	transactions, err := h.transactionService.ListTransactions(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if transactions == nil {
		transactions = []models.Transaction{}
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: transactions})
}

// GetTransaction
// @Summary Get one transaction by id
// @Description A miss yields {"transaction": null} with status 200, never 404.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction id (UUID)"
// @Success 200 {object} dto.GetTransactionResponse "Transaction or null"
// @Failure 400 {object} dto.ErrorResponse "Malformed id"
// @Failure 401 {object} dto.ErrorResponse "Missing session cookie"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	sessionID := c.GetString(middlewares.SessionContextKey)
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return
	}

	transaction, err := h.transactionService.GetTransaction(c.Request.Context(), sessionID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.GetTransactionResponse{Transaction: transaction})
}

// GetSummary
// @Summary Signed sum of the session's amounts
// @Description The amount is null, not zero, when the session has no transactions.
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.SummaryResponse "Summary of the session"
// @Failure 401 {object} dto.ErrorResponse "Missing session cookie"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /transactions/summary [get]
func (h *TransactionHandler) GetSummary(c *gin.Context) {
	sessionID := c.GetString(middlewares.SessionContextKey)
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sum, err := h.transactionService.GetSummary(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{Summary: dto.Summary{Amount: sum}})
}
