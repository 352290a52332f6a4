package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"budgetapi/internal/models"
	"budgetapi/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	Type        models.TransactionType `json:"type" binding:"required,transaction_type" example:"expense"`
	Amount      *decimal.Decimal       `json:"amount" binding:"required" swaggertype:"number" example:"250.50"`
	CategoryID  *uint                  `json:"category_id" binding:"required" example:"4"`
	AccountID   *uint                  `json:"account_id" binding:"required" example:"1"`
	Date        *models.Date           `json:"date" swaggertype:"string" example:"2024-05-01"`
	Description string                 `json:"description" example:"Weekly groceries"`
}

// ListTransactions handles the retrieval of transactions
// @Summary     List transactions
// @Description Get transactions newest first with category and account names, optionally filtered by type
// @Tags        transactions
// @Produce     json
// @Param       type query string false "Filter by transaction type (income/expense)"
// @Success     200 {array}  models.TransactionDetail "Transactions"
// @Failure     500 {object} ErrorResponse            "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	filter := services.TransactionFilter{
		Type: queryPtr[models.TransactionType](c, "type"),
	}

	transactions, err := h.transactionService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record income or an expense and move the account balance by the amount
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse      "Invalid input (typed error mode)"
// @Failure     404 {object} ErrorResponse      "Account or category not found (typed error mode)"
// @Failure     500 {object} ErrorResponse      "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	var date models.Date
	if req.Date != nil {
		date = *req.Date
	}

	transaction, err := h.transactionService.CreateTransaction(
		c.Request.Context(),
		*req.AccountID,
		*req.CategoryID,
		req.Type,
		*req.Amount,
		req.Description,
		date,
	)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}
