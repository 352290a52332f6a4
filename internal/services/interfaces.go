package services

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"budgetapi/internal/models"
)

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)
	CreateAccount(ctx context.Context, name, accountType string, balance decimal.Decimal, icon, color string) (*models.Account, error)
	AdjustBalance(tx *gorm.DB, accountID uint, transactionType models.TransactionType, amount decimal.Decimal) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	ListCategories(ctx context.Context, categoryType *models.CategoryType) ([]models.Category, error)
	CreateCategory(ctx context.Context, name, icon, color string, categoryType models.CategoryType) (*models.Category, error)
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Type *models.TransactionType
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]models.TransactionDetail, error)
	CreateTransaction(ctx context.Context, accountID, categoryID uint, transactionType models.TransactionType, amount decimal.Decimal, description string, date models.Date) (*models.Transaction, error)
}

// StatisticsServicer defines the contract for aggregate reporting.
type StatisticsServicer interface {
	GetStatistics(ctx context.Context, period Period) (*models.Statistics, error)
}

// BalanceObserver is notified after a balance adjustment has been committed.
type BalanceObserver interface {
	ObserveBalanceAdjustment(transactionType models.TransactionType)
}
