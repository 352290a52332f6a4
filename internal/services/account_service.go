package services

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"budgetapi/internal/database"
	apperrors "budgetapi/internal/errors"
	"budgetapi/internal/models"
)

// accountService handles account-related business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// ListAccounts returns every account ordered by id.
func (s *accountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	accounts := make([]models.Account, 0)
	if err := database.Conn(ctx, s.db).Order("id ASC").Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDataAccess, err)
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	return accounts, nil
}

// CreateAccount inserts an account, filling in the default icon and color,
// and returns the row as the database stored it.
func (s *accountService) CreateAccount(ctx context.Context, name, accountType string, balance decimal.Decimal, icon, color string) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if accountType == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type is required")
	}
	if icon == "" {
		icon = models.DefaultAccountIcon
	}
	if color == "" {
		color = models.DefaultAccountColor
	}

	account := &models.Account{
		Name:    name,
		Type:    accountType,
		Balance: balance,
		Icon:    icon,
		Color:   color,
	}

	if err := database.Conn(ctx, s.db).Clauses(clause.Returning{}).Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDataAccess, err)
	}

	return account, nil
}

// AdjustBalance applies a transaction's signed amount to an account balance.
// The update is a single `balance = balance + ?` statement so concurrent
// adjustments to one account never overwrite each other.
func (s *accountService) AdjustBalance(tx *gorm.DB, accountID uint, transactionType models.TransactionType, amount decimal.Decimal) error {
	if !transactionType.Valid() {
		return apperrors.ErrInvalidTransactionType
	}

	result := tx.Model(&models.Account{}).
		Where("id = ?", accountID).
		Update("balance", gorm.Expr("balance + ?", transactionType.Signed(amount)))
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrDataAccess, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}
