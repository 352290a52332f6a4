package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"budgetapi/internal/database"
	apperrors "budgetapi/internal/errors"
	"budgetapi/internal/models"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db             *gorm.DB
	accountService AccountServicer
	observer       BalanceObserver
}

// NewTransactionService creates a new TransactionServicer. observer may be nil.
func NewTransactionService(db *gorm.DB, accountService AccountServicer, observer BalanceObserver) TransactionServicer {
	return &transactionService{
		db:             db,
		accountService: accountService,
		observer:       observer,
	}
}

// ListTransactions returns transactions newest first, joined with the name and
// icon of their category and the name of their account.
func (s *transactionService) ListTransactions(ctx context.Context, filter TransactionFilter) ([]models.TransactionDetail, error) {
	query := database.Conn(ctx, s.db).
		Table("transactions AS t").
		Select("t.*, c.name AS category_name, c.icon AS category_icon, a.name AS account_name").
		Joins("LEFT JOIN categories AS c ON t.category_id = c.id").
		Joins("LEFT JOIN accounts AS a ON t.account_id = a.id")
	if filter.Type != nil {
		query = query.Where("t.type = ?", *filter.Type)
	}

	details := make([]models.TransactionDetail, 0)
	if err := query.Order("t.date DESC, t.id DESC").Scan(&details).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDataAccess, err)
	}
	if details == nil {
		details = []models.TransactionDetail{}
	}
	return details, nil
}

// CreateTransaction records a transaction and applies it to the account
// balance. Both writes happen in one database transaction: either the row is
// inserted and the balance moved, or neither.
func (s *transactionService) CreateTransaction(
	ctx context.Context,
	accountID uint,
	categoryID uint,
	transactionType models.TransactionType,
	amount decimal.Decimal,
	description string,
	date models.Date,
) (*models.Transaction, error) {
	if !transactionType.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if !amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}
	if accountID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account_id is required")
	}
	if categoryID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category_id is required")
	}

	if date.IsZero() {
		date = models.Today()
	}

	transaction := &models.Transaction{
		Type:        transactionType,
		Amount:      amount,
		CategoryID:  categoryID,
		AccountID:   accountID,
		Date:        date,
		Description: description,
	}

	err := database.Conn(ctx, s.db).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Category{}, categoryID, apperrors.ErrCategoryNotFound); err != nil {
			return err
		}
		if err := ensureExists(tx, &models.Account{}, accountID, apperrors.ErrAccountNotFound); err != nil {
			return err
		}

		if err := tx.Clauses(clause.Returning{}).Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrDataAccess, err)
		}

		return s.accountService.AdjustBalance(tx, accountID, transactionType, amount)
	})
	if err != nil {
		return nil, err
	}

	if s.observer != nil {
		s.observer.ObserveBalanceAdjustment(transactionType)
	}
	return transaction, nil
}

// ensureExists returns notFound when no row of model's table has the given id.
func ensureExists(tx *gorm.DB, model interface{}, id uint, notFound *apperrors.AppError) error {
	err := tx.Select("id").Where("id = ?", id).Take(model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	if err != nil {
		return apperrors.Wrap(apperrors.ErrDataAccess, err)
	}
	return nil
}
