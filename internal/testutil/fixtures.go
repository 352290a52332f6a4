package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"budgetapi/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestAccount creates a cash account with zero balance.
func CreateTestAccount(t *testing.T, db *gorm.DB) *models.Account {
	t.Helper()
	return CreateTestAccountWithBalance(t, db, decimal.Zero)
}

// CreateTestAccountWithBalance creates a cash account with the given balance.
func CreateTestAccountWithBalance(t *testing.T, db *gorm.DB, balance decimal.Decimal) *models.Account {
	t.Helper()

	account := &models.Account{
		Name:    fmt.Sprintf("Test Account %d", nextID()),
		Type:    "cash",
		Balance: balance,
		Icon:    models.DefaultAccountIcon,
		Color:   models.DefaultAccountColor,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestCategory creates a category of the given type with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB, categoryType models.CategoryType) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, fmt.Sprintf("Test Category %d", nextID()), categoryType)
}

// CreateTestCategoryWithName creates a category with the given name and type.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, name string, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:  name,
		Icon:  "Tag",
		Color: "bg-gray-500",
		Type:  categoryType,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction inserts a transaction row directly, without touching
// the account balance.
func CreateTestTransaction(t *testing.T, db *gorm.DB, accountID, categoryID uint, transactionType models.TransactionType, amount decimal.Decimal, date models.Date) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Type:        transactionType,
		Amount:      amount,
		CategoryID:  categoryID,
		AccountID:   accountID,
		Date:        date,
		Description: fmt.Sprintf("Test transaction %d", nextID()),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// ReloadAccount reads the account back from the database.
func ReloadAccount(t *testing.T, db *gorm.DB, id uint) *models.Account {
	t.Helper()

	var account models.Account
	if err := db.First(&account, id).Error; err != nil {
		t.Fatalf("failed to reload account %d: %v", id, err)
	}
	return &account
}

// CountRows returns the number of rows in model's table.
func CountRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return n
}
