package models

import "github.com/shopspring/decimal"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Signed returns amount with the sign this transaction type applies to an
// account balance: income adds, expense subtracts.
func (t TransactionType) Signed(amount decimal.Decimal) decimal.Decimal {
	if t == TransactionTypeExpense {
		return amount.Neg()
	}
	return amount
}

// Transaction represents a single dated money movement affecting one account
// and one category.
type Transaction struct {
	Base
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	CategoryID  uint            `gorm:"not null;index" json:"category_id"`
	AccountID   uint            `gorm:"not null;index" json:"account_id"`
	Date        Date            `gorm:"type:date;not null;index" json:"date"`
	Description string          `gorm:"not null" json:"description"`
}

// TransactionDetail is a transaction joined with the display fields of its
// category and account. The joined fields are nil when the referenced row is
// missing.
type TransactionDetail struct {
	Transaction
	CategoryName *string `json:"category_name"`
	CategoryIcon *string `json:"category_icon"`
	AccountName  *string `json:"account_name"`
}
