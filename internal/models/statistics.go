package models

import "github.com/shopspring/decimal"

// CategoryTotal is one row of the top-expenses breakdown.
type CategoryTotal struct {
	Name  string          `json:"name"`
	Color string          `json:"color"`
	Total decimal.Decimal `json:"total"`
}

// Statistics aggregates transactions over a trailing window.
type Statistics struct {
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpense     decimal.Decimal `json:"total_expense"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int64           `json:"transaction_count"`
	TopExpenses      []CategoryTotal `json:"top_expenses"`
}
