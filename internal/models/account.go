package models

import "github.com/shopspring/decimal"

// Defaults applied to accounts created without an icon or color.
const (
	DefaultAccountIcon  = "Wallet"
	DefaultAccountColor = "from-slate-400 to-slate-600"
)

// Account is a named money-holding entity with a running balance.
// Type is free-form ("cash", "card", ...); the API does not constrain it.
type Account struct {
	Base
	Name    string          `gorm:"not null" json:"name"`
	Type    string          `gorm:"not null" json:"type"`
	Balance decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"balance"`
	Icon    string          `gorm:"not null" json:"icon"`
	Color   string          `gorm:"not null" json:"color"`
}
