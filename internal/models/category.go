package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Valid reports whether t is one of the known category types.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category represents a transaction category. Categories are immutable once
// created.
type Category struct {
	Base
	Name  string       `gorm:"not null" json:"name"`
	Icon  string       `gorm:"not null" json:"icon"`
	Color string       `gorm:"not null" json:"color"`
	Type  CategoryType `gorm:"not null" json:"type"`
}
