package services

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"budgetapi/internal/database"
	apperrors "budgetapi/internal/errors"
	"budgetapi/internal/models"
)

// topExpensesLimit caps the number of categories in the expense breakdown.
const topExpensesLimit = 10

// Period is a trailing statistics window.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod maps a query value to a Period. Anything unrecognised,
// including the empty string, is a month.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodDay:
		return PeriodDay
	case PeriodWeek:
		return PeriodWeek
	default:
		return PeriodMonth
	}
}

// Days returns the window length in days.
func (p Period) Days() int {
	switch p {
	case PeriodDay:
		return 1
	case PeriodWeek:
		return 7
	default:
		return 30
	}
}

// Since returns the first date inside the window ending on today.
func (p Period) Since(today models.Date) models.Date {
	return today.AddDays(-p.Days())
}

// statisticsService computes aggregates over transactions.
type statisticsService struct {
	db    *gorm.DB
	today func() models.Date
}

// NewStatisticsService creates a new StatisticsServicer.
func NewStatisticsService(db *gorm.DB) StatisticsServicer {
	return &statisticsService{db: db, today: models.Today}
}

type totalsRow struct {
	TotalIncome      decimal.Decimal
	TotalExpense     decimal.Decimal
	TransactionCount int64
}

// GetStatistics returns income, expense, balance, count and the ten largest
// expense categories for the period. Both queries run on the request's
// connection; the window start is a bound parameter.
func (s *statisticsService) GetStatistics(ctx context.Context, period Period) (*models.Statistics, error) {
	since := period.Since(s.today())
	db := database.Conn(ctx, s.db)

	var totals totalsRow
	if err := db.Model(&models.Transaction{}).
		Select(
			"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS total_income, "+
				"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS total_expense, "+
				"COUNT(*) AS transaction_count",
			models.TransactionTypeIncome, models.TransactionTypeExpense,
		).
		Where("date >= ?", since).
		Scan(&totals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDataAccess, err)
	}

	top := make([]models.CategoryTotal, 0, topExpensesLimit)
	if err := db.Table("transactions AS t").
		Select("c.name AS name, c.color AS color, SUM(t.amount) AS total").
		Joins("JOIN categories AS c ON t.category_id = c.id").
		Where("t.type = ? AND t.date >= ?", models.TransactionTypeExpense, since).
		Group("c.id, c.name, c.color").
		Order("total DESC").
		Limit(topExpensesLimit).
		Scan(&top).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDataAccess, err)
	}
	if top == nil {
		top = []models.CategoryTotal{}
	}

	return &models.Statistics{
		TotalIncome:      totals.TotalIncome,
		TotalExpense:     totals.TotalExpense,
		Balance:          totals.TotalIncome.Sub(totals.TotalExpense),
		TransactionCount: totals.TransactionCount,
		TopExpenses:      top,
	}, nil
}
