package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"budgetapi/internal/models"
)

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest("GET", "/accounts", 200, 10*time.Millisecond)
	m.ObserveRequest("GET", "/accounts", 200, 20*time.Millisecond)
	m.ObserveRequest("POST", "/accounts", 500, time.Millisecond)

	if got := testutil.ToFloat64(m.RequestsTotal().WithLabelValues("GET", "/accounts", "200")); got != 2 {
		t.Errorf("expected 2 GET /accounts 200, got %v", got)
	}
	if got := testutil.ToFloat64(m.RequestsTotal().WithLabelValues("POST", "/accounts", "500")); got != 1 {
		t.Errorf("expected 1 POST /accounts 500, got %v", got)
	}
}

func TestObserveBalanceAdjustment(t *testing.T) {
	m := New()

	m.ObserveBalanceAdjustment(models.TransactionTypeIncome)
	m.ObserveBalanceAdjustment(models.TransactionTypeExpense)
	m.ObserveBalanceAdjustment(models.TransactionTypeExpense)

	if got := testutil.ToFloat64(m.BalanceAdjustments().WithLabelValues("income")); got != 1 {
		t.Errorf("expected 1 income adjustment, got %v", got)
	}
	if got := testutil.ToFloat64(m.BalanceAdjustments().WithLabelValues("expense")); got != 2 {
		t.Errorf("expected 2 expense adjustments, got %v", got)
	}
}

func TestNew_IndependentRegistries(t *testing.T) {
	a := New()
	b := New()

	a.ObserveBalanceAdjustment(models.TransactionTypeIncome)

	if got := testutil.ToFloat64(b.BalanceAdjustments().WithLabelValues("income")); got != 0 {
		t.Errorf("expected isolated registries, got %v on the second instance", got)
	}
}
