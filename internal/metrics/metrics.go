// Package metrics holds the Prometheus instruments of the budget API.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"budgetapi/internal/models"
)

// Metrics holds all Prometheus metrics for the API.
type Metrics struct {
	// Registry owns the metrics below and backs the /metrics endpoint.
	Registry *prometheus.Registry

	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	balanceAdjustments *prometheus.CounterVec
}

// New creates a dedicated registry and registers every metric in it, so
// several instances (one per test) never collide.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_requests_total",
				Help: "Total requests processed, by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "budget_request_duration_seconds",
				Help:    "Duration of requests by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		balanceAdjustments: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_balance_adjustments_total",
				Help: "Committed account balance adjustments, by transaction type.",
			},
			[]string{"type"},
		),
	}
}

// ObserveRequest records one finished request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(d.Seconds())
}

// ObserveBalanceAdjustment counts a committed balance change.
func (m *Metrics) ObserveBalanceAdjustment(transactionType models.TransactionType) {
	m.balanceAdjustments.WithLabelValues(string(transactionType)).Inc()
}

// RequestsTotal exposes the request counter for assertions.
func (m *Metrics) RequestsTotal() *prometheus.CounterVec {
	return m.requestsTotal
}

// BalanceAdjustments exposes the adjustment counter for assertions.
func (m *Metrics) BalanceAdjustments() *prometheus.CounterVec {
	return m.balanceAdjustments
}
