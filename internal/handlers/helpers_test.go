package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"budgetapi/internal/config"
	"budgetapi/internal/logger"
	"budgetapi/internal/validator"
)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// newTestRouter wires the given services into the full dispatcher. Nil
// services are replaced with zero-value mocks.
func newTestRouter(mode config.ErrorMode, svc Services) *gin.Engine {
	if svc.Accounts == nil {
		svc.Accounts = &mockAccountService{}
	}
	if svc.Categories == nil {
		svc.Categories = &mockCategoryService{}
	}
	if svc.Transactions == nil {
		svc.Transactions = &mockTransactionService{}
	}
	if svc.Statistics == nil {
		svc.Statistics = &mockStatisticsService{}
	}
	return NewRouter(RouterConfig{Services: svc, ErrorMode: mode})
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorMessage(t *testing.T, rec *httptest.ResponseRecorder, message string) {
	t.Helper()
	result := parseJSON(t, rec)
	if result["error"] != message {
		t.Errorf("expected error %q, got %v", message, result["error"])
	}
}
