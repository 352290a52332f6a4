package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"budgetapi/internal/config"
	apperrors "budgetapi/internal/errors"
)

func TestRejectMarked(t *testing.T) {
	newRouter := func(called *bool) *gin.Engine {
		r := gin.New()
		r.Use(RequestLogging(), CORS(), ErrorHandler(config.ErrorModeTyped), RejectMarked())
		r.POST("/test", func(c *gin.Context) {
			*called = true
			c.Status(http.StatusCreated)
		})
		return r
	}
	rejected := func(method string) *http.Request {
		req := httptest.NewRequest(method, "/test", http.NoBody)
		ctx := WithRejection(req.Context(), apperrors.WithMessage(apperrors.ErrInvalidInput, "bad body"))
		return req.WithContext(ctx)
	}

	t.Run("rejected request skips the handler", func(t *testing.T) {
		var called bool
		rec := httptest.NewRecorder()
		newRouter(&called).ServeHTTP(rec, rejected(http.MethodPost))

		if called {
			t.Error("handler should not run")
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if body := parseBody(t, rec); body["error"] != "bad body" {
			t.Errorf("unexpected body %v", body)
		}
		if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("expected CORS header")
		}
		if rec.Header().Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID")
		}
	})

	t.Run("preflight wins over rejection", func(t *testing.T) {
		var called bool
		rec := httptest.NewRecorder()
		newRouter(&called).ServeHTTP(rec, rejected(http.MethodOptions))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("expected empty body, got %q", rec.Body.String())
		}
	})

	t.Run("unmarked request passes", func(t *testing.T) {
		var called bool
		rec := httptest.NewRecorder()
		newRouter(&called).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/test", http.NoBody))

		if !called || rec.Code != http.StatusCreated {
			t.Errorf("expected handler to run with 201, got called=%v status=%d", called, rec.Code)
		}
	})
}

func TestRejection_Empty(t *testing.T) {
	if err := Rejection(context.Background()); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
