package middleware

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetapi/internal/config"
	apperrors "budgetapi/internal/errors"
	"budgetapi/internal/logger"
)

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into `{"error": "<message>"}` responses. The status code depends on
// mode; see Resolve.
func ErrorHandler(mode config.ErrorMode) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// Process the last error (most relevant in a middleware chain)
		err := c.Errors.Last().Err
		status, message := Resolve(mode, err)

		if status >= http.StatusInternalServerError {
			logger.Get().Errorw("request failed",
				"error", err.Error(),
				"cause", cause(err),
				"status", status,
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"request_id", RequestID(c),
			)
		}

		c.JSON(status, gin.H{"error": message})
	}
}

// Resolve maps an error to a status code and public message.
//
// A routing miss is always 404 "Not found". In typed mode every other AppError
// keeps its own status and public message, and unknown errors become a
// generic 500. In uniform mode every other failure is a 500 carrying the most
// specific message available, the wrapped database error included.
func Resolve(mode config.ErrorMode, err error) (int, string) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code == apperrors.ErrNotFound.Code {
			return http.StatusNotFound, apperrors.ErrNotFound.Message
		}
		if mode == config.ErrorModeTyped {
			return appErr.StatusCode, appErr.Message
		}
		return http.StatusInternalServerError, appErr.Detail()
	}

	if mode == config.ErrorModeTyped {
		return apperrors.ErrInternalServer.StatusCode, apperrors.ErrInternalServer.Message
	}
	return http.StatusInternalServerError, err.Error()
}

// Recovery turns a panic into the same JSON error shape as any other failure.
func Recovery(mode config.ErrorMode) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("%v", recovered)
		}
		logger.Get().Errorw("panic recovered",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"request_id", RequestID(c),
		)
		status, message := Resolve(mode, err)
		c.AbortWithStatusJSON(status, gin.H{"error": message})
	})
}

func cause(err error) string {
	if inner := errors.Unwrap(err); inner != nil {
		return inner.Error()
	}
	return ""
}
