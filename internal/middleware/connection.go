package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"budgetapi/internal/database"
	apperrors "budgetapi/internal/errors"
)

// ScopedConnection pins one pooled database connection to the request for
// the rest of the handler chain and releases it when the chain returns,
// whether it succeeded, failed or panicked.
func ScopedConnection(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := database.Scoped(c.Request.Context(), db, func(ctx context.Context) error {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
			return nil
		})
		if err != nil {
			_ = c.Error(apperrors.Wrap(apperrors.ErrDataAccess, err))
			c.Abort()
		}
	}
}
