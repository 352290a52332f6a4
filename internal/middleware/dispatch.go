package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

type rejectionKey struct{}

// WithRejection marks a request as unservable before it reaches the router,
// for example when its invocation record could not be decoded. Rejected
// requests still pass through logging, metrics and CORS, and err is rendered
// by ErrorHandler like any handler error.
func WithRejection(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, rejectionKey{}, err)
}

// Rejection returns the error attached by WithRejection, or nil.
func Rejection(ctx context.Context) error {
	err, _ := ctx.Value(rejectionKey{}).(error)
	return err
}

// RejectMarked aborts requests carrying a rejection. It must run after CORS,
// so preflight requests are still answered, and after ErrorHandler.
func RejectMarked() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := Rejection(c.Request.Context()); err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.Next()
	}
}
