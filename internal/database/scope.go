package database

import (
	"context"

	"gorm.io/gorm"
)

type connKey struct{}

// WithConn returns a context carrying a connection-pinned *gorm.DB.
func WithConn(ctx context.Context, conn *gorm.DB) context.Context {
	return context.WithValue(ctx, connKey{}, conn)
}

// Conn returns the connection pinned to ctx by WithConn, or fallback bound to
// ctx when the request has none. Services call this for every query so one
// request never spreads over several pooled connections.
func Conn(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if conn, ok := ctx.Value(connKey{}).(*gorm.DB); ok && conn != nil {
		return conn.WithContext(ctx)
	}
	return fallback.WithContext(ctx)
}

// Scoped pins a single pooled connection for the duration of fn and returns
// it to the pool on every exit path, including panics.
func Scoped(ctx context.Context, db *gorm.DB, fn func(ctx context.Context) error) error {
	return db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return fn(WithConn(ctx, conn))
	})
}
