package utils

import (
	"context"
	"time"
)

// DefaultDBTimeout bounds a single statement, not a whole transaction.
const DefaultDBTimeout = 5 * time.Second

func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}
