package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds contexts returned by Context.
const DefaultTimeout = 5 * time.Second

// Context returns a context cancelled when the test ends or after
// DefaultTimeout, whichever comes first.
func Context(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	t.Cleanup(cancel)
	return ctx
}

// CancelledContext returns a context that is already cancelled.
func CancelledContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}
