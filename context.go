package goNativeAuth

import (
	"context"

	"github.com/google/uuid"
)

type correlationIDContextKey struct{}

// WithCorrelationID attaches a correlation identifier to ctx. The Engine
// stamps it on every audit event emitted for the flow operation; when none
// is attached, a fresh UUID is generated per operation.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDContextKey{}, correlationID)
}

func correlationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	correlationID, _ := ctx.Value(correlationIDContextKey{}).(string)
	return correlationID
}

func ensureCorrelationID(ctx context.Context) string {
	if id := correlationIDFromContext(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
