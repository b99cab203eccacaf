package log

import "context"

// TraceIDKey is the context key holding the request trace id.
type TraceIDKey struct{}

// SetTraceIDToContext stores traceID so every log line of the request carries it.
func SetTraceIDToContext(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey{}, traceID)
}
