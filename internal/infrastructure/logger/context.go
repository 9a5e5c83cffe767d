package logger

import "context"

type requestIDKey struct{}

// WithRequestID attaches the request correlation ID to the context so it
// reaches layers that only see a context.Context, such as the GORM logger.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the correlation ID carried by the context, if any
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
