// Package correlationid carries a per-request correlation ID through
// a context.Context.
package correlationid

import "context"

type ctxKey struct{}

// Header is the HTTP header the correlation ID is read from and
// echoed back on.
const Header = "X-Correlation-Id"

// WithContext returns a copy of ctx holding the given correlation ID.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext extracts the correlation ID from ctx, if any.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}
