package session

import "context"

type (
	ctxKey byte
)

var (
	principalKey = ctxKey(1)
)

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// FromContext returns the principal placed on the context by the
// authorization gate, or nil for an anonymous request.
func FromContext(ctx context.Context) *Principal {
	v := ctx.Value(principalKey)
	if v == nil {
		return nil
	}
	return v.(*Principal)
}
