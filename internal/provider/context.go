package provider

import "context"

type scopeKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// FromContext returns the scope carried by ctx, if any.
func FromContext(ctx context.Context) (*Scope, bool) {
	if ctx == nil {
		return nil, false
	}
	s, ok := ctx.Value(scopeKey{}).(*Scope)
	return s, ok && s != nil
}

// ConsumeContext consumes the scope carried by ctx.
func ConsumeContext(ctx context.Context) Value {
	s, _ := FromContext(ctx)
	return Consume(s)
}
