package components

import (
	"github.com/alexisbeaulieu97/tinct/internal/provider"
	"github.com/alexisbeaulieu97/tinct/internal/theme"
	"github.com/alexisbeaulieu97/tinct/internal/ui"
)

// Constraints bounds the cells a component may use. Zero means unbounded.
type Constraints struct {
	MaxWidth  int
	MaxHeight int
}

// WithMaxWidth returns constraints bounded only in width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth}
}

// Tighten returns the smaller non-zero bound of c and other on each axis.
func (c Constraints) Tighten(other Constraints) Constraints {
	return Constraints{
		MaxWidth:  tighter(c.MaxWidth, other.MaxWidth),
		MaxHeight: tighter(c.MaxHeight, other.MaxHeight),
	}
}

func tighter(a, b int) int {
	switch {
	case a <= 0:
		return max(b, 0)
	case b <= 0:
		return a
	default:
		return min(a, b)
	}
}

// RenderContext is what every component in one render pass reads: one value
// captured from a scope, plus layout constraints.
type RenderContext struct {
	Value       provider.Value
	Constraints Constraints
}

// ContextFor captures the current value of scope for one render pass. A nil
// scope yields the fallback value.
func ContextFor(scope *provider.Scope) RenderContext {
	return RenderContext{Value: provider.Consume(scope)}
}

// DefaultContext is the context View uses.
func DefaultContext() RenderContext {
	return ContextFor(nil)
}

func (r RenderContext) Theme() theme.Theme { return r.Value.Theme }

func (r RenderContext) Mode() theme.Mode { return r.Value.Mode }

// WithTheme returns a copy of r rendering with th.
func (r RenderContext) WithTheme(th theme.Theme) RenderContext {
	r.Value.Theme = th
	return r
}

// WithConstraints returns a copy of r with c.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// ContextualRenderable is a component that renders from a RenderContext.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// render renders child with ctx when it accepts one.
func render(child ui.Renderable, ctx RenderContext) string {
	if c, ok := child.(ContextualRenderable); ok {
		return c.ViewWithContext(ctx)
	}
	return child.View()
}
