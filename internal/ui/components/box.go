package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tinct/internal/ui"
)

// Box is a brand-colored surface with an optional title and content.
type Box struct {
	BaseComponent
	title    string
	content  string
	children []ui.Renderable
	variant  Variant
	width    int
}

// NewBox creates a primary box holding children.
func NewBox(children ...ui.Renderable) *Box {
	return &Box{
		BaseComponent: NewBaseComponent(),
		children:      children,
		variant:       VariantPrimary,
	}
}

// View renders the box outside of any theme scope.
func (b *Box) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the box with the given context.
func (b *Box) ViewWithContext(ctx RenderContext) string {
	th := ctx.Theme()
	parts := BoxAttributes(th, b.variant)

	rows := make([]string, 0, len(b.children)+2)
	if b.title != "" {
		rows = append(rows, parts.Title.Style().Render(b.title))
	}
	if b.content != "" {
		rows = append(rows, parts.Content.Style().Render(b.content))
	}
	for _, child := range b.children {
		if child == nil {
			continue
		}
		if view := render(child, ctx); view != "" {
			rows = append(rows, view)
		}
	}

	style := b.ComputeStyleOver(parts.Container.Style(), th).Align(lipgloss.Center)
	if b.width > 0 {
		style = style.Width(b.width)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

// WithTitle sets the title drawn above the content.
func (b *Box) WithTitle(title string) *Box {
	b.title = title
	return b
}

// WithContent sets the body text.
func (b *Box) WithContent(content string) *Box {
	b.content = content
	return b
}

// WithVariant sets the box variant.
func (b *Box) WithVariant(variant Variant) *Box {
	b.variant = variant
	return b
}

// WithWidth fixes the rendered width in cells.
func (b *Box) WithWidth(width int) *Box {
	b.width = width
	return b
}

// WithAppliers applies theme-based style modifiers over the variant style.
func (b *Box) WithAppliers(appliers ...StyleFunc) *Box {
	b.AddAppliers(appliers...)
	return b
}

// Add appends children below the content.
func (b *Box) Add(children ...ui.Renderable) *Box {
	b.children = append(b.children, children...)
	return b
}

// Title returns the box title.
func (b *Box) Title() string {
	return b.title
}

// Variant returns the box variant.
func (b *Box) Variant() Variant {
	return b.variant
}
