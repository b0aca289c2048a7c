package components

import "github.com/charmbracelet/lipgloss"

// Text renders content in one of the typographic variants.
type Text struct {
	BaseComponent
	content string
	variant TextVariant
	color   lipgloss.Color
}

// NewText creates body text with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
		variant:       TextBody,
	}
}

// View renders the text outside of any theme scope.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	th := ctx.Theme()
	return t.ComputeStyleOver(TextAttributes(th, t.variant, t.color).Style(), th).Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithVariant sets the typographic variant.
func (t *Text) WithVariant(variant TextVariant) *Text {
	t.variant = variant
	return t
}

// WithColor overrides the theme text color.
func (t *Text) WithColor(color lipgloss.Color) *Text {
	t.color = color
	return t
}

// WithAppliers applies theme-based style modifiers over the variant style.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// Variant returns the typographic variant.
func (t *Text) Variant() TextVariant {
	return t.variant
}

// Heading creates text in heading variant h1 through h6. Levels outside that
// range are clamped.
func Heading(level int, content string) *Text {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return NewText(content).WithVariant(TextH1 + TextVariant(level-1))
}

// Caption creates caption text.
func Caption(content string) *Text {
	return NewText(content).WithVariant(TextCaption)
}

// Label creates label text.
func Label(content string) *Text {
	return NewText(content).WithVariant(TextLabel)
}
